package client

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "":
		return StatusActive, nil
	case StatusActive, StatusInactive:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// Initials pega a primeira letra de cada palavra do nome, no máximo duas.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, token := range strings.Fields(name) {
		if n == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(token)
		b.WriteRune(unicode.ToUpper(r))
		n++
	}
	return b.String()
}

const NotAttendedReason = "Não compareceu"
