package messaging

import (
	"net/url"
	"strings"
	"unicode"
)

// Digits mantém só os dígitos do telefone, formato aceito pelo wa.me.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink monta o link de conversa com o texto já codificado; espaços
// viram %20 e não "+".
func WhatsAppLink(phone, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + Digits(phone) + "?text=" + escaped
}
