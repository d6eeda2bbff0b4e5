package handlers

import (
	"time"

	"github.com/BruksfildServices01/salon-manager/internal/timezone"
)

// parseInstant aceita RFC3339 ou "2006-01-02 15:04" no fuso do salão.
func parseInstant(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02 15:04", value, loc)
}

func parseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(timezone.DateLayout+" 15:04", date+" "+clock, loc)
}

func today(loc *time.Location) string {
	return timezone.DayKey(time.Now().In(loc))
}
