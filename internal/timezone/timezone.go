package timezone

import "time"

const (
	DefaultTimezone = "Europe/Lisbon"
	DateLayout      = "2006-01-02"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey is the calendar-day string used for summaries and closings.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDay(day string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, day, loc)
}

// DayRange returns [start, end) of the calendar day in loc.
func DayRange(day string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := ParseDay(day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}
