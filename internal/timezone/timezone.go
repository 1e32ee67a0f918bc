package timezone

import "time"

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to UTC for empty or unknown zone names.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// ParseDate reads a YYYY-MM-DD date as midnight in tz.
func ParseDate(tz string, value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, Location(tz))
}
