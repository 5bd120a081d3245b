package fhir

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeError reports a date/time pair that could not be assembled into a
// valid instant. Unlike extension decoding, this is fail-fast: an appointment
// without a resolvable start is a data-integrity problem the caller must see,
// not something to silently default.
type DateTimeError struct {
	DateText string
	TimeText string
	Reason   string
}

func (e *DateTimeError) Error() string {
	return fmt.Sprintf("assemble instant from %q %q: %s", e.DateText, e.TimeText, e.Reason)
}

var monthNumbers = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// MonthNumber maps a three-letter month name to its two-digit number.
// Unrecognized names return the sentinel "00"; validity is only enforced at
// the final instant-parse step of AssembleInstant.
func MonthNumber(name string) string {
	if n, ok := monthNumbers[name]; ok {
		return n
	}
	return "00"
}

// Layouts accepted for the combined date + time-of-day string.
var instantLayouts = []string{
	"2006-1-2 3:04 PM",
	"2006-1-2 3:04PM",
	"2006-1-2 15:04",
	"2006-1-2 15:04:05",
}

// AssembleInstant combines a free-text date of the form "DD Mon YYYY" with a
// separate time-of-day string into a normalized RFC 3339 instant in UTC.
func AssembleInstant(dateText, timeText string) (string, error) {
	fields := strings.Fields(dateText)
	if len(fields) != 3 {
		return "", &DateTimeError{
			DateText: dateText,
			TimeText: timeText,
			Reason:   fmt.Sprintf("date must be \"DD Mon YYYY\", got %d tokens", len(fields)),
		}
	}

	combined := fmt.Sprintf("%s-%s-%s %s",
		fields[2], MonthNumber(fields[1]), fields[0], strings.TrimSpace(timeText))

	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, combined); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", &DateTimeError{
		DateText: dateText,
		TimeText: timeText,
		Reason:   "combined date and time does not parse to a valid instant",
	}
}
