package timeutil

import (
	"fmt"
	"time"
)

// Display layouts used across itinerary items. Departure boards show
// "08:35" and "Sun, 30 Aug"; durations show "1h 20m".
const (
	clockLayout = "15:04"
	dateLayout  = "Mon, 02 Jan"
)

// FormatClock renders a time as a 24-hour clock display string ("08:35").
func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}

// FormatDisplayDate renders a time as a short display date ("Sun, 30 Aug").
func FormatDisplayDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDuration renders a minute count as a compact duration string
// ("1h 20m", "45m", "2h").
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// ParseFlexible parses a provider datetime that may or may not carry a
// timezone offset or a time at all. Supported layouts: RFC3339,
// "2006-01-02T15:04:05", and "2006-01-02".
func ParseFlexible(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}
