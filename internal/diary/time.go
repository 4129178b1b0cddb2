package diary

import (
	"fmt"
	"time"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// ParseTime converts "HH:MM" to minutes since midnight.
// The input must already be well formed; see ValidTimeFormat.
func ParseTime(t string) int {
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// FormatMinutes converts minutes since midnight to "HH:MM" format.
// Values outside a single day are clamped to 00:00 and 23:59.
func FormatMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= MinutesPerDay {
		m = MinutesPerDay - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// IsBefore reports whether a is strictly earlier than b.
func IsBefore(a, b string) bool {
	return ParseTime(a) < ParseTime(b)
}

// Duration returns the minutes from start to end.
func Duration(start, end string) int {
	return ParseTime(end) - ParseTime(start)
}

// ValidTimeFormat reports whether s is a zero-padded 24-hour "HH:MM" time.
func ValidTimeFormat(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
