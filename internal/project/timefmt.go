package project

import (
	"fmt"
	"time"
)

// UnknownAge is shown when a modification time is absent or in the
// future relative to the local clock.
const UnknownAge = "—"

// Relative renders a timestamp as a short age label: "just now",
// "5m ago", "3h ago", "2d ago", "4mo ago", "1y ago". Months are 30
// days and years 365; division truncates.
func Relative(t *time.Time) string {
	return relativeAt(t, time.Now())
}

func relativeAt(t *time.Time, now time.Time) string {
	if t == nil {
		return UnknownAge
	}
	elapsed := now.Sub(*t)
	if elapsed < 0 {
		return UnknownAge
	}

	secs := int64(elapsed.Seconds())
	switch {
	case secs < 60:
		return "just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	case secs < 2592000:
		return fmt.Sprintf("%dd ago", secs/86400)
	case secs < 31536000:
		return fmt.Sprintf("%dmo ago", secs/2592000)
	default:
		return fmt.Sprintf("%dy ago", secs/31536000)
	}
}
