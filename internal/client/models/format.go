package models

import (
	"fmt"
	"time"
)

// RelativeTime renders a note timestamp the way the list shows it:
// "Just now", "5m ago", "3h ago", "2d ago", then a short date. The year is
// added only when it differs from now.
func RelativeTime(ts int64, now time.Time) string {
	t := time.UnixMilli(ts).In(now.Location())
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	}

	if t.Year() != now.Year() {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("Jan 2")
}

// MemberSince renders the profile creation date, e.g. "March 4, 2025".
func MemberSince(ts int64, loc *time.Location) string {
	return time.UnixMilli(ts).In(loc).Format("January 2, 2006")
}

// Truncate cuts text to max runes and appends "..." when it was cut.
func Truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}
