// Package format provides display helpers for timestamps and text cells.
package format

import (
	"time"

	"github.com/mattn/go-runewidth"
)

// timeLayout renders as "YYYY-MM-DD HH:MM".
const timeLayout = "2006-01-02 15:04"

// MsToTime converts a Unix milliseconds timestamp to local time.
func MsToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// Time formats a timestamp for display.
func Time(t time.Time) string {
	return t.Format(timeLayout)
}

// Truncate shortens text to at most max display columns, appending "…"
// when it had to cut. Widths are measured in terminal cells so wide
// runes don't overflow table columns.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= max {
		return text
	}
	return runewidth.Truncate(text, max, "…")
}

// Pad left-aligns text in a field of the given display width, truncating
// if it does not fit.
func Pad(text string, width int) string {
	return runewidth.FillRight(Truncate(text, width), width)
}
