package format

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
)

func TestMsToTime(t *testing.T) {
	ms := int64(1700000000000)
	got := MsToTime(ms)
	if got.UnixMilli() != ms {
		t.Errorf("MsToTime round-trip = %d, want %d", got.UnixMilli(), ms)
	}
}

func TestTimeLayout(t *testing.T) {
	ts := time.Date(2024, 3, 7, 9, 5, 0, 0, time.Local)
	if got := Time(ts); got != "2024-03-07 09:05" {
		t.Errorf("Time = %q", got)
	}
}

func TestTruncateShortStringUnchanged(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate = %q, want hello", got)
	}
}

func TestTruncateAddsEllipsis(t *testing.T) {
	got := Truncate("hello world", 8)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Truncate = %q, want ellipsis suffix", got)
	}
	if runewidth.StringWidth(got) > 8 {
		t.Errorf("Truncate result too wide: %q", got)
	}
}

func TestTruncateWideRunes(t *testing.T) {
	got := Truncate("日本語のテスト", 6)
	if runewidth.StringWidth(got) > 6 {
		t.Errorf("Truncate result %q wider than 6 cells", got)
	}
}

func TestTruncateZeroWidth(t *testing.T) {
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate with max 0 = %q, want empty", got)
	}
}

func TestPad(t *testing.T) {
	got := Pad("ab", 5)
	if got != "ab   " {
		t.Errorf("Pad = %q", got)
	}
	if w := runewidth.StringWidth(Pad("a very long string", 5)); w != 5 {
		t.Errorf("Pad of long string has width %d, want 5", w)
	}
}
