package timer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultDuration is the rest period used when no valid duration was entered.
const DefaultDuration = 2 * time.Minute

// DefaultText is DefaultDuration in the "mmss" input form.
const DefaultText = "0200"

// NormalizeText turns free-text input into the four digit "mmss" buffer:
// non-digits are dropped, only the last four digits are kept and the result
// is left-padded with zeros.
func NormalizeText(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return strings.Repeat("0", 4-len(digits)) + digits
}

// ParseDuration parses an "mmss" (or "mm:ss") entry into a rest duration.
// Seconds above 59 are carried into minutes, so "9999" is 100:39.
// Input without digits, or one that adds up to zero, yields DefaultDuration.
func ParseDuration(input string) time.Duration {
	if !strings.ContainsAny(input, "0123456789") {
		return DefaultDuration
	}
	buf := NormalizeText(input)
	minutes, err := strconv.Atoi(buf[:2])
	if err != nil {
		return DefaultDuration
	}
	seconds, err := strconv.Atoi(buf[2:])
	if err != nil {
		return DefaultDuration
	}
	total := time.Duration(minutes*60+seconds) * time.Second
	if total <= 0 {
		return DefaultDuration
	}
	return total
}

// Format renders d as "mm:ss", rounding partial seconds up so a running
// countdown only shows 00:00 once it has actually expired.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
