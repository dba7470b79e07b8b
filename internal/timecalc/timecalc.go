package timecalc

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// durationPrefixRe matches the leading d/h/m/s components of a duration
// expression. It always matches (every component is optional), so anything
// after the longest valid prefix is ignored.
var durationPrefixRe = regexp.MustCompile(`(?i)^(\d+d)?\s*(\d+h)?\s*(\d+m)?\s*(\d+s)?`)

// durationFullRe is the anchored form used for validation.
var durationFullRe = regexp.MustCompile(`(?i)^(\d+d\s*)?(\d+h\s*)?(\d+m\s*)?(\d+s\s*)?$`)

// ParseHours converts a duration expression like "1d 2h 30m 15s" to
// fractional hours. Parsing is lenient: only a valid prefix is read and
// trailing text is ignored, so "1h oops" is 1 and "abc" is 0.
// Use ValidDuration to reject malformed input.
func ParseHours(s string) float64 {
	m := durationPrefixRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	days := component(m[1])
	hours := component(m[2])
	minutes := component(m[3])
	seconds := component(m[4])
	return days*24 + hours + minutes/60 + seconds/3600
}

// component reads the number in front of a unit suffix ("12h" -> 12).
// Components are read as float64 so arbitrarily long digit runs do not
// overflow.
func component(part string) float64 {
	if part == "" {
		return 0
	}
	n, err := strconv.ParseFloat(part[:len(part)-1], 64)
	if err != nil && !math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ValidDuration reports whether the whole trimmed string is a duration
// expression. The empty string is valid here; emptiness is a separate
// required-field check.
func ValidDuration(s string) bool {
	return durationFullRe.MatchString(strings.TrimSpace(s))
}

// FormatHours renders fractional hours with exactly two decimals. Rounding
// works on the exact binary value and breaks ties upward, so 0.125 is "0.13".
func FormatHours(h float64) string {
	if math.IsInf(h, 0) || math.IsNaN(h) {
		return strconv.FormatFloat(h, 'f', 2, 64)
	}

	r := new(big.Rat).SetFloat64(math.Abs(h))
	r.Mul(r, big.NewRat(100, 1))
	cents, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(r.Denom()) >= 0 {
		cents.Add(cents, big.NewInt(1))
	}

	digits := cents.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	out := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if h < 0 {
		out = "-" + out
	}
	return out
}

// HoursToSeconds converts fractional hours to whole seconds, rounding to
// the nearest second. Values outside the int64 range are clamped and NaN
// is 0.
func HoursToSeconds(h float64) int64 {
	secs := math.Round(h * 3600)
	switch {
	case math.IsNaN(secs):
		return 0
	case secs >= math.MaxInt64:
		return math.MaxInt64
	case secs <= math.MinInt64:
		return math.MinInt64
	}
	return int64(secs)
}

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}
