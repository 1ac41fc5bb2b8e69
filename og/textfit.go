package og

// ClampFontSize shrinks a base font size when text overflows its declared max
// length. With no max length the base is simply clamped into [min, max].
// Overflowing text scales down proportionally but never below 60% of base.
// This is a cheap autofit approximation, not measurement-based fitting.
func ClampFontSize(base, min, max, textLen, maxLen int) int {
	clamp := func(v int) int {
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	}
	if maxLen <= 0 {
		return clamp(base)
	}
	overflow := textLen - maxLen
	if overflow < 0 {
		overflow = 0
	}
	denom := maxLen * 2
	if denom < 1 {
		denom = 1
	}
	ratio := 1 - float64(overflow)/float64(denom)
	if ratio < 0.6 {
		ratio = 0.6
	}
	return clamp(int(float64(base) * ratio))
}

// Ellipsize truncates s to maxLen runes, replacing the tail with a single
// ellipsis. A zero or negative maxLen returns s unchanged.
func Ellipsize(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	cut := maxLen - 1
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + "…"
}
