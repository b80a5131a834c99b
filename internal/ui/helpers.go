package ui

// listHeight is the number of content rows available to scrolling
// lists once the tab bar and footer are accounted for.
func (m Model) listHeight() int {
	h := m.height - 4
	if h < 3 {
		return 3
	}
	return h
}

// window returns the half-open visible range keeping cursor in view.
func window(cursor, total, height int) (start, end int) {
	if total <= height {
		return 0, total
	}
	start = cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

func truncate(s string, limit int) string {
	if limit <= 0 || len([]rune(s)) <= limit {
		return s
	}
	runes := []rune(s)
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
