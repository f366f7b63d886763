package message

import (
	"strconv"
	"strings"
)

// ParseDuration converts "minutes:seconds" or "seconds" into total seconds.
// Negative components are accepted as-is. Any other shape reports ok=false with 0.
func ParseDuration(input string) (seconds int, ok bool) {
	parts := strings.Split(input, ":")
	switch len(parts) {
	case 1:
		s, err := parseInt(parts[0])
		if err != nil {
			return 0, false
		}
		return s, true
	case 2:
		m, err := parseInt(parts[0])
		if err != nil {
			return 0, false
		}
		s, err := parseInt(parts[1])
		if err != nil {
			return 0, false
		}
		return m*60 + s, true
	default:
		return 0, false
	}
}

func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	return int(n), err
}
