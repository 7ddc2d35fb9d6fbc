package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseWindow parses a lookback window. It accepts stdlib durations
// ("90m", "36h") plus day and week units ("30d", "2w").
func ParseWindow(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty window string")
	}

	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("window must be positive: %s", s)
		}
		return d, nil
	}

	if len(s) < 2 {
		return 0, fmt.Errorf("invalid window format: %s", s)
	}
	num, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window number: %s", s[:len(s)-1])
	}
	if num <= 0 {
		return 0, fmt.Errorf("window must be positive: %s", s)
	}

	switch s[len(s)-1:] {
	case "d":
		return time.Duration(num) * 24 * time.Hour, nil
	case "w":
		return time.Duration(num) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown window unit: %s", s[len(s)-1:])
	}
}
