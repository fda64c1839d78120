// Package duration parses the short block-duration syntax accepted on
// the command line: an integer with an optional unit suffix, one of
// s, m, h or d. A bare number means minutes.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidFormat = errors.New("invalid duration format")

var pattern = regexp.MustCompile(`^(\d+)([smhd])?$`)

// Parse converts strings like "30", "45s", "2h" or "1d" into a
// time.Duration. The unit letter is case-insensitive.
func Parse(s string) (time.Duration, error) {
	m := pattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return 0, fmt.Errorf("%w: %q (use a plain number for minutes, or a unit: 45s, 30m, 2h, 1d)", ErrInvalidFormat, s)
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	unit := time.Minute
	switch m[2] {
	case "s":
		unit = time.Second
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	}
	return time.Duration(n) * unit, nil
}
