package cases

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatYearlySequence renders the year-scoped correspondence number, e.g. 2024-0007.
func FormatYearlySequence(year, n int) string {
	return fmt.Sprintf("%04d-%04d", year, n)
}

// ParseYearlySequence splits a yearly sequence number into year and counter.
func ParseYearlySequence(s string) (int, int, error) {
	yearPart, seqPart, ok := strings.Cut(s, "-")
	if !ok || len(yearPart) != 4 || len(seqPart) < 4 {
		return 0, 0, fmt.Errorf("invalid yearly sequence number: %q", s)
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid yearly sequence number: %q", s)
	}
	n, err := strconv.Atoi(seqPart)
	if err != nil || n < 1 {
		return 0, 0, fmt.Errorf("invalid yearly sequence number: %q", s)
	}
	return year, n, nil
}
