package cases

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses an optional non-negative decimal entered by an operator.
// Blank input yields nil. Both '.' and the Arabic decimal separator are accepted.
func ParseAmount(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	raw = strings.ReplaceAll(raw, "٫", ".")
	raw = strings.ReplaceAll(raw, ",", "")

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%s must be a number", field)
	}
	if v < 0 {
		return nil, fmt.Errorf("%s cannot be negative", field)
	}
	return &v, nil
}
