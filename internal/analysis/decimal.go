package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimal is a float64 that always encodes with a fractional part or an
// exponent, so whole values are written as 1.0 rather than 1.
type Decimal float64

// MarshalJSON implements json.Marshaler.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// String formats d with the shortest representation that round-trips.
// Magnitudes below 1e-4 or from 1e16 up use exponent notation.
func (d Decimal) String() string {
	v := float64(d)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%v", v)
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
