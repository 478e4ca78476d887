package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
)

// ErrNotInteger is returned when an Int field holds a fractional number or
// a string that is not a number.
var ErrNotInteger = errors.New("value must be an integer")

// Int is an integer request field that also accepts whole-valued JSON
// numbers (20.0) and numeric strings ("20").
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (n *Int) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	num := json.Number(raw)
	if v, err := num.Int64(); err == nil {
		if v < math.MinInt || v > math.MaxInt {
			return ErrNotInteger
		}
		*n = Int(v)
		return nil
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return ErrNotInteger
	}
	*n = Int(f)
	return nil
}
