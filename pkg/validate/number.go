package validate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number accepts a JSON number or a numeric string. Decoding never fails;
// whether the input was present and finite is left to the `percent` and
// `required` rules so the error can name the field.
type Number struct {
	raw   string
	value float64
	set   bool
	ok    bool
}

// NewNumber builds a valid Number.
func NewNumber(v float64) Number {
	return Number{raw: strconv.FormatFloat(v, 'f', -1, 64), value: v, set: true, ok: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	*n = Number{raw: s}
	if s == "null" {
		return nil
	}
	n.set = true

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
		n.raw = s
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n.value, n.ok = f, true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.ok {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// Float64 returns the parsed value (0 when invalid).
func (n Number) Float64() float64 { return n.value }

// Valid reports whether a finite number was supplied.
func (n Number) Valid() bool { return n.set && n.ok }
