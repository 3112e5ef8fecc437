package entity

import (
	"encoding/json"
	"strconv"
)

// NormalizeScore coerces a raw score value of unknown type onto the
// canonical 0-100 integer scale.
//
// Models are instructed to score 0-100 but frequently fall back to a
// 0-10 convention, so any numeric value in (0, 10] is treated as a
// misreported 0-10 score and multiplied by 10. A literal 10 therefore
// becomes 100; the boundary is half-open at 0 and closed at 10 on
// purpose. Everything numeric is truncated toward zero; anything
// non-numeric (missing, null, arrays, garbage strings) becomes 0
// rather than an error, so one bad field never fails an evaluation.
func NormalizeScore(v any) int {
	f, ok := asFloat(v)
	if !ok {
		return 0
	}
	if f > 0 && f <= 10 {
		f *= 10
	}
	n := int(f)
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// asFloat is the tagged dispatch over the score representations a
// JSON document can carry: numbers, numeric strings, and garbage.
func asFloat(v any) (float64, bool) {
	switch s := v.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int64:
		return float64(s), true
	case json.Number:
		f, err := s.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
