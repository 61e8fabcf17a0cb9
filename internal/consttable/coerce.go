package consttable

import (
	"math"
	"strconv"
)

// Value coercion for stored cells and query arguments.
//
// Stored cells are normalized once, when the dataset is declared:
//
//	int, int8 … int64, uint … uint64 → int64
//	float32, float64                 → float64
//	string, bool                     → unchanged
//	anything else                    → rejected
//
// Query arguments are compared against a stored cell with the integer rule:
// when the stored cell is an int64 the argument is coerced to an integer
// first (so 19, int32(19), 19.0 and "19" all match 19). Every other stored
// type uses exact equality after the same normalization.

// Value is a single cell: string, int64, float64 or bool.
type Value = any

// normalize converts a Go scalar to its canonical stored representation.
func normalize(v any) (Value, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return x, true
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, false
		}
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return nil, false
		}
		return int64(x), true
	case float64:
		return x, true
	case float32:
		return float64(x), true
	default:
		return nil, false
	}
}

// coerceToInteger converts a query argument to an integer.
// Non-numeric strings and booleans do not coerce.
func coerceToInteger(v any) (int64, bool) {
	switch x := v.(type) {
	case string:
		if i, err := strconv.ParseInt(x, 10, 64); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(x)
	case float32:
		return coerceToInteger(float64(x))
	case bool:
		return 0, false
	default:
		n, ok := normalize(v)
		if !ok {
			return 0, false
		}
		i, ok := n.(int64)
		return i, ok
	}
}

// matches applies the match rule between a stored cell and a query argument.
func matches(stored Value, query any) bool {
	if s, ok := stored.(int64); ok {
		q, ok := coerceToInteger(query)
		return ok && q == s
	}
	q, ok := normalize(query)
	if !ok {
		return false
	}
	return q == stored
}

// floatToInt64 truncates f toward zero. Values outside the int64 range, NaN
// and infinities do not convert.
func floatToInt64(f float64) (int64, bool) {
	// -2^63 is exact in float64; 2^63 is the first value past MaxInt64.
	if math.IsNaN(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}
