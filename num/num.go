package num

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

var ErrConvert = errors.New("value can not be converted to a number")

// Coerce applies number() semantics: booleans and numerics convert directly,
// anything else is parsed from its string value. Failure is silent and yields
// NaN, never an error.
func Coerce(value any) float64 {
	switch v := value.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int64:
		return float64(v)
	case float64:
		return v
	case string:
		f, err := parseFloat(v)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// ToFloat is the structural variant of Coerce: where a number is required,
// failure surfaces as a conversion error instead of NaN.
func ToFloat(value any) (float64, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return parseFloat(v)
	default:
		return 0, ErrConvert
	}
}

func ToInt(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrConvert
		}
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, ErrConvert
		}
		return i, nil
	default:
		return 0, ErrConvert
	}
}

func ToString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return FormatFloat(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case time.Duration:
		return v.String(), nil
	default:
		return "", ErrConvert
	}
}

func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// parseFloat accepts the xs:double lexical space: an optional sign, decimal
// or scientific notation, INF and NaN. Go-only spellings (hex floats,
// "Infinity") are rejected.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "INF", "+INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	case "":
		return 0, ErrConvert
	}
	if strings.ContainsAny(s, "xXpPiInN_") {
		return 0, ErrConvert
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrConvert
	}
	return f, nil
}

// The rounding family preserves the type of its operand: integers stay
// integers, doubles stay doubles. NaN and the infinities pass through.

func Floor(value any) (any, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case float64:
		return math.Floor(v), nil
	default:
		return nil, ErrConvert
	}
}

func Ceiling(value any) (any, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case float64:
		return math.Ceil(v), nil
	default:
		return nil, ErrConvert
	}
}

// Round rounds half up toward positive infinity: round(2.5) is 3 and
// round(-2.5) is -2.
func Round(value any) (any, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v, nil
		}
		return math.Floor(v + 0.5), nil
	default:
		return nil, ErrConvert
	}
}

func RoundHalfToEven(value any, scale int) (any, error) {
	switch v := value.(type) {
	case int64:
		if scale >= 0 {
			return v, nil
		}
		p := math.Pow(10, float64(-scale))
		return int64(math.RoundToEven(float64(v)/p) * p), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v, nil
		}
		p := math.Pow(10, float64(scale))
		return math.RoundToEven(v*p) / p, nil
	default:
		return nil, ErrConvert
	}
}

// Abs yields positive zero for both zeroes.
func Abs(value any) (any, error) {
	switch v := value.(type) {
	case int64:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	case float64:
		return math.Abs(v), nil
	default:
		return nil, ErrConvert
	}
}

func IsNaN(value any) bool {
	f, ok := value.(float64)
	return ok && math.IsNaN(f)
}
