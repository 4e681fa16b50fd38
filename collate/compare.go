package collate

import (
	"errors"
	"math"
	"time"
)

var ErrType = errors.New("values can not be compared")

// Comparer binds a collation to a 3-way ordering and an equality predicate
// over atomic values. Operand combinations that have no ordering under the
// collation report a type error rather than comparing unequal.
type Comparer struct {
	coll Collation
	desc bool
}

func NewComparer(c Collation) *Comparer {
	return &Comparer{
		coll: c,
	}
}

// Descending flips the ordering; max() is min() under the flipped comparer.
func (c *Comparer) Descending() *Comparer {
	return &Comparer{
		coll: c.coll,
		desc: !c.desc,
	}
}

func (c *Comparer) Collation() Collation {
	return c.coll
}

func (c *Comparer) Compare(a, b any) (int, error) {
	res, err := c.compare(a, b)
	if err != nil {
		return 0, err
	}
	if c.desc {
		res = -res
	}
	return res, nil
}

func (c *Comparer) Equal(a, b any) (bool, error) {
	res, err := c.compare(a, b)
	if err != nil {
		return false, err
	}
	return res == 0, nil
}

func (c *Comparer) compare(a, b any) (int, error) {
	if x, ok := toNumeric(a); ok {
		y, ok := toNumeric(b)
		if !ok {
			return 0, ErrType
		}
		return compareFloat(x, y), nil
	}
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, ErrType
		}
		return c.coll.Compare(x, y), nil
	case bool:
		y, ok := b.(bool)
		if !ok {
			return 0, ErrType
		}
		return compareBool(x, y), nil
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, ErrType
		}
		return x.Compare(y), nil
	case time.Duration:
		y, ok := b.(time.Duration)
		if !ok {
			return 0, ErrType
		}
		return compareFloat(float64(x), float64(y)), nil
	default:
		return 0, ErrType
	}
}

func toNumeric(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// compareFloat is a total order: NaN sorts before every number and is equal
// only to itself.
func compareFloat(a, b float64) int {
	switch {
	case math.IsNaN(a):
		if math.IsNaN(b) {
			return 0
		}
		return -1
	case math.IsNaN(b):
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}
