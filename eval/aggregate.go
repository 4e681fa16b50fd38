package eval

import (
	"errors"
	"math"

	"github.com/midbel/xdm/collate"
	"github.com/midbel/xdm/num"
	"github.com/midbel/xdm/seq"
)

func callMin(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 2); err != nil {
		return nil, err
	}
	cmp, err := comparerFor(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	return extreme(ctx, args[0], cmp)
}

func callMax(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 2); err != nil {
		return nil, err
	}
	cmp, err := comparerFor(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	return extreme(ctx, args[0], cmp.Descending())
}

// extreme keeps the smallest value under the given comparer. A single NaN
// operand decides the result on its own.
func extreme(ctx Context, arg Expr, cmp *collate.Comparer) (seq.Iterator, error) {
	it, err := arg.Iterate(ctx)
	if err != nil {
		return nil, err
	}
	var (
		best  any
		found bool
	)
	for item, err := range seq.Values(it) {
		if err != nil {
			return nil, err
		}
		value, err := atomize(item)
		if err != nil {
			return nil, err
		}
		if num.IsNaN(value) {
			it.Close()
			return singleton(math.NaN())
		}
		if !found {
			best, found = value, true
			continue
		}
		res, err := cmp.Compare(value, best)
		if err != nil {
			if errors.Is(err, collate.ErrType) {
				return nil, dynamicError(CodeType, err)
			}
			return nil, err
		}
		if res < 0 {
			best = value
		}
	}
	if !found {
		return seq.Empty(), nil
	}
	return singleton(best)
}

// atomize readies an item for aggregation: untyped values become doubles,
// everything else keeps its value.
func atomize(item seq.Item) (any, error) {
	if !seq.IsUntyped(item) {
		return item.Value(), nil
	}
	f, err := num.ToFloat(item.Value())
	if err != nil {
		return nil, dynamicError(CodeConvert, err)
	}
	return f, nil
}

// callSum gives the integer zero for the empty sequence unless a second
// argument overrides that default.
func callSum(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 2); err != nil {
		return nil, err
	}
	total, count, err := accumulate(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if len(args) > 1 {
			item, err := first(ctx, args[1])
			if err != nil {
				return nil, err
			}
			if item == nil {
				return seq.Empty(), nil
			}
			return seq.Single(item), nil
		}
		return singleton(int64(0))
	}
	return singleton(total)
}

func callAvg(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return nil, err
	}
	total, count, err := accumulate(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return seq.Empty(), nil
	}
	var sum float64
	switch v := total.(type) {
	case int64:
		sum = float64(v)
	case float64:
		sum = v
	}
	return singleton(sum / float64(count))
}

// accumulate folds a sequence of numbers. The total stays an integer as long
// as every operand is one and widens to double on the first double seen.
func accumulate(ctx Context, arg Expr) (any, int64, error) {
	it, err := arg.Iterate(ctx)
	if err != nil {
		return nil, 0, err
	}
	var (
		ints    int64
		floats  float64
		widened bool
		count   int64
	)
	for item, err := range seq.Values(it) {
		if err != nil {
			return nil, 0, err
		}
		value, err := atomize(item)
		if err != nil {
			return nil, 0, err
		}
		count++
		switch v := value.(type) {
		case int64:
			if widened {
				floats += float64(v)
			} else {
				ints += v
			}
		case float64:
			if !widened {
				floats = float64(ints)
				widened = true
			}
			floats += v
		default:
			return nil, 0, dynamicErrorf(CodeType, "%w: value is not a number", ErrType)
		}
	}
	if widened {
		return floats, count, nil
	}
	return ints, count, nil
}
