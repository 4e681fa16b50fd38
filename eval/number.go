package eval

import (
	"github.com/midbel/xdm/num"
	"github.com/midbel/xdm/seq"
)

// callNumber converts silently: anything that fails to convert gives NaN,
// never an error.
func callNumber(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 1); err != nil {
		return nil, err
	}
	var value any
	if len(args) > 0 {
		item, err := first(ctx, args[0])
		if err != nil {
			return nil, err
		}
		if item != nil {
			value = item.Value()
		}
	} else if ctx.Item != nil {
		value = ctx.Item.Value()
	}
	return singleton(num.Coerce(value))
}

func callAbs(ctx Context, args []Expr) (seq.Iterator, error) {
	return rounding(ctx, args, num.Abs)
}

func callFloor(ctx Context, args []Expr) (seq.Iterator, error) {
	return rounding(ctx, args, num.Floor)
}

func callCeiling(ctx Context, args []Expr) (seq.Iterator, error) {
	return rounding(ctx, args, num.Ceiling)
}

func callRound(ctx Context, args []Expr) (seq.Iterator, error) {
	return rounding(ctx, args, num.Round)
}

func callRoundHalfToEven(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 2); err != nil {
		return nil, err
	}
	var scale int64
	if len(args) > 1 {
		n, ok, err := intArg(ctx, args[1])
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, dynamicErrorf(CodeType, "precision can not be the empty sequence")
		}
		scale = n
	}
	return rounding(ctx, args[:1], func(v any) (any, error) {
		return num.RoundHalfToEven(v, int(scale))
	})
}

// rounding applies fn to the single numeric operand. The operand keeps its
// type through the operation; the empty sequence passes through.
func rounding(ctx Context, args []Expr, fn func(any) (any, error)) (seq.Iterator, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return nil, err
	}
	item, err := first(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if item == nil {
		return seq.Empty(), nil
	}
	value, err := atomize(item)
	if err != nil {
		return nil, err
	}
	res, err := fn(value)
	if err != nil {
		return nil, dynamicError(CodeType, err)
	}
	return singleton(res)
}
