package eval

import (
	"errors"
	"math"

	"github.com/midbel/xdm/collate"
	"github.com/midbel/xdm/seq"
)

func callIndexOf(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return nil, err
	}
	cmp, err := comparerFor(ctx, args, 2)
	if err != nil {
		return nil, err
	}
	search, err := first(ctx, args[1])
	if err != nil {
		return nil, err
	}
	if search == nil {
		return nil, dynamicErrorf(CodeType, "search item can not be the empty sequence")
	}
	it, err := args[0].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	var (
		found seq.Sequence
		pos   int64
	)
	for item, err := range seq.Values(it) {
		if err != nil {
			return nil, err
		}
		pos++
		ok, err := cmp.Equal(item.Value(), search.Value())
		if err != nil {
			if errors.Is(err, collate.ErrType) {
				return nil, dynamicError(CodeType, err)
			}
			return nil, err
		}
		if ok {
			found.Append(seq.NewLiteral(pos))
		}
	}
	return seq.FromSequence(found), nil
}

// callSubsequence rounds its bounds like round() does, clamps them and keeps
// the source lazy. When the window covers the whole source the source
// iterator is handed back unchanged.
func callSubsequence(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return nil, err
	}
	start, ok, err := doubleArg(ctx, args[1])
	if err != nil {
		return nil, err
	}
	if !ok || math.IsNaN(start) {
		return seq.Empty(), nil
	}
	start = math.Floor(start + 0.5)

	src, err := args[0].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	if len(args) < 3 {
		if math.IsInf(start, 1) {
			src.Close()
			return seq.Empty(), nil
		}
		return seq.Window(src, clampPos(start), -1), nil
	}
	length, ok, err := doubleArg(ctx, args[2])
	if err != nil {
		return nil, err
	}
	if !ok || math.IsNaN(length) {
		src.Close()
		return seq.Empty(), nil
	}
	length = math.Floor(length + 0.5)
	end := start + length - 1
	if math.IsNaN(end) || end < start || end < 1 {
		src.Close()
		return seq.Empty(), nil
	}
	if math.IsInf(end, 1) {
		return seq.Window(src, clampPos(start), -1), nil
	}
	return seq.Window(src, clampPos(start), int(end)), nil
}

func clampPos(f float64) int {
	if f < 1 || math.IsInf(f, -1) {
		return 1
	}
	return int(f)
}

func callReverse(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return nil, err
	}
	src, err := args[0].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	return seq.Reverse(src), nil
}

func callInsertBefore(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 3, 3); err != nil {
		return nil, err
	}
	pos, ok, err := intArg(ctx, args[1])
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, dynamicErrorf(CodeType, "insert position can not be the empty sequence")
	}
	if pos < 1 {
		pos = 1
	}
	head, err := args[0].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	ins, err := args[2].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	tail, err := args[0].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	return seq.Concat(
		seq.Window(head, 1, int(pos)-1),
		ins,
		seq.Window(tail, int(pos), -1),
	), nil
}

func callRemove(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 2); err != nil {
		return nil, err
	}
	pos, ok, err := intArg(ctx, args[1])
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, dynamicErrorf(CodeType, "remove position can not be the empty sequence")
	}
	src, err := args[0].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	if pos < 1 {
		return src, nil
	}
	tail, err := args[0].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	return seq.Concat(
		seq.Window(src, 1, int(pos)-1),
		seq.Window(tail, int(pos)+1, -1),
	), nil
}

func callDistinctValues(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 2); err != nil {
		return nil, err
	}
	cmp, err := comparerFor(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	it, err := args[0].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	var kept seq.Sequence
	for item, err := range seq.Values(it) {
		if err != nil {
			return nil, err
		}
		seen := false
		for i := range kept {
			// operands of different kinds never group together
			ok, err := cmp.Equal(kept[i].Value(), item.Value())
			if err != nil {
				continue
			}
			if ok {
				seen = true
				break
			}
		}
		if !seen {
			kept.Append(item)
		}
	}
	return seq.FromSequence(kept), nil
}

func callCount(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return nil, err
	}
	it, err := args[0].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	var count int64
	for _, err := range seq.Values(it) {
		if err != nil {
			return nil, err
		}
		count++
	}
	return singleton(count)
}

// callUnordered is a hint, not a reordering: the sequence passes through.
func callUnordered(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return nil, err
	}
	return args[0].Iterate(ctx)
}
