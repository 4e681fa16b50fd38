package eval

import (
	"math"
	"strings"

	"github.com/midbel/xdm/chars"
	"github.com/midbel/xdm/num"
	"github.com/midbel/xdm/seq"
)

func callCompare(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return nil, err
	}
	cmp, err := comparerFor(ctx, args, 2)
	if err != nil {
		return nil, err
	}
	left, err := first(ctx, args[0])
	if err != nil {
		return nil, err
	}
	right, err := first(ctx, args[1])
	if err != nil {
		return nil, err
	}
	if left == nil || right == nil {
		return seq.Empty(), nil
	}
	a, err := num.ToString(left.Value())
	if err != nil {
		return nil, dynamicError(CodeType, err)
	}
	b, err := num.ToString(right.Value())
	if err != nil {
		return nil, dynamicError(CodeType, err)
	}
	res := cmp.Collation().Compare(a, b)
	return singleton(int64(res))
}

func callContains(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return nil, err
	}
	m, err := matcherFor(ctx, args, 2)
	if err != nil {
		return nil, err
	}
	str, sub, err := stringPair(ctx, args)
	if err != nil {
		return nil, err
	}
	return singleton(m.Contains(str, sub))
}

func callStartsWith(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return nil, err
	}
	m, err := matcherFor(ctx, args, 2)
	if err != nil {
		return nil, err
	}
	str, sub, err := stringPair(ctx, args)
	if err != nil {
		return nil, err
	}
	return singleton(m.StartsWith(str, sub))
}

func callEndsWith(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return nil, err
	}
	m, err := matcherFor(ctx, args, 2)
	if err != nil {
		return nil, err
	}
	str, sub, err := stringPair(ctx, args)
	if err != nil {
		return nil, err
	}
	return singleton(m.EndsWith(str, sub))
}

func callSubstringBefore(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return nil, err
	}
	m, err := matcherFor(ctx, args, 2)
	if err != nil {
		return nil, err
	}
	str, sub, err := stringPair(ctx, args)
	if err != nil {
		return nil, err
	}
	before, _ := m.CutBefore(str, sub)
	return singleton(before)
}

func callSubstringAfter(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return nil, err
	}
	m, err := matcherFor(ctx, args, 2)
	if err != nil {
		return nil, err
	}
	str, sub, err := stringPair(ctx, args)
	if err != nil {
		return nil, err
	}
	after, _ := m.CutAfter(str, sub)
	return singleton(after)
}

func stringPair(ctx Context, args []Expr) (string, string, error) {
	str, err := stringArg(ctx, args[0])
	if err != nil {
		return "", "", err
	}
	sub, err := stringArg(ctx, args[1])
	if err != nil {
		return "", "", err
	}
	return str, sub, nil
}

func callStringLength(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 1); err != nil {
		return nil, err
	}
	str, err := contextString(ctx, args)
	if err != nil {
		return nil, err
	}
	return singleton(int64(chars.Length(str)))
}

// callSubstring counts codepoints and rounds its bounds the way round() does.
// An astral codepoint is one position, not two.
func callSubstring(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return nil, err
	}
	str, err := stringArg(ctx, args[0])
	if err != nil {
		return nil, err
	}
	start, ok, err := doubleArg(ctx, args[1])
	if err != nil {
		return nil, err
	}
	if !ok || math.IsNaN(start) || math.IsInf(start, 1) {
		return singleton("")
	}
	start = math.Floor(start + 0.5)
	end := math.Inf(1)
	if len(args) > 2 {
		length, ok, err := doubleArg(ctx, args[2])
		if err != nil {
			return nil, err
		}
		if !ok || math.IsNaN(length) {
			return singleton("")
		}
		end = start + math.Floor(length+0.5)
	}
	if math.IsNaN(end) || end <= 1 || end <= start {
		return singleton("")
	}
	last := chars.Length(str) + 1
	if float64(last) < end {
		end = float64(last)
	}
	return singleton(chars.Slice(str, clampPos(start), int(end)))
}

func callTranslate(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 3, 3); err != nil {
		return nil, err
	}
	str, err := stringArg(ctx, args[0])
	if err != nil {
		return nil, err
	}
	from, err := stringArg(ctx, args[1])
	if err != nil {
		return nil, err
	}
	to, err := stringArg(ctx, args[2])
	if err != nil {
		return nil, err
	}
	return singleton(chars.Translate(str, from, to))
}

func callStringJoin(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 2); err != nil {
		return nil, err
	}
	var sep string
	if len(args) > 1 {
		str, err := stringArg(ctx, args[1])
		if err != nil {
			return nil, err
		}
		sep = str
	}
	it, err := args[0].Iterate(ctx)
	if err != nil {
		return nil, err
	}
	var parts []string
	for item, err := range seq.Values(it) {
		if err != nil {
			return nil, err
		}
		str, err := num.ToString(item.Value())
		if err != nil {
			return nil, dynamicError(CodeType, err)
		}
		parts = append(parts, str)
	}
	return singleton(strings.Join(parts, sep))
}

func callNormalizeSpace(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 1); err != nil {
		return nil, err
	}
	str, err := contextString(ctx, args)
	if err != nil {
		return nil, err
	}
	return singleton(strings.Join(strings.Fields(str), " "))
}

func callUpperCase(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return nil, err
	}
	str, err := stringArg(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return singleton(strings.ToUpper(str))
}

func callLowerCase(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return nil, err
	}
	str, err := stringArg(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return singleton(strings.ToLower(str))
}

// contextString gives the string value of the only argument or, without one,
// of the context item.
func contextString(ctx Context, args []Expr) (string, error) {
	if len(args) > 0 {
		return stringArg(ctx, args[0])
	}
	if ctx.Item == nil {
		return "", nil
	}
	str, err := num.ToString(ctx.Item.Value())
	if err != nil {
		return "", dynamicError(CodeType, err)
	}
	return str, nil
}
