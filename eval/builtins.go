package eval

import (
	"fmt"

	"github.com/midbel/xdm/collate"
	"github.com/midbel/xdm/environ"
	"github.com/midbel/xdm/num"
	"github.com/midbel/xdm/seq"
)

type BuiltinFunc func(Context, []Expr) (seq.Iterator, error)

var builtins = map[string]BuiltinFunc{
	"index-of":             callIndexOf,
	"subsequence":          callSubsequence,
	"reverse":              callReverse,
	"insert-before":        callInsertBefore,
	"remove":               callRemove,
	"distinct-values":      callDistinctValues,
	"count":                callCount,
	"unordered":            callUnordered,
	"min":                  callMin,
	"max":                  callMax,
	"sum":                  callSum,
	"avg":                  callAvg,
	"compare":              callCompare,
	"contains":             callContains,
	"starts-with":          callStartsWith,
	"ends-with":            callEndsWith,
	"substring-before":     callSubstringBefore,
	"substring-after":      callSubstringAfter,
	"string-length":        callStringLength,
	"substring":            callSubstring,
	"translate":            callTranslate,
	"string-join":          callStringJoin,
	"normalize-space":      callNormalizeSpace,
	"upper-case":           callUpperCase,
	"lower-case":           callLowerCase,
	"matches":              callMatches,
	"replace":              callReplace,
	"tokenize":             callTokenize,
	"number":               callNumber,
	"abs":                  callAbs,
	"floor":                callFloor,
	"ceiling":              callCeiling,
	"round":                callRound,
	"round-half-to-even":   callRoundHalfToEven,
	"doc":                  callDoc,
	"doc-available":        callDocAvailable,
	"collection":           callCollection,
	"resolve-uri":          callResolveUri,
	"error":                callError,
	"position":             callPosition,
	"last":                 callLast,
	"current-group":        callCurrentGroup,
	"current-grouping-key": callCurrentGroupingKey,
	"current-dateTime":     callCurrentDateTime,
	"implicit-timezone":    callImplicitTimezone,
}

func DefaultBuiltin() environ.Environ[BuiltinFunc] {
	env := environ.Empty[BuiltinFunc]()
	for name, fn := range builtins {
		env.Define(name, fn)
	}
	return env
}

// Call evaluates the named builtin with the given argument expressions.
func Call(ctx Context, name string, args []Expr) (seq.Iterator, error) {
	env := ctx.Builtins
	if env == nil {
		env = DefaultBuiltin()
	}
	fn, err := env.Resolve(name)
	if err != nil {
		return nil, dynamicError(CodeArgument, err)
	}
	items, err := fn(ctx, args)
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
	}
	return items, err
}

func checkArity(args []Expr, min, max int) error {
	if len(args) < min || len(args) > max {
		return dynamicError(CodeArgument, ErrArgument)
	}
	return nil
}

// first evaluates an argument down to its first item; nil stands for the
// empty sequence.
func first(ctx Context, e Expr) (seq.Item, error) {
	it, err := e.Iterate(ctx)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	return it.Next()
}

// stringArg evaluates an argument to a single string; the empty sequence
// gives the empty string.
func stringArg(ctx Context, e Expr) (string, error) {
	item, err := first(ctx, e)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", nil
	}
	str, err := num.ToString(item.Value())
	if err != nil {
		return "", dynamicError(CodeType, err)
	}
	return str, nil
}

// doubleArg evaluates an argument to a single double, structurally: failure
// to convert is a type error, not NaN.
func doubleArg(ctx Context, e Expr) (float64, bool, error) {
	item, err := first(ctx, e)
	if err != nil {
		return 0, false, err
	}
	if item == nil {
		return 0, false, nil
	}
	f, err := num.ToFloat(item.Value())
	if err != nil {
		return 0, false, dynamicError(CodeConvert, err)
	}
	return f, true, nil
}

func intArg(ctx Context, e Expr) (int64, bool, error) {
	item, err := first(ctx, e)
	if err != nil {
		return 0, false, err
	}
	if item == nil {
		return 0, false, nil
	}
	i, err := num.ToInt(item.Value())
	if err != nil {
		return 0, false, dynamicError(CodeConvert, err)
	}
	return i, true, nil
}

// comparerFor builds the atomic comparer for an optional trailing collation
// argument at position ix.
func comparerFor(ctx Context, args []Expr, ix int) (*collate.Comparer, error) {
	var uri string
	if ix < len(args) {
		str, err := stringArg(ctx, args[ix])
		if err != nil {
			return nil, err
		}
		uri = str
	}
	coll, err := ctx.resolveCollation(uri)
	if err != nil {
		return nil, err
	}
	return collate.NewComparer(coll), nil
}

// matcherFor resolves the substring-matching capability for an optional
// trailing collation argument. A collation without the capability is an
// error, never a silent fallback to codepoint matching.
func matcherFor(ctx Context, args []Expr, ix int) (collate.SubstringMatcher, error) {
	var uri string
	if ix < len(args) {
		str, err := stringArg(ctx, args[ix])
		if err != nil {
			return nil, err
		}
		uri = str
	}
	coll, err := ctx.resolveCollation(uri)
	if err != nil {
		return nil, err
	}
	m, err := collate.Substring(coll)
	if err != nil {
		return nil, dynamicError(CodeSubstring, err)
	}
	return m, nil
}

func singleton(v any) (seq.Iterator, error) {
	return seq.Single(seq.NewLiteral(v)), nil
}
