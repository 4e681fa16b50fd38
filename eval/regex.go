package eval

import (
	"errors"
	"strings"

	"github.com/midbel/xdm/pattern"
	"github.com/midbel/xdm/seq"
)

func callMatches(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return nil, err
	}
	str, err := stringArg(ctx, args[0])
	if err != nil {
		return nil, err
	}
	p, err := patternFor(ctx, args, 1, 2)
	if err != nil {
		return nil, err
	}
	return singleton(p.Matches(str))
}

func callReplace(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 3, 4); err != nil {
		return nil, err
	}
	replacement, err := stringArg(ctx, args[2])
	if err != nil {
		return nil, err
	}
	if err := pattern.CheckReplacement(replacement); err != nil {
		return nil, dynamicError(CodeReplacement, err)
	}
	str, err := stringArg(ctx, args[0])
	if err != nil {
		return nil, err
	}
	p, err := patternFor(ctx, args, 1, 3)
	if err != nil {
		return nil, err
	}
	if p.MatchesEmpty() {
		return nil, dynamicErrorf(CodeEmptyMatch, "pattern matches the empty string: %s", p.Source())
	}
	return singleton(p.Replace(str, replacement))
}

// callTokenize splits on whitespace when given a single argument and around
// pattern matches otherwise.
func callTokenize(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 3); err != nil {
		return nil, err
	}
	str, err := stringArg(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return tokens(strings.Fields(str)), nil
	}
	p, err := patternFor(ctx, args, 1, 2)
	if err != nil {
		return nil, err
	}
	if p.MatchesEmpty() {
		return nil, dynamicErrorf(CodeEmptyMatch, "pattern matches the empty string: %s", p.Source())
	}
	return tokens(p.Tokenize(str)), nil
}

func tokens(list []string) seq.Iterator {
	var items seq.Sequence
	for i := range list {
		items.Append(seq.NewLiteral(list[i]))
	}
	return seq.FromSequence(items)
}

// patternFor compiles the pattern argument at patIx with the optional flags
// argument at flagIx. Patterns written as literals go through the context
// cache so a prepared expression compiles them once.
func patternFor(ctx Context, args []Expr, patIx, flagIx int) (*pattern.Pattern, error) {
	source, err := stringArg(ctx, args[patIx])
	if err != nil {
		return nil, err
	}
	var flags string
	if flagIx < len(args) {
		flags, err = stringArg(ctx, args[flagIx])
		if err != nil {
			return nil, err
		}
	}
	cacheable := isConstant(args[patIx]) && (flagIx >= len(args) || isConstant(args[flagIx]))
	var p *pattern.Pattern
	if cacheable && ctx.Patterns != nil {
		p, err = ctx.Patterns.Get(source, flags)
	} else {
		p, err = pattern.Compile(source, flags)
	}
	if err != nil {
		switch {
		case errors.Is(err, pattern.ErrFlag):
			return nil, dynamicError(CodeFlags, err)
		case errors.Is(err, pattern.ErrSyntax):
			return nil, dynamicError(CodePattern, err)
		default:
			return nil, err
		}
	}
	return p, nil
}
