package eval

import (
	"errors"
	"time"

	"github.com/midbel/xdm/seq"
)

// callError never returns a sequence. The default code marks a user raised
// error without further detail.
func callError(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 2); err != nil {
		return nil, err
	}
	code := CodeUser
	if len(args) > 0 {
		str, err := stringArg(ctx, args[0])
		if err != nil {
			return nil, err
		}
		if str != "" {
			code = str
		}
	}
	desc := "error raised by the caller"
	if len(args) > 1 {
		str, err := stringArg(ctx, args[1])
		if err != nil {
			return nil, err
		}
		desc = str
	}
	return nil, dynamicError(code, errors.New(desc))
}

func callPosition(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 0); err != nil {
		return nil, err
	}
	return singleton(int64(ctx.Index))
}

func callLast(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 0); err != nil {
		return nil, err
	}
	return singleton(int64(ctx.Size))
}

// callCurrentGroup replays the group from its start so that several uses
// inside one grouping body stay independent.
func callCurrentGroup(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 0); err != nil {
		return nil, err
	}
	if ctx.Group == nil {
		return seq.Empty(), nil
	}
	return ctx.Group.Restart(), nil
}

func callCurrentGroupingKey(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 0); err != nil {
		return nil, err
	}
	if ctx.GroupKey == nil {
		return seq.Empty(), nil
	}
	return seq.Single(ctx.GroupKey), nil
}

// callCurrentDateTime is deterministic within one evaluation: every call
// observes the instant the context was created with.
func callCurrentDateTime(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 0); err != nil {
		return nil, err
	}
	now := ctx.Now
	if ctx.Timezone != nil {
		now = now.In(ctx.Timezone)
	}
	return singleton(now)
}

// callImplicitTimezone gives the zone offset as a duration so it stays
// comparable and usable in date arithmetic.
func callImplicitTimezone(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 0); err != nil {
		return nil, err
	}
	now := ctx.Now
	if ctx.Timezone != nil {
		now = now.In(ctx.Timezone)
	}
	_, offset := now.Zone()
	return singleton(time.Duration(offset) * time.Second)
}
