package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/midbel/cli"

	"github.com/midbel/xdm/eval"
	"github.com/midbel/xdm/num"
	"github.com/midbel/xdm/seq"
)

var callCmd = cli.Command{
	Name:    "call",
	Alias:   []string{"exec"},
	Summary: "call a builtin function with literal arguments",
	Handler: &CallCmd{},
}

type CallCmd struct {
	Collation string
	BaseURI   string
	Trace     bool
}

func (c *CallCmd) Run(args []string) error {
	set := flag.NewFlagSet("call", flag.ContinueOnError)
	set.StringVar(&c.Collation, "collation", "", "default collation uri")
	set.StringVar(&c.BaseURI, "base", "", "static base uri")
	set.BoolVar(&c.Trace, "trace", false, "trace evaluation")
	if err := set.Parse(args); err != nil {
		return err
	}
	var (
		name   = set.Arg(0)
		tracer = Discard()
		exprs  []eval.Expr
	)
	if c.Trace {
		tracer = TraceStderr()
	}
	for _, a := range set.Args()[1:] {
		exprs = append(exprs, eval.NewValueFromLiteral(parseLiteral(a)))
	}
	ctx := eval.NewContext(nil)
	ctx.DefaultCollation = c.Collation
	ctx.BaseURI = c.BaseURI

	tracer.Enter(name)
	it, err := eval.Call(ctx, name, exprs)
	if err != nil {
		tracer.Error(name, err)
		return err
	}
	items, err := seq.Drain(it)
	tracer.Leave(name)
	if err != nil {
		tracer.Error(name, err)
		return err
	}
	for i := range items {
		str, err := num.ToString(items[i].Value())
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, str)
	}
	if items.Empty() {
		return errFail
	}
	return nil
}

// parseLiteral keeps the most specific type the argument spells: integer,
// double, boolean, then string.
func parseLiteral(arg string) any {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	if arg == "true" || arg == "false" {
		return arg == "true"
	}
	return arg
}
