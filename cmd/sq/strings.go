package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/midbel/cli"

	"github.com/midbel/xdm/chars"
)

var lengthCmd = cli.Command{
	Name:    "length",
	Summary: "count the codepoints of a string",
	Handler: &LengthCmd{},
}

var sliceCmd = cli.Command{
	Name:    "slice",
	Summary: "extract a codepoint range of a string",
	Handler: &SliceCmd{},
}

var mapCmd = cli.Command{
	Name:    "map",
	Summary: "map codepoints of a string onto others",
	Handler: &MapCmd{},
}

type LengthCmd struct{}

func (c *LengthCmd) Run(args []string) error {
	set := flag.NewFlagSet("length", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, chars.Length(set.Arg(0)))
	return nil
}

type SliceCmd struct{}

func (c *SliceCmd) Run(args []string) error {
	set := flag.NewFlagSet("slice", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		return err
	}
	start, err := strconv.Atoi(set.Arg(1))
	if err != nil {
		return fmt.Errorf("invalid start position: %s", set.Arg(1))
	}
	end, err := strconv.Atoi(set.Arg(2))
	if err != nil {
		return fmt.Errorf("invalid end position: %s", set.Arg(2))
	}
	fmt.Fprintln(os.Stdout, chars.Slice(set.Arg(0), start, end))
	return nil
}

type MapCmd struct{}

func (c *MapCmd) Run(args []string) error {
	set := flag.NewFlagSet("map", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, chars.Translate(set.Arg(0), set.Arg(1), set.Arg(2)))
	return nil
}
