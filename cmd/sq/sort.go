package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/midbel/cli"

	"github.com/midbel/xdm/collate"
)

var sortCmd = cli.Command{
	Name:    "sort",
	Summary: "sort lines of a file under a collation",
	Handler: &SortCmd{},
}

type SortCmd struct {
	Collation string
	Reverse   bool
}

func (c *SortCmd) Run(args []string) error {
	set := flag.NewFlagSet("sort", flag.ContinueOnError)
	set.StringVar(&c.Collation, "collation", "", "collation uri")
	set.BoolVar(&c.Reverse, "reverse", false, "sort in descending order")
	if err := set.Parse(args); err != nil {
		return err
	}
	coll, err := collate.NewRegistry().Lookup(c.Collation)
	if err != nil {
		return err
	}
	lines, err := readLines(set.Arg(0))
	if err != nil {
		return err
	}
	slices.SortStableFunc(lines, func(a, b string) int {
		res := coll.Compare(a, b)
		if c.Reverse {
			res = -res
		}
		return res
	})
	for _, line := range lines {
		fmt.Fprintln(os.Stdout, line)
	}
	return nil
}
