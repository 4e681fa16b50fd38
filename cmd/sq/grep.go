package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/midbel/cli"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/xdm/pattern"
)

var grepCmd = cli.Command{
	Name:    "grep",
	Summary: "print the lines of files matching a pattern",
	Handler: &GrepCmd{},
}

type GrepCmd struct {
	Flags string
	Jobs  int
}

func (c *GrepCmd) Run(args []string) error {
	set := flag.NewFlagSet("grep", flag.ContinueOnError)
	set.StringVar(&c.Flags, "flags", "", "pattern flags")
	set.IntVar(&c.Jobs, "jobs", 4, "number of files scanned concurrently")
	if err := set.Parse(args); err != nil {
		return err
	}
	p, err := pattern.Compile(set.Arg(0), c.Flags)
	if err != nil {
		return err
	}
	var (
		grp   errgroup.Group
		mu    sync.Mutex
		total int
	)
	grp.SetLimit(max(c.Jobs, 1))
	for _, file := range set.Args()[1:] {
		grp.Go(func() error {
			lines, err := readLines(file)
			if err != nil {
				return err
			}
			var found []string
			for _, line := range lines {
				if p.Matches(line) {
					found = append(found, line)
				}
			}
			mu.Lock()
			defer mu.Unlock()
			total += len(found)
			for _, line := range found {
				fmt.Fprintf(os.Stdout, "%s: %s\n", fileStyle.Render(file), matchStyle.Render(line))
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	if total == 0 {
		return errFail
	}
	return nil
}
