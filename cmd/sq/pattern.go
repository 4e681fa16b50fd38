package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"

	"github.com/midbel/xdm/pattern"
)

var matchCmd = cli.Command{
	Name:    "match",
	Summary: "test input strings against a pattern",
	Handler: &MatchCmd{},
}

var replaceCmd = cli.Command{
	Name:    "replace",
	Summary: "replace every match of a pattern in input strings",
	Handler: &ReplaceCmd{},
}

var tokenizeCmd = cli.Command{
	Name:    "tokenize",
	Summary: "split input strings around matches of a pattern",
	Handler: &TokenizeCmd{},
}

var translateCmd = cli.Command{
	Name:    "translate",
	Summary: "show the host form of a pattern",
	Handler: &TranslateCmd{},
}

type MatchCmd struct {
	Flags string
}

func (c *MatchCmd) Run(args []string) error {
	set := flag.NewFlagSet("match", flag.ContinueOnError)
	set.StringVar(&c.Flags, "flags", "", "pattern flags")
	if err := set.Parse(args); err != nil {
		return err
	}
	p, err := pattern.Compile(set.Arg(0), c.Flags)
	if err != nil {
		return err
	}
	ok := p.Matches(set.Arg(1))
	fmt.Fprintln(os.Stdout, ok)
	if !ok {
		return errFail
	}
	return nil
}

type ReplaceCmd struct {
	Flags string
}

func (c *ReplaceCmd) Run(args []string) error {
	set := flag.NewFlagSet("replace", flag.ContinueOnError)
	set.StringVar(&c.Flags, "flags", "", "pattern flags")
	if err := set.Parse(args); err != nil {
		return err
	}
	if err := pattern.CheckReplacement(set.Arg(1)); err != nil {
		return err
	}
	p, err := pattern.Compile(set.Arg(0), c.Flags)
	if err != nil {
		return err
	}
	if p.MatchesEmpty() {
		return fmt.Errorf("pattern matches the empty string: %s", p.Source())
	}
	fmt.Fprintln(os.Stdout, p.Replace(set.Arg(2), set.Arg(1)))
	return nil
}

type TokenizeCmd struct {
	Flags string
}

func (c *TokenizeCmd) Run(args []string) error {
	set := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	set.StringVar(&c.Flags, "flags", "", "pattern flags")
	if err := set.Parse(args); err != nil {
		return err
	}
	p, err := pattern.Compile(set.Arg(0), c.Flags)
	if err != nil {
		return err
	}
	if p.MatchesEmpty() {
		return fmt.Errorf("pattern matches the empty string: %s", p.Source())
	}
	for _, tok := range p.Tokenize(set.Arg(1)) {
		fmt.Fprintln(os.Stdout, tok)
	}
	return nil
}

type TranslateCmd struct {
	Flags string
}

func (c *TranslateCmd) Run(args []string) error {
	set := flag.NewFlagSet("translate", flag.ContinueOnError)
	set.StringVar(&c.Flags, "flags", "", "pattern flags")
	if err := set.Parse(args); err != nil {
		return err
	}
	p, err := pattern.Compile(set.Arg(0), c.Flags)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, p.Host())
	return nil
}
