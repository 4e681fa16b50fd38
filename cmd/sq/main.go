package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"
)

var errFail = errors.New("fail")

var (
	summary = "sq evaluates sequence, string and pattern operations"
	help    = ""
)

func main() {
	var (
		set  = cli.NewFlagSet("sq")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, failStyle.Render(err.Error()))
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"call"}, &callCmd)
	root.Register([]string{"exec"}, &callCmd)
	root.Register([]string{"pattern", "match"}, &matchCmd)
	root.Register([]string{"pattern", "replace"}, &replaceCmd)
	root.Register([]string{"pattern", "tokenize"}, &tokenizeCmd)
	root.Register([]string{"pattern", "translate"}, &translateCmd)
	root.Register([]string{"grep"}, &grepCmd)
	root.Register([]string{"sort"}, &sortCmd)
	root.Register([]string{"string", "length"}, &lengthCmd)
	root.Register([]string{"string", "slice"}, &sliceCmd)
	root.Register([]string{"string", "map"}, &mapCmd)

	return root
}
