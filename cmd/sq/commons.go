package main

import (
	"bufio"
	"io"
	"os"

	"charm.land/lipgloss/v2"
)

var (
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	fileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// readLines collects the lines of the named file; the empty name reads the
// standard input.
func readLines(file string) ([]string, error) {
	var r io.Reader = os.Stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var (
		scan  = bufio.NewScanner(r)
		lines []string
	)
	for scan.Scan() {
		lines = append(lines, scan.Text())
	}
	return lines, scan.Err()
}
