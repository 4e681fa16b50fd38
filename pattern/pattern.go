package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrFlag        = errors.New("invalid flag")
	ErrReplacement = errors.New("invalid replacement string")
)

type flagSet struct {
	multiline   bool
	insensitive bool
	dotAll      bool
	extended    bool
}

func parseFlags(flags string) (flagSet, error) {
	var set flagSet
	for _, c := range flags {
		switch c {
		case 'm':
			set.multiline = true
		case 'i':
			set.insensitive = true
		case 's':
			set.dotAll = true
		case 'x':
			set.extended = true
		default:
			return set, fmt.Errorf("%w: %c", ErrFlag, c)
		}
	}
	return set, nil
}

// Pattern is the compiled, immutable form of a translated pattern. Once
// built it is safe to share between concurrent evaluations.
type Pattern struct {
	re     *regexp.Regexp
	source string
	flags  string
}

// Compile translates the given dialect pattern and hands the result to the
// host engine. The flag letters m, i, s and x are mapped onto the host's
// corresponding modes; x is applied before translation by stripping unescaped
// whitespace and comments.
func Compile(source, flags string) (*Pattern, error) {
	set, err := parseFlags(flags)
	if err != nil {
		return nil, err
	}
	input := source
	if set.extended {
		input = stripExtended(input)
	}
	translated, err := translate(input, set.dotAll)
	if err != nil {
		return nil, err
	}
	var prefix string
	if set.insensitive {
		prefix += "i"
	}
	if set.multiline {
		prefix += "m"
	}
	if prefix != "" {
		translated = "(?" + prefix + ")" + translated
	}
	re, err := regexp.Compile(translated)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, source)
	}
	p := Pattern{
		re:     re,
		source: source,
		flags:  flags,
	}
	return &p, nil
}

// stripExtended removes unescaped whitespace and #-comments outside of
// character classes.
func stripExtended(input string) string {
	var (
		out     strings.Builder
		inClass bool
		comment bool
	)
	for i := 0; i < len(input); i++ {
		c := input[i]
		if comment {
			if c == '\n' {
				comment = false
			}
			continue
		}
		switch c {
		case '\\':
			out.WriteByte(c)
			if i+1 < len(input) {
				i++
				out.WriteByte(input[i])
			}
			continue
		case '[':
			inClass = true
		case ']':
			inClass = false
		case ' ', '\t', '\n', '\r':
			if !inClass {
				continue
			}
		case '#':
			if !inClass {
				comment = true
				continue
			}
		}
		out.WriteByte(c)
	}
	return out.String()
}

func (p *Pattern) Source() string {
	return p.source
}

func (p *Pattern) Flags() string {
	return p.flags
}

func (p *Pattern) Host() string {
	return p.re.String()
}

func (p *Pattern) Matches(input string) bool {
	return p.re.MatchString(input)
}

// MatchesEmpty reports whether the pattern matches the zero-length string.
// Replace and tokenize style functions use it to reject such patterns before
// doing any work.
func (p *Pattern) MatchesEmpty() bool {
	return p.re.MatchString("")
}

func (p *Pattern) Groups() int {
	return p.re.NumSubexp()
}

// Replace substitutes every match of the pattern in input. The replacement
// string must have been validated with CheckReplacement beforehand; group
// references name captured groups by number and expand to the empty string
// when the group did not participate in the match.
func (p *Pattern) Replace(input, replacement string) string {
	var (
		out  strings.Builder
		last int
	)
	for _, m := range p.re.FindAllStringSubmatchIndex(input, -1) {
		out.WriteString(input[last:m[0]])
		out.WriteString(p.expand(input, replacement, m))
		last = m[1]
	}
	out.WriteString(input[last:])
	return out.String()
}

func (p *Pattern) expand(input, replacement string, match []int) string {
	var out strings.Builder
	for i := 0; i < len(replacement); i++ {
		c := replacement[i]
		switch {
		case c == '\\' && i+1 < len(replacement):
			i++
			out.WriteByte(replacement[i])
		case c == '$':
			group, width := p.groupRef(replacement[i+1:])
			i += width
			if group >= 0 && match[2*group] >= 0 {
				out.WriteString(input[match[2*group]:match[2*group+1]])
			}
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// groupRef reads the longest run of digits that still names a group of the
// pattern. CheckReplacement guarantees at least one digit follows.
func (p *Pattern) groupRef(rest string) (int, int) {
	var width int
	for width < len(rest) && rest[width] >= '0' && rest[width] <= '9' {
		width++
	}
	for ; width > 1; width-- {
		n, _ := strconv.Atoi(rest[:width])
		if n <= p.Groups() {
			break
		}
	}
	n, _ := strconv.Atoi(rest[:width])
	if n > p.Groups() {
		return -1, width
	}
	return n, width
}

// Tokenize splits input around every match of the pattern. Adjacent matches
// produce empty tokens; an empty input produces no token at all.
func (p *Pattern) Tokenize(input string) []string {
	if input == "" {
		return nil
	}
	return p.re.Split(input, -1)
}

// CheckReplacement validates the $ and \ escapes of a replacement string: $
// must announce a capture group reference and \ may only escape itself or $.
// The check runs before any replacement, whether or not the pattern defines
// the referenced groups.
func CheckReplacement(replacement string) error {
	for i := 0; i < len(replacement); i++ {
		switch replacement[i] {
		case '\\':
			if i+1 >= len(replacement) || (replacement[i+1] != '\\' && replacement[i+1] != '$') {
				return fmt.Errorf(`%w: \ must be followed by \ or $`, ErrReplacement)
			}
			i++
		case '$':
			if i+1 >= len(replacement) || replacement[i+1] < '0' || replacement[i+1] > '9' {
				return fmt.Errorf("%w: $ must be followed by a digit", ErrReplacement)
			}
		}
	}
	return nil
}

// Cache keeps patterns compiled from literal constants so that every
// evaluation of a prepared expression reuses the same artifact. Patterns
// built from runtime values bypass the cache entirely.
type Cache struct {
	mu       sync.RWMutex
	patterns map[[2]string]*Pattern
}

func NewCache() *Cache {
	return &Cache{
		patterns: make(map[[2]string]*Pattern),
	}
}

func (c *Cache) Get(source, flags string) (*Pattern, error) {
	key := [2]string{source, flags}
	c.mu.RLock()
	p, ok := c.patterns[key]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}
	p, err := Compile(source, flags)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.patterns[key] = p
	c.mu.Unlock()
	return p, nil
}
