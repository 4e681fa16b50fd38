package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("invalid pattern syntax")

const maxRepeat = 1000

// Character classes of the schema dialect expressed with RE2 material. \w is
// defined by exclusion (everything that is not punctuation, separator or
// other) rather than by the host's ASCII notion.
const (
	digitClass     = `\p{Nd}`
	wordClass      = `[^\p{P}\p{Z}\p{C}]`
	notWordClass   = `[\p{P}\p{Z}\p{C}]`
	spaceClass     = `\x20\t\n\r`
	initialClass   = `:A-Z_a-z\x{C0}-\x{D6}\x{D8}-\x{F6}\x{F8}-\x{2FF}` +
		`\x{370}-\x{37D}\x{37F}-\x{1FFF}\x{200C}-\x{200D}\x{2070}-\x{218F}` +
		`\x{2C00}-\x{2FEF}\x{3001}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}` +
		`\x{10000}-\x{EFFFF}`
	nameCharClass = initialClass + `\-.0-9\x{B7}\x{300}-\x{36F}\x{203F}-\x{2040}`
)

type translator struct {
	input  string
	pos    int
	out    strings.Builder
	dotAll bool
	depth  int
}

// translate rewrites a pattern of the restricted dialect into RE2 syntax.
// Anchors, alternation, groups and quantifiers carry over; the dialect's
// class escapes are expanded and host-only constructs are rejected.
func translate(input string, dotAll bool) (string, error) {
	t := translator{
		input:  input,
		dotAll: dotAll,
	}
	return t.translate()
}

func (t *translator) translate() (string, error) {
	for !t.done() {
		var err error
		switch c := t.curr(); c {
		case '\\':
			err = t.escape(false)
		case '[':
			err = t.class()
		case ']':
			err = fmt.Errorf("%w: ']' outside of character class", ErrSyntax)
		case '.':
			if t.dotAll {
				t.out.WriteString(`(?s:.)`)
			} else {
				t.out.WriteString(`[^\r\n]`)
			}
			t.next()
		case '{':
			err = t.repeat()
		case '(':
			err = t.group()
		case ')':
			if t.depth == 0 {
				return "", fmt.Errorf("%w: unbalanced ')'", ErrSyntax)
			}
			t.depth--
			t.out.WriteByte(')')
			t.next()
		default:
			t.out.WriteByte(c)
			t.next()
		}
		if err != nil {
			return "", err
		}
	}
	if t.depth > 0 {
		return "", fmt.Errorf("%w: unclosed '('", ErrSyntax)
	}
	return t.out.String(), nil
}

func (t *translator) escape(inClass bool) error {
	t.next()
	if t.done() {
		return fmt.Errorf("%w: escape at end of pattern", ErrSyntax)
	}
	c := t.curr()
	switch c {
	case 'n', 'r', 't', '\\', '|', '.', '-', '^', '$', '?', '*', '+', '{', '}', '(', ')', '[', ']':
		t.out.WriteByte('\\')
		t.out.WriteByte(c)
	case 'd':
		t.expand(inClass, digitClass)
	case 'D':
		if err := t.expandNegated(inClass, c, digitClass); err != nil {
			return err
		}
	case 's':
		t.expand(inClass, spaceClass)
	case 'S':
		if err := t.expandNegated(inClass, c, spaceClass); err != nil {
			return err
		}
	case 'w':
		if inClass {
			return fmt.Errorf(`%w: \w can not be used inside a character class`, ErrSyntax)
		}
		t.out.WriteString(wordClass)
	case 'W':
		if inClass {
			return fmt.Errorf(`%w: \W can not be used inside a character class`, ErrSyntax)
		}
		t.out.WriteString(notWordClass)
	case 'i':
		t.expand(inClass, initialClass)
	case 'I':
		if err := t.expandNegated(inClass, c, initialClass); err != nil {
			return err
		}
	case 'c':
		t.expand(inClass, nameCharClass)
	case 'C':
		if err := t.expandNegated(inClass, c, nameCharClass); err != nil {
			return err
		}
	case 'p', 'P':
		return t.property(c)
	case 'b', 'B', 'A', 'z', 'Z', 'u':
		return fmt.Errorf(`%w: \%c is not part of the dialect`, ErrSyntax, c)
	default:
		if c >= '0' && c <= '9' {
			return fmt.Errorf(`%w: back-reference \%c is not supported`, ErrSyntax, c)
		}
		return fmt.Errorf(`%w: unknown escape \%c`, ErrSyntax, c)
	}
	t.next()
	return nil
}

func (t *translator) expand(inClass bool, content string) {
	if inClass {
		t.out.WriteString(content)
	} else {
		t.out.WriteString("[" + content + "]")
	}
}

func (t *translator) expandNegated(inClass bool, kind byte, content string) error {
	// negated content can not be merged into a surrounding class
	if inClass {
		return fmt.Errorf(`%w: \%c can not be used inside a character class`, ErrSyntax, kind)
	}
	t.out.WriteString("[^" + content + "]")
	return nil
}

func (t *translator) property(kind byte) error {
	t.next()
	if t.done() || t.curr() != '{' {
		return fmt.Errorf(`%w: \%c must be followed by {name}`, ErrSyntax, kind)
	}
	beg := t.pos + 1
	for !t.done() && t.curr() != '}' {
		t.next()
	}
	if t.done() {
		return fmt.Errorf(`%w: unterminated \%c{`, ErrSyntax, kind)
	}
	name := t.input[beg:t.pos]
	if strings.HasPrefix(name, "Is") {
		return fmt.Errorf(`%w: block escape \%c{%s} is not supported`, ErrSyntax, kind, name)
	}
	fmt.Fprintf(&t.out, `\%c{%s}`, kind, name)
	t.next()
	return nil
}

func (t *translator) class() error {
	t.next()
	t.out.WriteByte('[')
	if !t.done() && t.curr() == '^' {
		t.out.WriteByte('^')
		t.next()
	}
	var empty = true
	for !t.done() && t.curr() != ']' {
		switch c := t.curr(); c {
		case '\\':
			if err := t.escape(true); err != nil {
				return err
			}
		case '-':
			if t.peek() == '[' {
				return fmt.Errorf("%w: character class subtraction is not supported", ErrSyntax)
			}
			t.out.WriteByte('-')
			t.next()
		case '[':
			return fmt.Errorf("%w: nested character class", ErrSyntax)
		default:
			t.out.WriteByte(c)
			t.next()
		}
		empty = false
	}
	if t.done() {
		return fmt.Errorf("%w: unclosed character class", ErrSyntax)
	}
	if empty {
		return fmt.Errorf("%w: empty character class", ErrSyntax)
	}
	t.out.WriteByte(']')
	t.next()
	return nil
}

func (t *translator) repeat() error {
	beg := t.pos
	for !t.done() && t.curr() != '}' {
		t.next()
	}
	if t.done() {
		return fmt.Errorf("%w: unclosed repeat quantifier", ErrSyntax)
	}
	t.next()
	quant := t.input[beg:t.pos]
	lo, hi, err := parseRepeat(quant)
	if err != nil {
		return err
	}
	if lo > maxRepeat || hi > maxRepeat {
		return fmt.Errorf("%w: repeat %s exceeds limit of %d", ErrSyntax, quant, maxRepeat)
	}
	t.out.WriteString(quant)
	return nil
}

func parseRepeat(quant string) (int, int, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(quant, "{"), "}")
	lo, rest, ok := strings.Cut(body, ",")
	m, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil || m < 0 {
		return 0, 0, fmt.Errorf("%w: invalid repeat quantifier %s", ErrSyntax, quant)
	}
	if !ok {
		return m, m, nil
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return m, 0, nil
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < m {
		return 0, 0, fmt.Errorf("%w: invalid repeat quantifier %s", ErrSyntax, quant)
	}
	return m, n, nil
}

func (t *translator) group() error {
	if t.peek() == '?' {
		return fmt.Errorf("%w: group modifier (?...) is not part of the dialect", ErrSyntax)
	}
	t.depth++
	t.out.WriteByte('(')
	t.next()
	return nil
}

func (t *translator) curr() byte {
	return t.input[t.pos]
}

func (t *translator) peek() byte {
	if t.pos+1 >= len(t.input) {
		return 0
	}
	return t.input[t.pos+1]
}

func (t *translator) next() {
	t.pos++
}

func (t *translator) done() bool {
	return t.pos >= len(t.input)
}
