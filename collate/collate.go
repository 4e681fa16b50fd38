package collate

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/midbel/xdm/environ"
)

const (
	CodepointURI = "http://www.w3.org/2005/xpath-functions/collation/codepoint"
	CaseBlindURI = "http://www.w3.org/2005/xpath-functions/collation/html-ascii-case-insensitive"
	UcaURI       = "http://www.w3.org/2013/collation/UCA"
)

var (
	ErrUnknown   = errors.New("unknown collation")
	ErrSubstring = errors.New("collation does not support substring matching")
)

// Collation gives equality and ordering over strings. Collations that also
// know how to match substrings under their notion of character equivalence
// implement SubstringMatcher as well; the others do not, and asking them is
// an error, not a fallback.
type Collation interface {
	Uri() string
	Compare(a, b string) int
}

type SubstringMatcher interface {
	Collation
	Contains(str, sub string) bool
	StartsWith(str, sub string) bool
	EndsWith(str, sub string) bool
	CutBefore(str, sub string) (string, bool)
	CutAfter(str, sub string) (string, bool)
}

// Substring returns the substring-matching capability of the collation or an
// error when the collation lacks it.
func Substring(c Collation) (SubstringMatcher, error) {
	m, ok := c.(SubstringMatcher)
	if !ok {
		return nil, fmt.Errorf("%s: %w", c.Uri(), ErrSubstring)
	}
	return m, nil
}

type Registry struct {
	known environ.Environ[Collation]
}

func NewRegistry() *Registry {
	reg := Registry{
		known: environ.Empty[Collation](),
	}
	reg.Register(codepoint{})
	reg.Register(caseblind{})
	return &reg
}

func (r *Registry) Register(c Collation) {
	r.known.Define(c.Uri(), c)
}

// Lookup resolves a collation URI. The empty URI names the codepoint
// collation. UCA URIs are built on demand from their query parameters.
func (r *Registry) Lookup(uri string) (Collation, error) {
	if uri == "" {
		uri = CodepointURI
	}
	if c, err := r.known.Resolve(uri); err == nil {
		return c, nil
	}
	if strings.HasPrefix(uri, UcaURI) {
		return parseUca(uri)
	}
	return nil, fmt.Errorf("%s: %w", uri, ErrUnknown)
}

type codepoint struct{}

func (codepoint) Uri() string {
	return CodepointURI
}

func (codepoint) Compare(a, b string) int {
	return strings.Compare(a, b)
}

func (codepoint) Contains(str, sub string) bool {
	return strings.Contains(str, sub)
}

func (codepoint) StartsWith(str, sub string) bool {
	return strings.HasPrefix(str, sub)
}

func (codepoint) EndsWith(str, sub string) bool {
	return strings.HasSuffix(str, sub)
}

func (codepoint) CutBefore(str, sub string) (string, bool) {
	before, _, ok := strings.Cut(str, sub)
	return before, ok
}

func (codepoint) CutAfter(str, sub string) (string, bool) {
	_, after, ok := strings.Cut(str, sub)
	return after, ok
}

// caseblind folds ASCII letters before comparing. Folding preserves byte
// offsets so cut positions computed on the folded form apply to the input.
type caseblind struct{}

func (caseblind) Uri() string {
	return CaseBlindURI
}

func (caseblind) Compare(a, b string) int {
	return strings.Compare(foldASCII(a), foldASCII(b))
}

func (caseblind) Contains(str, sub string) bool {
	return strings.Contains(foldASCII(str), foldASCII(sub))
}

func (caseblind) StartsWith(str, sub string) bool {
	return strings.HasPrefix(foldASCII(str), foldASCII(sub))
}

func (caseblind) EndsWith(str, sub string) bool {
	return strings.HasSuffix(foldASCII(str), foldASCII(sub))
}

func (caseblind) CutBefore(str, sub string) (string, bool) {
	ix := strings.Index(foldASCII(str), foldASCII(sub))
	if ix < 0 {
		return "", false
	}
	return str[:ix], true
}

func (caseblind) CutAfter(str, sub string) (string, bool) {
	ix := strings.Index(foldASCII(str), foldASCII(sub))
	if ix < 0 {
		return "", false
	}
	return str[ix+len(sub):], true
}

func foldASCII(str string) string {
	return strings.Map(func(c rune) rune {
		if c >= 'A' && c <= 'Z' {
			return c + ('a' - 'A')
		}
		return c
	}, str)
}

type uca struct {
	uri  string
	coll *collate.Collator
}

func parseUca(uri string) (Collation, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, ErrUnknown)
	}
	var (
		query = u.Query()
		lang  = query.Get("lang")
		opts  []collate.Option
	)
	tag := language.Und
	if lang != "" {
		tag, err = language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", uri, ErrUnknown)
		}
	}
	switch query.Get("strength") {
	case "primary", "1":
		opts = append(opts, collate.IgnoreCase, collate.IgnoreDiacritics)
	case "secondary", "2":
		opts = append(opts, collate.IgnoreCase)
	}
	if query.Get("numeric") == "yes" {
		opts = append(opts, collate.Numeric)
	}
	c := uca{
		uri:  uri,
		coll: collate.New(tag, opts...),
	}
	return c, nil
}

func (c uca) Uri() string {
	return c.uri
}

func (c uca) Compare(a, b string) int {
	return c.coll.CompareString(a, b)
}
