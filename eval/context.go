package eval

import (
	"slices"
	"time"

	"github.com/midbel/xdm/collate"
	"github.com/midbel/xdm/environ"
	"github.com/midbel/xdm/pattern"
	"github.com/midbel/xdm/seq"
)

// Expr is a pre-compiled argument expression. Parsing expression text into
// Exprs belongs to the host; the functions here only pull values out of them.
type Expr interface {
	Iterate(Context) (seq.Iterator, error)
}

// Context carries the dynamic state one evaluation runs against: the current
// item with its 1-based position and the size of the focus, variable
// bindings, the builtin table, collations, the pattern cache of the prepared
// expression, the clock and the grouping state.
type Context struct {
	Item  seq.Item
	Index int
	Size  int

	environ.Environ[Expr]
	Builtins environ.Environ[BuiltinFunc]

	Collations       *collate.Registry
	DefaultCollation string
	Patterns         *pattern.Cache

	Resolver Resolver
	Loader   Loader
	BaseURI  string

	Now      time.Time
	Timezone *time.Location

	Group    seq.Iterator
	GroupKey seq.Item
}

func NewContext(item seq.Item) Context {
	ctx := Context{
		Item:       item,
		Index:      1,
		Size:       1,
		Environ:    environ.Empty[Expr](),
		Builtins:   DefaultBuiltin(),
		Collations: collate.NewRegistry(),
		Patterns:   pattern.NewCache(),
		Now:        time.Now(),
		Timezone:   time.Local,
	}
	return ctx
}

// Sub moves the focus to another item while keeping everything else.
func (c Context) Sub(item seq.Item, pos, size int) Context {
	ctx := c
	ctx.Item = item
	ctx.Index = pos
	ctx.Size = size
	return ctx
}

// Nest opens a new variable scope enclosed in the current one.
func (c Context) Nest() Context {
	ctx := c
	ctx.Environ = environ.Enclosed(c.Environ)
	return ctx
}

func (c Context) resolveCollation(uri string) (collate.Collation, error) {
	if uri == "" {
		uri = c.DefaultCollation
	}
	reg := c.Collations
	if reg == nil {
		reg = collate.NewRegistry()
	}
	coll, err := reg.Lookup(uri)
	if err != nil {
		return nil, dynamicError(CodeCollation, err)
	}
	return coll, nil
}

type value struct {
	items seq.Sequence
}

func NewValue(items ...seq.Item) Expr {
	return value{
		items: items,
	}
}

func NewValueFromLiteral(v any) Expr {
	return NewValue(seq.NewLiteral(v))
}

func (v value) Iterate(_ Context) (seq.Iterator, error) {
	return seq.FromSequence(slices.Clone(v.items)), nil
}

// isConstant reports whether an argument is a literal value known before
// evaluation, which is what allows pattern compilation to be cached.
func isConstant(e Expr) bool {
	_, ok := e.(value)
	return ok
}

type variable struct {
	ident string
}

func Variable(ident string) Expr {
	return variable{
		ident: ident,
	}
}

func (v variable) Iterate(ctx Context) (seq.Iterator, error) {
	expr, err := ctx.Resolve(v.ident)
	if err != nil {
		return nil, err
	}
	return expr.Iterate(ctx)
}
