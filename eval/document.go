package eval

import (
	"net/url"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/midbel/xdm/seq"
)

// Loader fetches and parses a single document. The node model behind the
// returned handle belongs to the host.
type Loader interface {
	Load(uri string) (seq.Node, error)
}

// Resolver maps a collection URI to its members. The uri arrives already
// resolved against the static base, with the empty string naming the default
// collection; a nil iterator stands for the empty collection. Members can be
// document nodes already loaded by the resolver or bare URI items that the
// functions here hand to the Loader on demand.
type Resolver interface {
	Collection(uri string, options *CollectionOptions) (seq.Iterator, error)
}

// CollectionOptions carries the query parameters of a collection URI. Fields
// are pointers so that an absent parameter stays distinguishable from an
// explicit default. Apart from select, which is validated as a glob, the
// directives reach the resolver uninterpreted.
type CollectionOptions struct {
	Select     *string
	Recurse    *bool
	Validation *string
	StripSpace *bool
	OnError    *string
	XInclude   *bool
	Parser     *string
	Stable     *bool
}

// MatchSelect reports whether a member name satisfies the select glob. No
// select parameter admits everything.
func (o *CollectionOptions) MatchSelect(name string) bool {
	if o == nil || o.Select == nil {
		return true
	}
	ok, err := doublestar.Match(*o.Select, name)
	return err == nil && ok
}

// ParseCollectionURI splits a collection URI into its base and its options.
// The select parameter must be a valid glob.
func ParseCollectionURI(uri string) (string, *CollectionOptions, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", nil, dynamicError(CodeCollection, err)
	}
	var (
		query = u.Query()
		opts  CollectionOptions
	)
	if query.Has("select") {
		sel := query.Get("select")
		if !doublestar.ValidatePattern(sel) {
			return "", nil, dynamicErrorf(CodeCollection, "invalid select pattern: %s", sel)
		}
		opts.Select = &sel
	}
	if query.Has("on-error") {
		mode := query.Get("on-error")
		switch mode {
		case "fail", "warning", "ignore":
		default:
			return "", nil, dynamicErrorf(CodeCollection, "invalid on-error value: %s", mode)
		}
		opts.OnError = &mode
	}
	opts.Recurse = boolParam(query, "recurse")
	opts.StripSpace = boolParam(query, "strip-space")
	opts.XInclude = boolParam(query, "xinclude")
	opts.Stable = boolParam(query, "stable")
	opts.Validation = stringParam(query, "validation")
	opts.Parser = stringParam(query, "parser")

	u.RawQuery = ""
	return u.String(), &opts, nil
}

func boolParam(query url.Values, name string) *bool {
	if !query.Has(name) {
		return nil
	}
	yes := query.Get(name) == "yes"
	return &yes
}

func stringParam(query url.Values, name string) *string {
	if !query.Has(name) {
		return nil
	}
	value := query.Get(name)
	return &value
}

func callDoc(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return nil, err
	}
	item, err := first(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if item == nil {
		return seq.Empty(), nil
	}
	node, err := loadDocument(ctx, item)
	if err != nil {
		return nil, err
	}
	return seq.Single(seq.NewNode(node)), nil
}

// callDocAvailable reports availability instead of failing: every document
// error becomes false.
func callDocAvailable(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return nil, err
	}
	item, err := first(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if item == nil {
		return singleton(false)
	}
	_, err = loadDocument(ctx, item)
	return singleton(err == nil)
}

func loadDocument(ctx Context, item seq.Item) (seq.Node, error) {
	href, err := stringValue(item)
	if err != nil {
		return nil, err
	}
	if ctx.Loader == nil {
		return nil, dynamicError(CodeDocument, ErrUnavailable)
	}
	uri, err := resolveAgainst(ctx.BaseURI, href)
	if err != nil {
		return nil, dynamicError(CodeDocument, err)
	}
	node, err := ctx.Loader.Load(uri)
	if err != nil {
		return nil, dynamicError(CodeDocument, err)
	}
	if node == nil {
		return nil, dynamicError(CodeDocument, ErrUnavailable)
	}
	return node, nil
}

// callCollection yields the members of the named collection. Without a
// resolver every collection is empty. URI members are loaded lazily while the
// result is iterated.
func callCollection(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 0, 1); err != nil {
		return nil, err
	}
	if ctx.Resolver == nil {
		return seq.Empty(), nil
	}
	var uri string
	if len(args) > 0 {
		str, err := stringArg(ctx, args[0])
		if err != nil {
			return nil, err
		}
		uri = str
	}
	var options *CollectionOptions
	if uri != "" {
		base, opts, err := ParseCollectionURI(uri)
		if err != nil {
			return nil, err
		}
		uri, err = resolveAgainst(ctx.BaseURI, base)
		if err != nil {
			return nil, dynamicError(CodeCollection, err)
		}
		options = opts
	}
	members, err := ctx.Resolver.Collection(uri, options)
	if err != nil {
		return nil, dynamicError(CodeCollection, err)
	}
	if members == nil {
		return seq.Empty(), nil
	}
	return seq.Map(members, func(item seq.Item) (seq.Item, error) {
		if !seq.IsURI(item) {
			return item, nil
		}
		node, err := loadDocument(ctx, item)
		if err != nil {
			return nil, err
		}
		return seq.NewNode(node), nil
	}), nil
}

func callResolveUri(ctx Context, args []Expr) (seq.Iterator, error) {
	if err := checkArity(args, 1, 2); err != nil {
		return nil, err
	}
	item, err := first(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if item == nil {
		return seq.Empty(), nil
	}
	relative, err := stringValue(item)
	if err != nil {
		return nil, err
	}
	base := ctx.BaseURI
	if len(args) > 1 {
		base, err = stringArg(ctx, args[1])
		if err != nil {
			return nil, err
		}
	}
	resolved, err := resolveAgainst(base, relative)
	if err != nil {
		return nil, dynamicError(CodeConvert, err)
	}
	return seq.Single(seq.NewURI(resolved)), nil
}

func resolveAgainst(base, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	if ref.IsAbs() || base == "" {
		return href, nil
	}
	root, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return root.ResolveReference(ref).String(), nil
}

func stringValue(item seq.Item) (string, error) {
	str, ok := item.Value().(string)
	if !ok {
		return "", dynamicErrorf(CodeType, "%w: value is not a string", ErrType)
	}
	return str, nil
}
