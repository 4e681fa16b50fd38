package environ

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var ErrDefined = errors.New("undefined identifier")

type Environ[T any] interface {
	Resolve(string) (T, error)
	Define(string, T)
	Exists(string) bool
	Names() []string
}

type Env[T any] struct {
	values map[string]T
	parent Environ[T]
}

func Empty[T any]() Environ[T] {
	return Enclosed[T](nil)
}

func Enclosed[T any](parent Environ[T]) Environ[T] {
	e := Env[T]{
		values: make(map[string]T),
		parent: parent,
	}
	return &e
}

func (e *Env[T]) Names() []string {
	names := slices.Collect(maps.Keys(e.values))
	slices.Sort(names)
	return names
}

func (e *Env[T]) Define(ident string, value T) {
	e.values[ident] = value
}

func (e *Env[T]) Exists(ident string) bool {
	if _, ok := e.values[ident]; ok {
		return true
	}
	if e.parent != nil {
		return e.parent.Exists(ident)
	}
	return false
}

func (e *Env[T]) Resolve(ident string) (T, error) {
	value, ok := e.values[ident]
	if ok {
		return value, nil
	}
	if e.parent != nil {
		return e.parent.Resolve(ident)
	}
	var zero T
	return zero, fmt.Errorf("%s: %w", ident, ErrDefined)
}

func (e *Env[T]) Unwrap() Environ[T] {
	if e.parent == nil {
		return e
	}
	return e.parent
}

func (e *Env[T]) Clone() Environ[T] {
	var x Env[T]
	x.values = maps.Clone(e.values)
	if x.values == nil {
		x.values = make(map[string]T)
	}
	if c, ok := e.parent.(interface{ Clone() Environ[T] }); ok {
		x.parent = c.Clone()
	}
	return &x
}
