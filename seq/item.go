package seq

import (
	"math"
	"time"
)

// Node is the opaque handle this core keeps on documents and elements. The
// node model itself lives with the host; only identity and string value are
// ever consulted here.
type Node interface {
	Identity() string
	Value() string
}

type Item interface {
	Value() any
	True() bool
	Atomic() bool
}

type literalItem struct {
	value any
}

func NewLiteral(value any) Item {
	if i, ok := value.(Item); ok {
		return i
	}
	return literalItem{
		value: value,
	}
}

func (i literalItem) Value() any {
	return i.value
}

func (i literalItem) Atomic() bool {
	return true
}

func (i literalItem) True() bool {
	switch v := i.value.(type) {
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int64:
		return v != 0
	case string:
		return v != ""
	case bool:
		return v
	case time.Time:
		return !v.IsZero()
	case time.Duration:
		return v != 0
	default:
		return false
	}
}

// untypedItem carries the string value of a node that went through
// atomization without a schema type.
type untypedItem struct {
	value string
}

func NewUntyped(value string) Item {
	return untypedItem{
		value: value,
	}
}

func (i untypedItem) Value() any {
	return i.value
}

func (i untypedItem) Atomic() bool {
	return true
}

func (i untypedItem) True() bool {
	return i.value != ""
}

func IsUntyped(item Item) bool {
	_, ok := item.(untypedItem)
	return ok
}

type uriItem struct {
	value string
}

func NewURI(value string) Item {
	return uriItem{
		value: value,
	}
}

func (i uriItem) Value() any {
	return i.value
}

func (i uriItem) Atomic() bool {
	return true
}

func (i uriItem) True() bool {
	return i.value != ""
}

func IsURI(item Item) bool {
	_, ok := item.(uriItem)
	return ok
}

type nodeItem struct {
	node Node
}

func NewNode(node Node) Item {
	return nodeItem{
		node: node,
	}
}

func (i nodeItem) Value() any {
	return i.node.Value()
}

func (i nodeItem) Atomic() bool {
	return false
}

func (i nodeItem) True() bool {
	return true
}

func NodeOf(item Item) (Node, bool) {
	n, ok := item.(nodeItem)
	if !ok {
		return nil, false
	}
	return n.node, true
}
