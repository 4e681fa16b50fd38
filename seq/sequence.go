package seq

import (
	"slices"
)

// Sequence is the materialized form of a sequence of items. Iterators are the
// working currency; a Sequence only appears once something had to be drained.
type Sequence []Item

func Singleton(value any) Sequence {
	var seq Sequence
	seq.Append(NewLiteral(value))
	return seq
}

func (s *Sequence) First() Item {
	if s.Empty() {
		return nil
	}
	return (*s)[0]
}

func (s *Sequence) Len() int {
	return len(*s)
}

func (s *Sequence) Empty() bool {
	return len(*s) == 0
}

func (s *Sequence) Append(item Item) {
	*s = append(*s, item)
}

func (s *Sequence) Concat(other Sequence) {
	*s = slices.Concat(*s, other)
}
