package seq

import (
	"iter"
)

// Iterator is the pull protocol every sequence in the runtime follows. Next
// returns a nil item once the sequence is exhausted and keeps doing so on
// every later call. Position is 1-based while iterating, 0 before the first
// call to Next and Exhausted afterwards. Restart returns an independent
// iterator over the same logical content; it never shares cursor state with
// its origin.
type Iterator interface {
	Next() (Item, error)
	Current() Item
	Position() int
	Restart() Iterator
	Close()
}

const Exhausted = -1

type cursor struct {
	curr Item
	pos  int
}

func (c *cursor) Current() Item {
	return c.curr
}

func (c *cursor) Position() int {
	return c.pos
}

func (c *cursor) put(item Item) (Item, error) {
	c.curr = item
	c.pos++
	return item, nil
}

func (c *cursor) stop() (Item, error) {
	c.curr = nil
	c.pos = Exhausted
	return nil, nil
}

func (c *cursor) done() bool {
	return c.pos == Exhausted
}

type emptyIterator struct {
	cursor
}

func Empty() Iterator {
	return &emptyIterator{}
}

func (it *emptyIterator) Next() (Item, error) {
	return it.stop()
}

func (it *emptyIterator) Restart() Iterator {
	return Empty()
}

func (it *emptyIterator) Close() {}

type singleIterator struct {
	cursor
	item Item
}

func Single(item Item) Iterator {
	if item == nil {
		return Empty()
	}
	return &singleIterator{
		item: item,
	}
}

func (it *singleIterator) Next() (Item, error) {
	if it.done() || it.pos > 0 {
		return it.stop()
	}
	return it.put(it.item)
}

func (it *singleIterator) Restart() Iterator {
	return Single(it.item)
}

func (it *singleIterator) Close() {}

type sliceIterator struct {
	cursor
	items []Item
}

func Of(items ...Item) Iterator {
	return &sliceIterator{
		items: items,
	}
}

func FromSequence(seq Sequence) Iterator {
	return &sliceIterator{
		items: seq,
	}
}

func (it *sliceIterator) Next() (Item, error) {
	if it.done() || it.pos >= len(it.items) {
		return it.stop()
	}
	return it.put(it.items[it.pos])
}

func (it *sliceIterator) Restart() Iterator {
	return &sliceIterator{
		items: it.items,
	}
}

func (it *sliceIterator) Close() {}

// Drain consumes the iterator to the end and materializes what it produced.
func Drain(it Iterator) (Sequence, error) {
	var seq Sequence
	for {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}
		if item == nil {
			return seq, nil
		}
		seq.Append(item)
	}
}

// Values bridges the pull protocol to a range-over-func loop.
func Values(it Iterator) iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		for {
			item, err := it.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if item == nil {
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}
