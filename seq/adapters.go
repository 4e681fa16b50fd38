package seq

// Adapters own their upstream iterator exclusively. Restart restarts the
// upstream source instead of replaying buffered output so that side effects
// and ordering stay coherent across passes.

type mapIterator struct {
	cursor
	src Iterator
	fn  func(Item) (Item, error)
}

func Map(src Iterator, fn func(Item) (Item, error)) Iterator {
	return &mapIterator{
		src: src,
		fn:  fn,
	}
}

func (it *mapIterator) Next() (Item, error) {
	if it.done() {
		return it.stop()
	}
	item, err := it.src.Next()
	if err != nil {
		return nil, err
	}
	if item == nil {
		return it.stop()
	}
	item, err = it.fn(item)
	if err != nil {
		return nil, err
	}
	return it.put(item)
}

func (it *mapIterator) Restart() Iterator {
	return Map(it.src.Restart(), it.fn)
}

func (it *mapIterator) Close() {
	it.src.Close()
}

type filterIterator struct {
	cursor
	src  Iterator
	keep func(Item) (bool, error)
}

func Filter(src Iterator, keep func(Item) (bool, error)) Iterator {
	return &filterIterator{
		src:  src,
		keep: keep,
	}
}

func (it *filterIterator) Next() (Item, error) {
	if it.done() {
		return it.stop()
	}
	for {
		item, err := it.src.Next()
		if err != nil {
			return nil, err
		}
		if item == nil {
			return it.stop()
		}
		ok, err := it.keep(item)
		if err != nil {
			return nil, err
		}
		if ok {
			return it.put(item)
		}
	}
}

func (it *filterIterator) Restart() Iterator {
	return Filter(it.src.Restart(), it.keep)
}

func (it *filterIterator) Close() {
	it.src.Close()
}

type windowIterator struct {
	cursor
	src  Iterator
	from int
	to   int
	read int
}

// Window keeps the items whose 1-based position in the source lies between
// from and to, both included. A negative to means no upper bound. When the
// window covers the whole source the source itself is returned unchanged.
func Window(src Iterator, from, to int) Iterator {
	if from <= 1 && to < 0 {
		return src
	}
	if from < 1 {
		from = 1
	}
	if to >= 0 && to < from {
		src.Close()
		return Empty()
	}
	return &windowIterator{
		src:  src,
		from: from,
		to:   to,
	}
}

func (it *windowIterator) Next() (Item, error) {
	if it.done() {
		return it.stop()
	}
	for {
		if it.to >= 0 && it.read >= it.to {
			return it.stop()
		}
		item, err := it.src.Next()
		if err != nil {
			return nil, err
		}
		if item == nil {
			return it.stop()
		}
		it.read++
		if it.read >= it.from {
			return it.put(item)
		}
	}
}

func (it *windowIterator) Restart() Iterator {
	return Window(it.src.Restart(), it.from, it.to)
}

func (it *windowIterator) Close() {
	it.src.Close()
}

type concatIterator struct {
	cursor
	parts []Iterator
	ix    int
}

func Concat(parts ...Iterator) Iterator {
	switch len(parts) {
	case 0:
		return Empty()
	case 1:
		return parts[0]
	default:
		return &concatIterator{
			parts: parts,
		}
	}
}

func (it *concatIterator) Next() (Item, error) {
	if it.done() {
		return it.stop()
	}
	for it.ix < len(it.parts) {
		item, err := it.parts[it.ix].Next()
		if err != nil {
			return nil, err
		}
		if item != nil {
			return it.put(item)
		}
		it.ix++
	}
	return it.stop()
}

func (it *concatIterator) Restart() Iterator {
	parts := make([]Iterator, len(it.parts))
	for i := range it.parts {
		parts[i] = it.parts[i].Restart()
	}
	return Concat(parts...)
}

func (it *concatIterator) Close() {
	for i := range it.parts {
		it.parts[i].Close()
	}
}

type reverseIterator struct {
	cursor
	src Iterator
	buf Sequence
	ix  int
}

// Reverse is the one eager transform of the family: the source has to be
// drained in full before the first item can be served.
func Reverse(src Iterator) Iterator {
	return &reverseIterator{
		src: src,
		ix:  -1,
	}
}

func (it *reverseIterator) Next() (Item, error) {
	if it.done() {
		return it.stop()
	}
	if it.ix < 0 {
		buf, err := Drain(it.src)
		if err != nil {
			return nil, err
		}
		it.buf = buf
		it.ix = len(buf)
	}
	if it.ix == 0 {
		return it.stop()
	}
	it.ix--
	return it.put(it.buf[it.ix])
}

func (it *reverseIterator) Restart() Iterator {
	return Reverse(it.src.Restart())
}

func (it *reverseIterator) Close() {
	it.src.Close()
}
