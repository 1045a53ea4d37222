package list

// Iterator is an iterator over list elements. It can be used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    // do something with elem...
//	}
type Iterator[T any] struct {
	n *node[T]
}

// Iterator returns an iterator over the elements of the list, from head to
// tail.
func (l List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l.n}
}

// Elem returns the element at the current position. It must only be called
// when HasElem returns true.
func (it *Iterator[T]) Elem() T {
	return it.n.first
}

// HasElem returns whether the iterator is pointing to an element.
func (it *Iterator[T]) HasElem() bool {
	return it.n != nil
}

// Next moves the iterator to the next position.
func (it *Iterator[T]) Next() {
	it.n = it.n.rest
}

// Iterate calls f on each element of the list from head to tail, stopping
// early if f returns false.
func (l List[T]) Iterate(f func(T) bool) {
	for it := l.Iterator(); it.HasElem(); it.Next() {
		if !f(it.Elem()) {
			return
		}
	}
}
