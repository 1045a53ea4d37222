// Package list implements a generic singly-linked list.
//
// A List is a value. Its zero value is a valid empty list. Nodes are never
// modified once built; operations that "modify" a list, like Prepend and Pop,
// rebind the receiver to a different chain of nodes instead.
package list

import "reflect"

// List is a singly-linked list of values of type T.
type List[T any] struct {
	n *node[T]
}

// node is a link in the chain. count is the length of the chain starting at
// this node, so that Len does not need to walk the list.
type node[T any] struct {
	first T
	rest  *node[T]
	count int
}

// New returns an empty list.
func New[T any]() List[T] {
	return List[T]{}
}

// Cons returns a list whose first element is first, followed by the elements
// of rest.
func Cons[T any](first T, rest List[T]) List[T] {
	return List[T]{&node[T]{first, rest.n, rest.Len() + 1}}
}

// Of returns a list containing elems, with elems[0] as the head.
func Of[T any](elems ...T) List[T] {
	var l List[T]
	for i := len(elems) - 1; i >= 0; i-- {
		l.Prepend(elems[i])
	}
	return l
}

// IsEmpty returns whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.n == nil
}

// Len returns the number of elements in the list.
func (l List[T]) Len() int {
	if l.n == nil {
		return 0
	}
	return l.n.count
}

// Prepend adds elem to the front of the list. The old content of the list
// becomes the tail of the new head.
func (l *List[T]) Prepend(elem T) {
	*l = Cons(elem, *l)
}

// Head returns the first element of the list. The second return value is
// false if the list is empty.
func (l List[T]) Head() (T, bool) {
	if l.n == nil {
		var zero T
		return zero, false
	}
	return l.n.first, true
}

// Tail returns the list after the first element. The second return value is
// false if the list is empty.
func (l List[T]) Tail() (List[T], bool) {
	if l.n == nil {
		return List[T]{}, false
	}
	return List[T]{l.n.rest}, true
}

// Pop removes the first element of the list and returns it, leaving the
// receiver as its former tail. If the list is empty, it returns false and
// the list stays empty.
func (l *List[T]) Pop() (T, bool) {
	first, ok := l.Head()
	if ok {
		l.n = l.n.rest
	}
	return first, ok
}

// Next advances the receiver past its first element and returns what
// remains, which may be empty. It returns false once the receiver is empty.
//
// Unlike Iterator, Next yields successively shorter sublists rather than
// elements. For [1 2 3], successive calls yield [2 3], [3] and [] before
// reporting exhaustion.
func (l *List[T]) Next() (List[T], bool) {
	if l.n == nil {
		return List[T]{}, false
	}
	l.n = l.n.rest
	return *l, true
}

// ToSlice returns the elements of the list from head to tail. The returned
// slice is never nil.
func (l List[T]) ToSlice() []T {
	s := make([]T, 0, l.Len())
	for n := l.n; n != nil; n = n.rest {
		s = append(s, n.first)
	}
	return s
}

// Reverse returns a list with the elements of l in reverse order. The
// receiver is not changed.
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for n := l.n; n != nil; n = n.rest {
		r.Prepend(n.first)
	}
	return r
}

// Clone returns a list with the same elements as l that shares no nodes with
// it. Elements are copied by assignment.
func (l List[T]) Clone() List[T] {
	return l.CloneFunc(nil)
}

// CloneFunc is like Clone, but copies each element with dup. A nil dup copies
// elements by assignment.
func (l List[T]) CloneFunc(dup func(T) T) List[T] {
	if l.n == nil {
		return List[T]{}
	}
	head := &node[T]{count: l.n.count}
	p := head
	for n := l.n; ; n = n.rest {
		p.first = n.first
		if dup != nil {
			p.first = dup(n.first)
		}
		if n.rest == nil {
			break
		}
		p.rest = &node[T]{count: n.rest.count}
		p = p.rest
	}
	return List[T]{head}
}

// Equal reports whether l and other have the same length and deeply equal
// elements in the same order. Elements are compared with reflect.DeepEqual;
// use EqualFunc for a custom comparison.
func (l List[T]) Equal(other List[T]) bool {
	return EqualFunc(l, other, func(a, b T) bool {
		return reflect.DeepEqual(a, b)
	})
}

// EqualFunc reports whether two lists have the same length and their
// elements are pairwise equal according to eq.
func EqualFunc[T, U any](l1 List[T], l2 List[U], eq func(T, U) bool) bool {
	if l1.Len() != l2.Len() {
		return false
	}
	n1, n2 := l1.n, l2.n
	for n1 != nil {
		if !eq(n1.first, n2.first) {
			return false
		}
		n1, n2 = n1.rest, n2.rest
	}
	return true
}
