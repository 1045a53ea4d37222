package list

import "src.conslist.dev/pkg/hash"

// Hash returns a hash code of the list, combining the hash code of each
// element as computed by elemHash in order. Lists that are equal have the
// same hash code as long as elemHash agrees with the element equality.
func (l List[T]) Hash(elemHash func(T) uint32) uint32 {
	h := hash.DJBInit
	for it := l.Iterator(); it.HasElem(); it.Next() {
		h = hash.DJBCombine(h, elemHash(it.Elem()))
	}
	return h
}
