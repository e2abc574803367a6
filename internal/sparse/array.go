// Package sparse implements a generic, fixed-domain sparse array with
// popcount compression: a bitset marks which slots are occupied, and a
// parallel slice holds the values in slot order. Looking up or updating a
// slot costs one bitset test plus one popcount (Rank) instead of scanning
// the whole domain.
package sparse

import "github.com/bits-and-blooms/bitset"

// Array is a sparse array over the domain [0,domain) with payload T.
// The zero value is not usable; use New.
type Array[T any] struct {
	set   *bitset.BitSet
	Items []T
}

// New returns an Array over a domain of the given size.
func New[T any](domain uint) *Array[T] {
	return &Array[T]{set: bitset.New(domain)}
}

// rank0 maps a set slot i to its 0-based index in Items.
func (a *Array[T]) rank0(i uint) int {
	return int(a.set.Rank(i)) - 1
}

// Get returns the value at slot i, and whether it was present.
func (a *Array[T]) Get(i uint) (value T, ok bool) {
	if a.set.Test(i) {
		return a.Items[a.rank0(i)], true
	}
	return value, false
}

// Len returns the number of occupied slots.
func (a *Array[T]) Len() int {
	return len(a.Items)
}

// InsertAt stores value at slot i. Reports whether a value already
// occupied that slot (and was overwritten).
func (a *Array[T]) InsertAt(i uint, value T) (existed bool) {
	if a.set.Test(i) {
		a.Items[a.rank0(i)] = value
		return true
	}

	a.set.Set(i)
	a.insertItem(a.rank0(i), value)
	return false
}

// DeleteAt removes the value at slot i, if present.
func (a *Array[T]) DeleteAt(i uint) (value T, existed bool) {
	if !a.set.Test(i) {
		return value, false
	}

	rnk := a.rank0(i)
	value = a.Items[rnk]

	a.deleteItem(rnk)
	a.set.Clear(i)
	a.set.Compact()

	return value, true
}

// AllSlots returns the occupied slot indexes in ascending order.
func (a *Array[T]) AllSlots() []uint {
	all := make([]uint, 0, a.Len())
	for i, ok := a.set.NextSet(0); ok; i, ok = a.set.NextSet(i + 1) {
		all = append(all, i)
	}
	return all
}

func (a *Array[T]) insertItem(i int, item T) {
	var zero T
	a.Items = append(a.Items, zero)
	copy(a.Items[i+1:], a.Items[i:])
	a.Items[i] = item
}

func (a *Array[T]) deleteItem(i int) {
	var zero T
	nl := len(a.Items) - 1
	copy(a.Items[i:], a.Items[i+1:])
	a.Items[nl] = zero
	a.Items = a.Items[:nl]
}
