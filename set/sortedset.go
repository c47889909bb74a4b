package set

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/nh-yoz/Dict/utils"
)

var ErrOutOfOrder = errors.New("sorted set is out of order")

// CompareFn returns a negative number when a < b, zero when a == b
// and a positive number when a > b.
type CompareFn[T any] func(a, b T) int

// SortedSet keeps unique items in ascending order of its comparator.
// Equality is decided by the comparator only. Not safe for concurrent use.
type SortedSet[T any] struct {
	items []T
	cmp   CompareFn[T]
}

var _ Set[int] = (*SortedSet[int])(nil)

// NewSortedSet creates a set ordered by cmp and inserts items one by one,
// dropping duplicates.
func NewSortedSet[T any](cmp CompareFn[T], items ...T) *SortedSet[T] {
	if cmp == nil {
		panic("set: nil compare function")
	}

	s := &SortedSet[T]{
		items: make([]T, 0, len(items)),
		cmp:   cmp,
	}
	s.InsertSlice(items)

	return s
}

// Locate binary searches for item.
func (s *SortedSet[T]) Locate(item T) Position {
	n := len(s.items)
	if n == 0 {
		return Position{Kind: Empty}
	}
	if s.cmp(item, s.items[0]) < 0 {
		return Position{Kind: BeforeAll}
	}
	if s.cmp(item, s.items[n-1]) > 0 {
		return Position{Kind: AfterAll, Index: n}
	}

	lo, hi := 0, n-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		r := s.cmp(item, s.items[mid])
		switch {
		case r < 0:
			hi = mid - 1
		case r > 0:
			lo = mid + 1
		default:
			return Position{Kind: ExactAt, Index: mid}
		}
	}

	// lo == hi+1 here, the item falls between them
	return Position{Kind: BetweenAt, Index: hi}
}

// Insert adds item unless a comparator-equal element is already stored.
func (s *SortedSet[T]) Insert(item T) (modified bool) {
	pos := s.Locate(item)
	if pos.Found() {
		return false
	}

	s.place(pos, item)
	return true
}

// Upsert adds item, replacing a comparator-equal element if one is stored.
func (s *SortedSet[T]) Upsert(item T) (replaced bool) {
	pos := s.Locate(item)
	if pos.Found() {
		s.items[pos.Index] = item
		return true
	}

	s.place(pos, item)
	return false
}

func (s *SortedSet[T]) place(pos Position, item T) {
	switch pos.Kind {
	case Empty, AfterAll:
		s.items = append(s.items, item)
	case BeforeAll:
		s.items = slices.Insert(s.items, 0, item)
	case BetweenAt:
		s.items = slices.Insert(s.items, pos.Index+1, item)
	}
}

func (s *SortedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *SortedSet[T]) UpsertSlice(sourceSlice []T) {
	for _, item := range sourceSlice {
		s.Upsert(item)
	}
}

func (s *SortedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	return s.InsertSlice(sourceSet.Items())
}

// Remove deletes the element comparator-equal to item, if any.
func (s *SortedSet[T]) Remove(item T) bool {
	pos := s.Locate(item)
	if !pos.Found() {
		return false
	}

	s.items = slices.Delete(s.items, pos.Index, pos.Index+1)
	return true
}

func (s *SortedSet[T]) RemoveSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Remove(item) {
			modified = true
		}
	}

	return modified
}

func (s *SortedSet[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

func (s *SortedSet[T]) Has(item T) bool {
	return s.Locate(item).Found()
}

// Find returns the stored element equal to item, which may differ
// from item in fields the comparator ignores.
func (s *SortedSet[T]) Find(item T) (T, bool) {
	pos := s.Locate(item)
	if !pos.Found() {
		return utils.GetZero[T](), false
	}

	return s.items[pos.Index], true
}

// Items returns a copy of the elements in ascending order.
func (s *SortedSet[T]) Items() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

func (s *SortedSet[T]) Len() int {
	return len(s.items)
}

// Validate checks that every adjacent pair is strictly ascending.
// A failure means the comparator is not a consistent total order.
func (s *SortedSet[T]) Validate() error {
	for i := 1; i < len(s.items); i++ {
		if s.cmp(s.items[i-1], s.items[i]) >= 0 {
			return errors.Wrapf(ErrOutOfOrder, "items at %d and %d", i-1, i)
		}
	}

	return nil
}
