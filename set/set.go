package set

// Set is the common surface of the collections in this package.
type Set[T any] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	InsertSet(sourceSet Set[T]) (modified bool)
	Len() int
}
