package set

import "fmt"

// PositionKind tells where a probed item sits relative to the stored ones.
type PositionKind uint8

const (
	Empty PositionKind = iota
	BeforeAll
	AfterAll
	ExactAt
	BetweenAt
)

func (k PositionKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case BeforeAll:
		return "before all"
	case AfterAll:
		return "after all"
	case ExactAt:
		return "exact"
	case BetweenAt:
		return "between"
	default:
		return fmt.Sprintf("PositionKind(%d)", uint8(k))
	}
}

// Position is the result of SortedSet.Locate.
//
// For ExactAt, Index is the index of the matching element.
// For BetweenAt, the item belongs between Index and Index+1.
// For AfterAll, Index equals the length of the set. Otherwise Index is 0.
type Position struct {
	Kind  PositionKind
	Index int
}

// Found reports whether a comparator-equal element is stored.
func (p Position) Found() bool {
	return p.Kind == ExactAt
}

// InsertIndex is the slice index a new element would be placed at.
// It equals Index for ExactAt.
func (p Position) InsertIndex() int {
	switch p.Kind {
	case AfterAll, ExactAt:
		return p.Index
	case BetweenAt:
		return p.Index + 1
	default:
		return 0
	}
}

func (p Position) String() string {
	switch p.Kind {
	case ExactAt, BetweenAt, AfterAll:
		return fmt.Sprintf("%s(%d)", p.Kind, p.Index)
	default:
		return p.Kind.String()
	}
}
