// Package adapter maps a caller-owned data sequence plus optional header,
// footer and empty-state decorations onto one contiguous slot index space
// for a virtualized list view.
//
// Every query (Count, Kind, DataIndex, span size, full-span flag, binding)
// is recomputed from the current decoration state and data length, so the
// derived behaviors can never disagree with each other.
package adapter

import "fmt"

// Kind classifies a slot
type Kind int

const (
	KindHeader Kind = iota
	KindNormal
	KindFooter
	KindEmpty
)

// String returns the upper-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "HEADER"
	case KindNormal:
		return "NORMAL"
	case KindFooter:
		return "FOOTER"
	case KindEmpty:
		return "EMPTY"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsDecoration reports whether slots of this kind render a fixed decoration
func (k Kind) IsDecoration() bool {
	return k == KindHeader || k == KindFooter || k == KindEmpty
}
