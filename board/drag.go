package board

import "math"

// CardLayout is one card's measured vertical position in a column, as
// reported by the drag layer at the moment of the gesture. Layouts are
// re-measured on every call; they are never cached.
type CardLayout struct {
	CardID string
	Center float64
}

// ComputeInsertionIndex returns where a dragged card should be inserted
// in the column: the index of the first card whose vertical center lies
// below the pointer (insert-before), or the end of the sequence when the
// pointer is below every card. When several cards share a center, the
// earliest in layout order wins: only a strictly negative offset from
// pointer to center counts, and among those the one closest to zero.
func ComputeInsertionIndex(layout []CardLayout, pointerY float64) int {
	best := math.Inf(-1)
	idx := len(layout)
	for i, c := range layout {
		offset := pointerY - c.Center
		if offset < 0 && offset > best {
			best = offset
			idx = i
		}
	}
	return idx
}
