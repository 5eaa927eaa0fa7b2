package board

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IDGenerator issues column numbers from a monotonic counter. The counter
// is persisted with the board so column ids never collide across sessions.
type IDGenerator struct {
	next int
}

// NewIDGenerator starts the counter at the given value (minimum 1).
func NewIDGenerator(start int) *IDGenerator {
	if start < 1 {
		start = 1
	}
	return &IDGenerator{next: start}
}

// Peek returns the value the next call to Next will issue.
func (g *IDGenerator) Peek() int {
	return g.next
}

// Next returns the current counter value and advances it.
func (g *IDGenerator) Next() int {
	n := g.next
	g.next++
	return n
}

// Restore raises the counter to n. It never lowers the counter below the
// highest value issued this session.
func (g *IDGenerator) Restore(n int) {
	if n > g.next {
		g.next = n
	}
}

// NewCardID mints a card identifier of the form card-<millis>-<random>.
// The timestamp keeps ids roughly sortable; the random suffix keeps a
// bulk import from colliding within the same millisecond.
func NewCardID() string {
	return fmt.Sprintf("card-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
