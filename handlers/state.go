package handlers

import (
	"context"
	"sync"

	"github.com/diegopacheco/jello/board"
	"github.com/diegopacheco/jello/codec"
	"github.com/diegopacheco/jello/store"
)

// State is the shared board guarded by one mutex. The original Jello ran
// on a browser event loop where every operation finished before the next
// started; the mutex reproduces that serialization for HTTP callers.
type State struct {
	mu    sync.Mutex
	model *board.Model
	store store.Store
}

func NewState(m *board.Model, st store.Store) *State {
	return &State{model: m, store: st}
}

// persist writes the board through the codec. Mutating handlers call it
// before releasing the lock and before answering, so an acknowledged
// action is never lost to a crash.
func (s *State) persist(ctx context.Context) error {
	return codec.Save(ctx, s.store, s.model)
}
