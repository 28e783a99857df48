package widgets

// DragState is the transient interaction state of one divider instance.
// It persists across layout passes while the widget itself is rebuilt,
// so it must never be stored inside the widget configuration.
type DragState struct {
	// Dragging is true while a press-drag gesture is in progress.
	Dragging bool

	// ActiveHandle is the handle index being dragged. Only meaningful
	// while Dragging is true; a single Divider always uses handle 0.
	ActiveHandle int
}

// StateStore retains DragState values across layout passes, keyed by a
// stable widget identity assigned by the host's retained tree. Each key
// owns exactly one state slot; two live widget instances must never
// share a key.
//
// The store is not safe for concurrent use. The event/draw path is
// single-threaded by contract, so no locking is needed.
type StateStore struct {
	states map[any]*DragState
}

// NewStateStore returns an empty store.
func NewStateStore() *StateStore {
	return &StateStore{states: make(map[any]*DragState)}
}

// Of returns the state for key, initializing an idle state on first use.
func (s *StateStore) Of(key any) *DragState {
	if state, ok := s.states[key]; ok {
		return state
	}
	state := &DragState{}
	s.states[key] = state
	return state
}

// Remove drops the state for key. Hosts call this when the widget leaves
// the retained tree. Removal never fires a pending release callback; an
// unmounted widget that should complete its gesture must be sent a
// cancel event before removal.
func (s *StateStore) Remove(key any) {
	delete(s.states, key)
}

// Len returns the number of retained states.
func (s *StateStore) Len() int {
	return len(s.states)
}
