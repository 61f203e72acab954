package fsm

import (
	"encoding/json"
	"fmt"

	"github.com/enetx/g"
)

// Snapshot is a serializable view of a machine's bookkeeping: the current
// state and the visited history, oldest first. The provider binding is not
// part of a snapshot.
type Snapshot[S comparable] struct {
	Current S          `json:"current"`
	History g.Slice[S] `json:"history"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m *Machine[S]) MarshalJSON() ([]byte, error) {
	snap := Snapshot[S]{
		Current: m.current,
		History: m.history.Clone(),
	}

	return json.Marshal(snap)
}

// UnmarshalJSON implements the json.Unmarshaler interface. It restores the
// current state and history verbatim. Only the provider can enumerate the
// state space, so no unknown-state validation happens here; feeding a
// snapshot from a different state graph is the caller's defect.
func (m *Machine[S]) UnmarshalJSON(data []byte) error {
	var snap Snapshot[S]
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal machine state: %w", err)
	}

	m.current = snap.Current
	m.history = snap.History

	return nil
}
