package fsm

import (
	"sync"

	"github.com/enetx/g"
)

// SyncMachine is a thread-safe wrapper around a Machine. It protects every
// state-mutating and state-reading operation with a sync.RWMutex, making it
// safe to share across goroutines. All methods on SyncMachine are the
// thread-safe counterparts to the methods on the base Machine.
type SyncMachine[S comparable] struct {
	machine *Machine[S]
	mu      sync.RWMutex
}

// NewSync creates a SyncMachine bound to the given provider. It accepts the
// same options as New.
func NewSync[S comparable](provider Provider[S], opts ...MachineOption[S]) *SyncMachine[S] {
	return &SyncMachine[S]{machine: New(provider, opts...)}
}

// CanTransitionTo is the thread-safe version of Machine.CanTransitionTo.
func (sm *SyncMachine[S]) CanTransitionTo(target S) (bool, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.CanTransitionTo(target)
}

// TransitionTo is the thread-safe version of Machine.TransitionTo.
// It atomically validates and executes a forward transition.
func (sm *SyncMachine[S]) TransitionTo(target S) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.TransitionTo(target)
}

// TransitionBack is the thread-safe version of Machine.TransitionBack.
func (sm *SyncMachine[S]) TransitionBack() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.TransitionBack()
}

// TransitionBackTo is the thread-safe version of Machine.TransitionBackTo.
func (sm *SyncMachine[S]) TransitionBackTo(target S) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.TransitionBackTo(target)
}

// CanTransitionBack is the thread-safe version of Machine.CanTransitionBack.
func (sm *SyncMachine[S]) CanTransitionBack() (bool, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.CanTransitionBack()
}

// Current is the thread-safe version of Machine.Current.
func (sm *SyncMachine[S]) Current() S {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.Current()
}

// PreviousState is the thread-safe version of Machine.PreviousState.
func (sm *SyncMachine[S]) PreviousState() g.Option[S] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.PreviousState()
}

// History is the thread-safe version of Machine.History.
// It returns a copy of the visited states, oldest first.
func (sm *SyncMachine[S]) History() g.Slice[S] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.History()
}

// ClearHistory is the thread-safe version of Machine.ClearHistory.
func (sm *SyncMachine[S]) ClearHistory() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.machine.ClearHistory()
}

// Unload is the thread-safe version of Machine.Unload.
// It releases the machine's provider; Unload is idempotent.
func (sm *SyncMachine[S]) Unload() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.machine.Unload()
}

// ToDOT is the thread-safe version of Machine.ToDOT.
// It generates a DOT language representation of the visited trail.
func (sm *SyncMachine[S]) ToDOT() g.String {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the machine's bookkeeping to JSON.
func (sm *SyncMachine[S]) MarshalJSON() ([]byte, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// deserialization of the machine's bookkeeping from JSON.
func (sm *SyncMachine[S]) UnmarshalJSON(data []byte) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.UnmarshalJSON(data)
}
