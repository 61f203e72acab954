// Package fsm provides a generic state machine that validates transitions
// against a caller-supplied policy provider and keeps an ordered history of
// visited states, so "go back" navigation can be expressed without the
// caller re-deriving prior state. It is built with types and utilities from
// the github.com/enetx/g library.
//
// The machine has no notion of screens, events, or rendering: it is a pure
// transition-validation and history-tracking engine. What a transition means
// is entirely up to the Provider.
package fsm

import (
	"log/slog"

	"github.com/enetx/g"
)

// Machine is the core state machine. It owns the current state, a stack of
// previously visited states (oldest first, top at the end), and, while
// active, its policy provider. Every operation runs to completion before
// returning; there is no background activity.
//
// A Machine is not safe for concurrent use. Wrap it in a SyncMachine when
// multiple goroutines share it.
type Machine[S comparable] struct {
	provider  Provider[S]
	reversals ReversalProvider[S]
	current   S
	history   g.Slice[S]
	logger    *slog.Logger
}

// MachineOption configures a Machine during construction.
type MachineOption[S comparable] func(*Machine[S])

// WithLogger sets the logger the machine emits transition records to.
// Machines log at Debug level only; the default logger discards everything.
func WithLogger[S comparable](logger *slog.Logger) MachineOption[S] {
	return func(m *Machine[S]) { m.logger = logger }
}

// New creates a Machine bound to the given provider. The provider's
// InitialState is queried exactly once, here; the history starts empty.
// The machine owns the provider until Unload.
func New[S comparable](provider Provider[S], opts ...MachineOption[S]) *Machine[S] {
	m := &Machine[S]{
		provider: provider,
		current:  provider.InitialState(),
		logger:   slog.New(slog.DiscardHandler),
	}

	if r, ok := provider.(ReversalProvider[S]); ok {
		m.reversals = r
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// CanTransitionTo reports whether moving from the current state to target is
// legal right now. When target sits on top of the history and the provider
// allows implicit transition reversals, the step back is legal without
// consulting the provider at all. This is a pure query: no mutation, no side
// effects, safe to call any number of times.
//
// Returns ErrDetached after Unload.
func (m *Machine[S]) CanTransitionTo(target S) (bool, error) {
	if m.provider == nil {
		return false, ErrDetached
	}

	return m.canTransition(target), nil
}

// canTransition is the internal legality check shared by every transition
// operation. The implicit-reversal shortcut only ever applies to the
// immediate top-of-history entry.
func (m *Machine[S]) canTransition(target S) bool {
	if m.history.NotEmpty() && m.history[m.history.Len()-1] == target && m.allowsReversals() {
		return true
	}

	return m.provider.CanTransition(m.current, target)
}

func (m *Machine[S]) allowsReversals() bool {
	return m.reversals != nil && m.reversals.AllowImplicitTransitionReversals()
}

// TransitionTo moves the machine forward to target. A self-transition
// (target equal to the current state) is a silent no-op and never consults
// the provider. An illegal target yields *ErrIllegalTransition with both
// endpoints, and the machine is left untouched.
//
// On success the old current state is pushed onto the history, the
// provider's effect runs with forwards=true, and the current state becomes
// target. The effect runs strictly between the history push and the
// current-state update: a provider that inspects the machine mid-effect
// observes the old current state and the already-updated history.
func (m *Machine[S]) TransitionTo(target S) error {
	if m.provider == nil {
		return ErrDetached
	}

	if target == m.current {
		return nil
	}

	if !m.canTransition(target) {
		return &ErrIllegalTransition[S]{From: m.current, To: target}
	}

	from := m.current
	m.history.Push(from)
	m.provider.Transition(from, target, true)
	m.current = target

	m.logger.Debug("transition", "from", from, "to", target, "forwards", true)

	return nil
}

// TransitionBack steps back to the state on top of the history. It fails
// with ErrNoHistory on an empty stack, and with *ErrIllegalTransition when
// the step back is not legal (the implicit-reversal shortcut is honored).
// On success the top entry is popped, the provider's effect runs with
// forwards=false, and the current state becomes the popped entry.
func (m *Machine[S]) TransitionBack() error {
	if m.provider == nil {
		return ErrDetached
	}

	if m.history.Empty() {
		return ErrNoHistory
	}

	target := m.history[m.history.Len()-1]
	if !m.canTransition(target) {
		return &ErrIllegalTransition[S]{From: m.current, To: target}
	}

	from := m.current
	m.history = m.history[:m.history.Len()-1]
	m.provider.Transition(from, target, false)
	m.current = target

	m.logger.Debug("transition", "from", from, "to", target, "forwards", false)

	return nil
}

// TransitionBackTo steps back to an earlier point in the history. The
// nearest (top-most) occurrence of target wins: every entry above it is
// discarded, and the occurrence itself is discarded too, becoming the new
// current state rather than a history entry.
//
// Fails with *ErrTargetNotInHistory when target was never visited, and with
// *ErrIllegalTransition when the step back is not legal. The legality check
// honors the implicit-reversal shortcut when target happens to be the top
// entry; deeper entries always go through the provider.
func (m *Machine[S]) TransitionBackTo(target S) error {
	if m.provider == nil {
		return ErrDetached
	}

	idx := -1
	for i := m.history.Len() - 1; i >= 0; i-- {
		if m.history[i] == target {
			idx = int(i)
			break
		}
	}

	if idx < 0 {
		return &ErrTargetNotInHistory[S]{Target: target}
	}

	if !m.canTransition(target) {
		return &ErrIllegalTransition[S]{From: m.current, To: target}
	}

	from := m.current
	m.history = m.history[:idx]
	m.provider.Transition(from, target, false)
	m.current = target

	m.logger.Debug("transition", "from", from, "to", target, "forwards", false)

	return nil
}

// CanTransitionBack reports whether a TransitionBack would currently
// succeed: false on an empty history, otherwise the same answer as
// CanTransitionTo for the top entry. Returns ErrDetached after Unload.
func (m *Machine[S]) CanTransitionBack() (bool, error) {
	if m.provider == nil {
		return false, ErrDetached
	}

	if m.history.Empty() {
		return false, nil
	}

	return m.canTransition(m.history[m.history.Len()-1]), nil
}

// Current returns the active state.
func (m *Machine[S]) Current() S {
	return m.current
}

// PreviousState returns the state on top of the history, i.e. the state a
// TransitionBack would return to, or None when the history is empty.
func (m *Machine[S]) PreviousState() g.Option[S] {
	if m.history.Empty() {
		return g.None[S]()
	}

	return g.Some(m.history[m.history.Len()-1])
}

// History returns a copy of the previously visited states, oldest first.
func (m *Machine[S]) History() g.Slice[S] {
	return m.history.Clone()
}

// ClearHistory empties the history without changing the current state and
// without consulting the provider. It cannot fail and works even on a
// detached machine.
func (m *Machine[S]) ClearHistory() {
	m.history = g.Slice[S]{}
}

// Unload releases the machine's hold on its provider. Afterwards every
// transition and legality operation fails with ErrDetached, while Current,
// PreviousState, History and ClearHistory keep working on the last known
// state. Unload is idempotent.
func (m *Machine[S]) Unload() {
	m.provider = nil
	m.reversals = nil
}
