package fsm

import (
	"errors"
	"fmt"
)

// ErrNoHistory is returned by TransitionBack when the history stack is
// empty.
var ErrNoHistory = errors.New("fsm: no history to transition back to")

// ErrDetached is returned by every transition and legality operation invoked
// after Unload has released the machine's provider.
var ErrDetached = errors.New("fsm: machine detached from its provider")

// ErrIllegalTransition is returned when the provider rejects a transition,
// or when the target of a back transition fails re-validation. It names both
// endpoints. An illegal transition signals a defect in the caller's state
// graph, or a caller ignoring CanTransitionTo; it is not a condition to
// catch and retry.
type ErrIllegalTransition[S comparable] struct {
	From S
	To   S
}

func (e *ErrIllegalTransition[S]) Error() string {
	return fmt.Sprintf("fsm: illegal transition from %v to %v", e.From, e.To)
}

// ErrTargetNotInHistory is returned by TransitionBackTo when the requested
// state is absent from the history, either because it was never visited or
// because earlier back transitions already discarded it.
type ErrTargetNotInHistory[S comparable] struct {
	Target S
}

func (e *ErrTargetNotInHistory[S]) Error() string {
	return fmt.Sprintf("fsm: state %v not present in history", e.Target)
}
