package fsm

import "github.com/enetx/g"

// StateMachine is the full surface shared by Machine and SyncMachine.
type StateMachine[S comparable] interface {
	CanTransitionTo(target S) (bool, error)
	TransitionTo(target S) error
	TransitionBack() error
	TransitionBackTo(target S) error
	CanTransitionBack() (bool, error)
	Current() S
	PreviousState() g.Option[S]
	History() g.Slice[S]
	ClearHistory()
	Unload()
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

// Interface compliance checks.
var (
	_ StateMachine[int] = (*Machine[int])(nil)
	_ StateMachine[int] = (*SyncMachine[int])(nil)
)
