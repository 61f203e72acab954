package fsm

// Provider supplies the state policy for a Machine: the state it starts
// in, which transitions are legal, and the side effect to perform when a
// transition happens. The machine never interprets states itself; it only
// sequences calls into its provider.
//
// A provider instance must be bound to at most one machine at a time. The
// machine owns it until Unload is called.
type Provider[S comparable] interface {
	// InitialState names the state the machine starts in. It is queried
	// exactly once, during New, and must be cheap and side-effect free.
	InitialState() S

	// CanTransition reports whether moving from one state to another is
	// legal. It is a pure query and may be called any number of times per
	// attempted transition.
	CanTransition(from, to S) bool

	// Transition performs the side effect of a transition. It is called
	// exactly once per successful transition, after legality has been
	// confirmed and after the history stack has been updated, but before
	// the machine's current state changes. forwards is false for back
	// transitions.
	Transition(from, to S, forwards bool)
}

// ReversalProvider is an optional capability a Provider may implement.
// When AllowImplicitTransitionReversals returns true, every declared
// transition is treated as bidirectional: stepping back to the state on
// top of the history is legal without the provider declaring the reverse
// edge. Providers that do not implement this interface get the default,
// false.
type ReversalProvider[S comparable] interface {
	AllowImplicitTransitionReversals() bool
}
