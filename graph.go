package fsm

import "github.com/enetx/g"

// TransitionGraph is a ready-made Provider backed by an adjacency map of
// declared edges. Configure it with the builder methods, then hand it to
// New. The graph performs no side effect of its own; OnTransition attaches
// one. The zero value is not usable, use NewGraph.
//
// Note that Bidirectional only advertises the implicit-reversal capability
// to the machine. CanTransition keeps answering for declared edges alone, so
// the reverse direction stays a back-navigation shortcut rather than a
// forward edge.
type TransitionGraph[S comparable] struct {
	initial    S
	edges      g.Map[S, g.Slice[S]]
	reversible bool
	effect     func(from, to S, forwards bool)
}

// Interface compliance checks.
var (
	_ Provider[int]         = (*TransitionGraph[int])(nil)
	_ ReversalProvider[int] = (*TransitionGraph[int])(nil)
)

// NewGraph creates a TransitionGraph whose machines start in initial.
func NewGraph[S comparable](initial S) *TransitionGraph[S] {
	return &TransitionGraph[S]{
		initial: initial,
		edges:   g.NewMap[S, g.Slice[S]](),
	}
}

// Edge declares a legal transition from -> to.
func (tg *TransitionGraph[S]) Edge(from, to S) *TransitionGraph[S] {
	tg.edges.Entry(from).
		AndModify(func(s *g.Slice[S]) { s.Push(to) }).
		OrInsert(g.SliceOf(to))

	return tg
}

// Bidirectional declares every edge in this graph implicitly reversible:
// machines may step back along any declared edge without the reverse
// direction being declared.
func (tg *TransitionGraph[S]) Bidirectional() *TransitionGraph[S] {
	tg.reversible = true
	return tg
}

// OnTransition attaches the side effect the graph performs on each
// successful transition.
func (tg *TransitionGraph[S]) OnTransition(effect func(from, to S, forwards bool)) *TransitionGraph[S] {
	tg.effect = effect
	return tg
}

// InitialState implements Provider.
func (tg *TransitionGraph[S]) InitialState() S {
	return tg.initial
}

// CanTransition implements Provider. Only declared edges are legal.
func (tg *TransitionGraph[S]) CanTransition(from, to S) bool {
	targets := tg.edges.Get(from)
	return targets.IsSome() && targets.Some().Contains(to)
}

// Transition implements Provider.
func (tg *TransitionGraph[S]) Transition(from, to S, forwards bool) {
	if tg.effect != nil {
		tg.effect(from, to, forwards)
	}
}

// AllowImplicitTransitionReversals implements ReversalProvider.
func (tg *TransitionGraph[S]) AllowImplicitTransitionReversals() bool {
	return tg.reversible
}
