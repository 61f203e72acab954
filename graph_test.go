package fsm_test

import (
	"testing"

	. "github.com/navigable/fsm"
)

func TestGraph_InitialState(t *testing.T) {
	tg := NewGraph("start")
	assertEqual(t, tg.InitialState(), "start")
}

func TestGraph_DeclaredEdgesOnly(t *testing.T) {
	tg := NewGraph("a").
		Edge("a", "b").
		Edge("a", "c").
		Edge("b", "c")

	assertTrue(t, tg.CanTransition("a", "b"))
	assertTrue(t, tg.CanTransition("a", "c"))
	assertTrue(t, tg.CanTransition("b", "c"))

	assertFalse(t, tg.CanTransition("b", "a"))
	assertFalse(t, tg.CanTransition("c", "a"))
	assertFalse(t, tg.CanTransition("a", "z"))
	assertFalse(t, tg.CanTransition("z", "a"))
}

func TestGraph_BidirectionalAdvertisesCapabilityOnly(t *testing.T) {
	tg := NewGraph("a").Edge("a", "b").Bidirectional()

	assertTrue(t, tg.AllowImplicitTransitionReversals())

	// The reverse edge is still not a forward edge: reversals are the
	// machine's back-navigation shortcut, not part of the graph.
	assertTrue(t, tg.CanTransition("a", "b"))
	assertFalse(t, tg.CanTransition("b", "a"))
}

func TestGraph_DefaultNoReversals(t *testing.T) {
	tg := NewGraph("a").Edge("a", "b")
	assertFalse(t, tg.AllowImplicitTransitionReversals())
}

func TestGraph_EffectCallback(t *testing.T) {
	var gotFrom, gotTo string
	var gotForwards bool
	calls := 0

	tg := NewGraph("a").
		Edge("a", "b").
		OnTransition(func(from, to string, forwards bool) {
			gotFrom, gotTo, gotForwards = from, to, forwards
			calls++
		})

	tg.Transition("a", "b", true)

	assertEqual(t, calls, 1)
	assertEqual(t, gotFrom, "a")
	assertEqual(t, gotTo, "b")
	assertTrue(t, gotForwards)
}

func TestGraph_NoEffectCallback(t *testing.T) {
	tg := NewGraph("a").Edge("a", "b")

	// A graph without an attached effect must still accept effect calls.
	tg.Transition("a", "b", true)
}
