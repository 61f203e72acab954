package fsm_test

import (
	"errors"
	"sync"
	"testing"

	. "github.com/navigable/fsm"
)

func TestSyncMachine_Basic(t *testing.T) {
	m := NewSync[string](NewGraph("home").
		Edge("home", "settings").
		Edge("settings", "home"))

	assertEqual(t, m.Current(), "home")

	assertNoError(t, m.TransitionTo("settings"))
	assertEqual(t, m.Current(), "settings")
	assertEqual(t, m.PreviousState().Unwrap(), "home")

	assertNoError(t, m.TransitionBack())
	assertEqual(t, m.Current(), "home")
	assertEqual(t, m.History().Len(), 0)
}

func TestSyncMachine_Unload(t *testing.T) {
	m := NewSync[string](NewGraph("home").Edge("home", "settings"))

	assertNoError(t, m.TransitionTo("settings"))
	m.Unload()

	assertTrue(t, errors.Is(m.TransitionTo("home"), ErrDetached))
	assertEqual(t, m.Current(), "settings")
	assertEqual(t, m.History().Len(), 1)
}

func TestSyncMachine_ConcurrentAccess(t *testing.T) {
	// Both directions are declared, so every transition attempt is legal
	// regardless of interleaving; self-transitions are silent no-ops.
	m := NewSync[string](NewGraph("a").
		Edge("a", "b").
		Edge("b", "a"))

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(2)

		go func() {
			defer wg.Done()
			for range 100 {
				if err := m.TransitionTo("b"); err != nil {
					t.Error(err)
					return
				}
				if err := m.TransitionTo("a"); err != nil {
					t.Error(err)
					return
				}
			}
		}()

		go func() {
			defer wg.Done()
			for range 100 {
				_ = m.Current()
				_ = m.History()
				_ = m.PreviousState()
				_, _ = m.CanTransitionTo("b")
			}
		}()
	}

	wg.Wait()

	cur := m.Current()
	assertTrue(t, cur == "a" || cur == "b")
}
