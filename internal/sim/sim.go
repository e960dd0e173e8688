// Package sim drives simulations made of immutable snapshots: each step
// builds a new generation from the previous one and never writes into it.
package sim

// Snapshot is one generation of a simulation. Step returns the next
// generation and must leave the receiver unchanged, so calling Step twice on
// the same snapshot yields equal results.
type Snapshot[S any] interface {
	Step() S
	Equal(other S) bool
}

// Observer is called after every step with the 1-based step number and the
// generation it produced. A nil Observer is ignored.
type Observer[S any] func(step int, s S)

// Stabilize steps from initial until a step produces a generation equal to
// its predecessor. It returns that fixed point and the number of steps that
// changed the state. There is no step limit: a rule that never settles does
// not return.
func Stabilize[S Snapshot[S]](initial S, observe Observer[S]) (S, int) {
	current := initial
	for changed := 0; ; changed++ {
		next := current.Step()
		if observe != nil {
			observe(changed+1, next)
		}
		if next.Equal(current) {
			return current, changed
		}
		current = next
	}
}

// Advance applies exactly n steps to initial and returns the result.
func Advance[S Snapshot[S]](initial S, n int, observe Observer[S]) S {
	current := initial
	for i := 1; i <= n; i++ {
		current = current.Step()
		if observe != nil {
			observe(i, current)
		}
	}
	return current
}
