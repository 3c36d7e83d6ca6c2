package store

// Reducer computes the next state from an action and the current state.
// Reducers must be pure and total: no side effects, no I/O, and the same
// (action, state) pair always yields the same result. A reducer that needs
// to report failure encodes it in the state it returns.
type Reducer[S any] func(action Action, state S) S

// Compose chains reducers into one. Each reducer receives the state produced
// by the one before it, left to right, in the same order on every dispatch.
// Nil reducers are skipped.
func Compose[S any](reducers ...Reducer[S]) Reducer[S] {
	return func(action Action, state S) S {
		for _, reduce := range reducers {
			if reduce == nil {
				continue
			}
			state = reduce(action, state)
		}
		return state
	}
}
