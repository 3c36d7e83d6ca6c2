// Package store routes actions through a pure reducer into an observable
// state value. All state changes flow through Dispatch; observers subscribe
// to the store's observable and never mutate state directly.
package store

// Action describes an intended state change. Any value can be dispatched;
// actions carry data, never behavior, and are consumed once by the reducer.
// Consumers typically define a closed set of action types per feature area so
// a reducer's type switch covers every variant.
type Action any

// DispatchFunc applies one action. Middleware wraps values of this type.
type DispatchFunc func(Action)
