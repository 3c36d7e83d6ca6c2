package store

// Middleware wraps the dispatch function. It receives the store for reading
// state or dispatching follow-up actions, and next, the remainder of the
// chain ending in the reducer. A middleware may pass the action through,
// transform it, swallow it, or dispatch additional actions; reduction and
// publish always happen in the innermost step.
//
// Follow-up actions dispatched from inside a middleware are queued and
// applied after the current action finishes, in dispatch order.
type Middleware[S any] func(store *Store[S], next DispatchFunc) DispatchFunc
