// Package values provides a map-backed store of current variable values,
// addressed by opaque expr.Key identifiers.
//
// Dict is the concrete store: insert a value once under a key, update it
// between optimizer iterations, and look it up – untyped via At (the
// expr.Values contract the evaluator consumes) or typed via the generic
// At[T] function, which fails distinctly when the key is absent
// (expr.ErrKeyNotFound) versus bound to a different type
// (expr.ErrTypeMismatch).
//
// Dict is not synchronized: it follows the evaluation model of the expr
// package, where the store is read-only for the duration of an evaluation
// and mutated only between evaluations.
//
// Errors (sentinel):
//
//	– ErrDuplicateKey      if Insert is called with a key already present.
//	– expr.ErrKeyNotFound  if Update, Delete, or At[T] reference an absent key.
//	– expr.ErrTypeMismatch if At[T] finds a value of a different type.
package values
