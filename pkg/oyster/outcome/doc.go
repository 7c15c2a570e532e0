// Package outcome contains single-value, synchronous combinators over
// oyster.Outcome that produce a value of a different type. Failures pass
// through every success-side combinator untouched, and successes pass through
// every failure-side one.
//
// Highlights:
// - Map/MapErr/BiMap: transform the success, the error or both
// - MapOr/MapOrElse: reduce to a value; MapOrElse's default receives the error
// - And/AndThen: continue on success
// - Or/OrElse: recover on failure; OrElse receives the error
// - Validate: apply validation producing failure on invalid input
// - Tee/DoubleTee: side-effect helpers
// - Match: reduce to a concrete value via success/failure handlers
// - Collect/Flatten: combine outcomes
package outcome
