// Package optional contains the combinators over oyster.Optional that produce
// a value of a different type.
//
// Highlights:
// - And/AndThen: continue with another Optional when a value is present
// - Map/MapOr/MapOrElse: transform the present value (MapOr's default is eager,
//   MapOrElse's is computed only when needed)
// - OkOr/OkOrElse: turn an Optional into an oyster.Outcome, naming the error
// - Match: reduce to a concrete value via present/absent handlers
// - Flatten: collapse a nested Optional
package optional
