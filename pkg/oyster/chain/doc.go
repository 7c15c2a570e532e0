// Package chain provides a fluent wrapper around oyster.Outcome for building
// synchronous railway-style chains using the outcome combinators.
//
// Key operations:
// - Start/FromValue/FromFailure: begin a chain
// - Then/Map: compose steps that keep the value type
// - Then/MapTo (functions): switch to a new value type
// - ThenTry: call a function (U, error) and convert the error to a failure
// - While/RepeatUntil: loop a step while the chain keeps succeeding
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
