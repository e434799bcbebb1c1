// Package plan provides the correspondence synthesizer: the pass that turns
// a scope into the list of routines code generation emits.
//
// Synthesis pipeline:
//  1. Take the struct declarations of one scope, in source order
//  2. For every ordered pair (L, R) with L != R:
//     - match each field of L to the first same-named, comparable field of R
//     - pick a copy policy from the optionality of both fields
//     - emit one move routine holding the actions in L's field order
//  3. For every pair whose L is default-constructible, emit a from routine
//     that builds a zero L and delegates to the move routine
//
// Non-matching fields produce no action and no diagnostic. Explain reports
// the same decisions as informational diagnostics for humans.
package plan
