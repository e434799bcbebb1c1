// Package analyze turns a Go package into the scope the correspondence
// synthesizer works on.
//
// It uses golang.org/x/tools/go/packages (or go/parser directly for a single
// directory or file) and keeps type expressions as written, without
// resolving them through go/types: two fields correspond by the spelling of
// their types, not by their identity.
//
// Key types:
//   - Scope: every struct declaration of one package, in source order
//   - Declaration: a named, non-generic struct type
//   - Field: a named field with its type expression
package analyze
