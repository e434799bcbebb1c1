// Package match classifies field types into comparison shapes and finds the
// field of a source struct that corresponds to a field of a target struct.
//
// Key functions:
//   - Classify: derives the Shape (base type name, optional-wrapped?) of a type expression
//   - Shape.Comparable: base-name equality, ignoring optionality
//   - FindCandidate: first same-named, comparable source field
package match
