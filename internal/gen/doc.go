// Package gen renders a synthesized plan as Go source.
//
// Generation uses text/template + go/format and produces one file per scope,
// written next to the declarations it was derived from.
//
// Codegen patterns:
//   - Direct assignment
//   - Wrapping a plain value into the optional target (Set)
//   - Unwrapping a present optional into a plain target (Get)
//   - Copying a present optional into an optional target (IsSome)
//   - Zero-value constructors delegating to the move method
//
// The generated file imports nothing: the optional wrapper is driven through
// its Get, IsSome and Set methods only.
package gen
