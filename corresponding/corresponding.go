// Package corresponding holds the runtime capability set that generated
// code plugs into.
//
// corresponding-generator emits one primitive per ordered pair of structs in
// a scope:
//
//	func (lhs *A) MoveFromB(rhs B)
//
// The method value (*A).MoveFromB is a MoveFunc[A, B]. Every other
// conversion in this package is derived from that primitive, so none of it
// needs to be generated.
package corresponding

// MoveFunc moves the corresponding fields of rhs into lhs, consuming rhs.
type MoveFunc[L, R any] func(lhs *L, rhs R)

// Cloner is implemented by sources that can produce an independent copy of
// themselves.
type Cloner[T any] interface {
	Clone() T
}

// Move applies the primitive.
func Move[L, R any](move MoveFunc[L, R], lhs *L, rhs R) {
	move(lhs, rhs)
}

// CloneCorresponding moves the corresponding fields of a clone of rhs into
// lhs. rhs itself is left untouched and keeps ownership of its data.
func CloneCorresponding[L any, R Cloner[R]](move MoveFunc[L, R], lhs *L, rhs R) {
	move(lhs, rhs.Clone())
}

// CopyCorresponding moves a shallow copy of *rhs into lhs. Use it for
// sources whose value copy is a complete duplicate.
func CopyCorresponding[L, R any](move MoveFunc[L, R], lhs *L, rhs *R) {
	move(lhs, *rhs)
}

// FromDefault builds the zero value of L and moves rhs into it.
func FromDefault[L, R any](move MoveFunc[L, R], rhs R) L {
	var lhs L
	move(&lhs, rhs)

	return lhs
}

// FromCloned builds the zero value of L and moves a clone of rhs into it.
func FromCloned[L any, R Cloner[R]](move MoveFunc[L, R], rhs R) L {
	return FromDefault(move, rhs.Clone())
}

// Converter binds a MoveFunc so derived conversions read as method calls.
type Converter[L, R any] struct {
	move MoveFunc[L, R]
}

// NewConverter returns a Converter around move.
func NewConverter[L, R any](move MoveFunc[L, R]) Converter[L, R] {
	return Converter[L, R]{move: move}
}

// Move applies the primitive.
func (c Converter[L, R]) Move(lhs *L, rhs R) {
	c.move(lhs, rhs)
}

// Copy moves a shallow copy of *rhs into lhs.
func (c Converter[L, R]) Copy(lhs *L, rhs *R) {
	CopyCorresponding(c.move, lhs, rhs)
}

// From builds a zero L and moves rhs into it.
func (c Converter[L, R]) From(rhs R) L {
	return FromDefault(c.move, rhs)
}
