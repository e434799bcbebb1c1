package match

import (
	"go/ast"
	"go/types"
)

// DefaultWrapper is the identifier of the optional wrapper type.
const DefaultWrapper = "Option"

// Shape is the comparison shape of a field type.
type Shape struct {
	// BaseName is the outer type name: "uint8", "time.Time", "Box" for Box[T].
	BaseName string
	// IsOptional is true when the type is the optional wrapper around BaseName.
	IsOptional bool
}

// Comparable reports whether two shapes have the same base type.
// Optionality is ignored.
func (s Shape) Comparable(other Shape) bool {
	return s.BaseName == other.BaseName
}

// String returns the base name, prefixed with "optional" when wrapped.
func (s Shape) String() string {
	if s.IsOptional {
		return "optional " + s.BaseName
	}

	return s.BaseName
}

// Classify derives the shape of a type expression. wrapper is the
// identifier treated as the optional wrapper; it is matched against the last
// identifier of the generic type name, so both Option[T] and option.Option[T]
// qualify.
//
// A wrapped type is not unwrapped again: Option[Option[V]] classifies as an
// optional "Option". Expressions that are not a named type (pointers,
// slices, maps, funcs, channels, inline structs and interfaces) are not
// classifiable and ok is false.
func Classify(expr ast.Expr, wrapper string) (Shape, bool) {
	switch e := expr.(type) {
	case *ast.Ident, *ast.SelectorExpr:
		name, ok := pathName(e)
		if !ok {
			return Shape{}, false
		}

		return Shape{BaseName: name}, true

	case *ast.IndexExpr:
		outer, ok := pathName(e.X)
		if !ok {
			return Shape{}, false
		}

		if lastIdent(e.X) != wrapper {
			return Shape{BaseName: outer}, true
		}

		inner, ok := outerName(e.Index)
		if !ok {
			return Shape{}, false
		}

		return Shape{BaseName: inner, IsOptional: true}, true

	case *ast.IndexListExpr:
		// Only the single argument form is the wrapper.
		outer, ok := pathName(e.X)
		if !ok {
			return Shape{}, false
		}

		return Shape{BaseName: outer}, true

	default:
		return Shape{}, false
	}
}

// ExprString renders a type expression as written.
func ExprString(expr ast.Expr) string {
	if expr == nil {
		return "<nil>"
	}

	return types.ExprString(expr)
}

// outerName returns the name of a named type, generic or not.
func outerName(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.IndexExpr:
		return pathName(e.X)
	case *ast.IndexListExpr:
		return pathName(e.X)
	default:
		return pathName(e)
	}
}

// pathName returns "T" or "pkg.T".
func pathName(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, true
	case *ast.SelectorExpr:
		pkg, ok := e.X.(*ast.Ident)
		if !ok {
			return "", false
		}

		return pkg.Name + "." + e.Sel.Name, true
	default:
		return "", false
	}
}

func lastIdent(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	default:
		return ""
	}
}
