package analyze

import "strings"

// TypePath builds a readable path string for a field, e.g. "Order.Status".
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// FieldPath returns the path of field within decl.
func FieldPath(decl *Declaration, field *Field) string {
	return NewTypePath(decl.Name).Field(field.Name).String()
}
