package analyze

import (
	"go/ast"
	"go/token"

	"corresponding-generator/internal/common"
)

// DefaultMarker is the doc comment directive that marks a struct as
// default-constructible.
const DefaultMarker = "corresponding:default"

// Field describes a named struct field.
type Field struct {
	Name     string   // Field name; the type name for embedded fields
	Type     ast.Expr // Type expression as written
	Embedded bool     // Whether the field is embedded (anonymous)
	Index    int      // Position among the expanded fields of the struct
}

// Exported reports whether the field is exported.
func (f Field) Exported() bool {
	return token.IsExported(f.Name)
}

// Declaration describes a struct type eligible for correspondence.
type Declaration struct {
	Name            string
	Fields          []Field
	SupportsDefault bool           // Doc comment carries the default marker
	Pos             token.Position // Position of the type name
}

// FieldByName returns the first field called name.
func (d *Declaration) FieldByName(name string) (*Field, bool) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i], true
		}
	}

	return nil, false
}

// Scope holds the declarations of one package. Declarations keep source
// order: file name order, then position within the file.
type Scope struct {
	PkgName      string // Package name from the package clause
	PkgPath      string // Import path; empty when parsed from a bare directory
	Dir          string // Directory holding the package files
	Declarations []Declaration
}

// Name returns a label for the scope, preferring the import path.
func (s *Scope) Name() string {
	if s.PkgPath != "" {
		return s.PkgPath
	}

	if s.PkgName != "" {
		return s.PkgName
	}

	return common.PkgAlias(s.Dir)
}

// Lookup returns the first declaration called name.
func (s *Scope) Lookup(name string) (*Declaration, bool) {
	for i := range s.Declarations {
		if s.Declarations[i].Name == name {
			return &s.Declarations[i], true
		}
	}

	return nil, false
}

// Options controls how declarations are collected.
type Options struct {
	// DefaultMarker is matched literally against doc comment lines.
	DefaultMarker string
	// Exclude lists declaration names left out of the scope.
	Exclude []string
}

// DefaultOptions returns the collection options used when none are given.
func DefaultOptions() Options {
	return Options{DefaultMarker: DefaultMarker}
}
