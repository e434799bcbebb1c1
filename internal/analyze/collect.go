package analyze

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// CollectDeclarations extracts the eligible struct declarations from files,
// in order. Generated files, aliases, generic structs and non-struct types
// are skipped.
func CollectDeclarations(fset *token.FileSet, files []*ast.File, opts Options) []Declaration {
	var decls []Declaration

	for _, file := range files {
		if ast.IsGenerated(file) {
			continue
		}

		for _, d := range file.Decls {
			gen, ok := d.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				decl, ok := declarationFromSpec(fset, gen, ts, opts)
				if !ok {
					continue
				}

				decls = append(decls, decl)
			}
		}
	}

	return decls
}

func declarationFromSpec(fset *token.FileSet, gen *ast.GenDecl, ts *ast.TypeSpec, opts Options) (Declaration, bool) {
	// type A = B and type A[T any] struct{...}
	if ts.Assign.IsValid() || ts.TypeParams != nil {
		return Declaration{}, false
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return Declaration{}, false
	}

	if slices.Contains(opts.Exclude, ts.Name.Name) {
		return Declaration{}, false
	}

	doc := ts.Doc
	if doc == nil && len(gen.Specs) == 1 {
		doc = gen.Doc
	}

	decl := Declaration{
		Name:            ts.Name.Name,
		Fields:          collectFields(st),
		SupportsDefault: hasMarker(doc, opts.DefaultMarker),
	}

	if fset != nil {
		decl.Pos = fset.Position(ts.Name.Pos())
	}

	return decl, true
}

func collectFields(st *ast.StructType) []Field {
	var fields []Field

	if st.Fields == nil {
		return fields
	}

	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			name, ok := embeddedName(f.Type)
			if !ok {
				continue
			}

			fields = append(fields, Field{
				Name:     name,
				Type:     f.Type,
				Embedded: true,
				Index:    len(fields),
			})

			continue
		}

		for _, n := range f.Names {
			fields = append(fields, Field{
				Name:  n.Name,
				Type:  f.Type,
				Index: len(fields),
			})
		}
	}

	return fields
}

// embeddedName returns the implicit field name of an embedded type:
// T, *T, pkg.T, *pkg.T, T[X] or pkg.T[X].
func embeddedName(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, true
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name, true
	case *ast.IndexExpr:
		return embeddedName(e.X)
	case *ast.IndexListExpr:
		return embeddedName(e.X)
	default:
		return "", false
	}
}

// hasMarker reports whether one of the doc comment lines is exactly the
// marker once the comment delimiter and surrounding blanks are dropped.
func hasMarker(doc *ast.CommentGroup, marker string) bool {
	if doc == nil || marker == "" {
		return false
	}

	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//")
		if !ok {
			continue
		}

		if strings.TrimSpace(text) == marker {
			return true
		}
	}

	return false
}
