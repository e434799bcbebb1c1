package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages. Type checking
// is not needed: fields are compared by their written type expressions.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// ErrNoGoFiles is returned when a directory holds no parsable Go file.
var ErrNoGoFiles = errors.New("no Go files")

// Analyzer loads Go packages and builds one Scope per package.
type Analyzer struct {
	opts Options
	fset *token.FileSet
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{
		opts: opts,
		fset: token.NewFileSet(),
	}
}

// FileSet returns the file set positions are reported against.
func (a *Analyzer) FileSet() *token.FileSet {
	return a.fset
}

// LoadPackages loads the specified packages and returns their scopes in the
// order the loader reports them.
// Patterns are standard Go package patterns (e.g., "./models", "./...").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*Scope, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Fset: a.fset,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	scopes := make([]*Scope, 0, len(pkgs))
	for _, pkg := range pkgs {
		scopes = append(scopes, a.scopeFromPackage(pkg))
	}

	return scopes, nil
}

func (a *Analyzer) scopeFromPackage(pkg *packages.Package) *Scope {
	scope := &Scope{
		PkgName: pkg.Name,
		PkgPath: pkg.PkgPath,
	}

	if len(pkg.GoFiles) > 0 {
		scope.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	files := make([]*ast.File, len(pkg.Syntax))
	copy(files, pkg.Syntax)
	a.sortFiles(files)

	scope.Declarations = CollectDeclarations(a.fset, files, a.opts)

	return scope
}

// ParseDir parses the non-test Go files of dir into a scope, without
// consulting the go command. Files are read in name order and, like the go
// command, skipped when their build constraints or GOOS/GOARCH suffix do
// not match the default build context.
func (a *Analyzer) ParseDir(dir string) (*Scope, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []*ast.File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		match, err := build.Default.MatchFile(dir, name)
		if err != nil {
			return nil, fmt.Errorf("matching %s: %w", name, err)
		}

		if !match {
			continue
		}

		file, err := parser.ParseFile(a.fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoGoFiles)
	}

	return &Scope{
		PkgName:      files[0].Name.Name,
		Dir:          dir,
		Declarations: CollectDeclarations(a.fset, files, a.opts),
	}, nil
}

// ParseSource parses a single file's source into a scope.
func (a *Analyzer) ParseSource(filename string, src any) (*Scope, error) {
	file, err := parser.ParseFile(a.fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	return &Scope{
		PkgName:      file.Name.Name,
		Dir:          filepath.Dir(filename),
		Declarations: CollectDeclarations(a.fset, []*ast.File{file}, a.opts),
	}, nil
}

func (a *Analyzer) sortFiles(files []*ast.File) {
	sort.SliceStable(files, func(i, j int) bool {
		return a.fset.Position(files[i].Package).Filename < a.fset.Position(files[j].Package).Filename
	})
}
