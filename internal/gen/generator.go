package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"corresponding-generator/internal/plan"
)

// DefaultFilename is the name of the file generated into each scope.
const DefaultFilename = "corresponding_gen.go"

// Header is the first line of every generated file.
const Header = "// Code generated by corresponding-generator. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename is the name of the generated file.
	Filename string
	// DebugDir receives an unformatted copy of the output when formatting
	// fails. Empty disables the sidecar.
	DebugDir string
	// GenerateComments adds a comment above each field action naming its
	// policy and the types involved.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename: DefaultFilename,
	}
}

// Generator generates Go code from a synthesized plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "corresponding_gen.go").
	Filename string
	// Dir is the directory of the scope the file belongs to.
	Dir string
	// Content is the formatted Go source code.
	Content []byte
}

// templateData holds all data needed for the file template.
type templateData struct {
	PackageName string
	Header      string
	Routines    []routineData
}

// routineData is one generated function or method.
type routineData struct {
	Doc       string
	Signature string
	Lines     []string
}

// Generate renders p as a single Go file. When the rendered source cannot
// be formatted the unformatted bytes are returned along with the error.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	data := &templateData{
		PackageName: p.PkgName,
		Header:      Header,
		Routines:    make([]routineData, 0, len(p.Routines)),
	}

	for i := range p.Routines {
		data.Routines = append(data.Routines, g.buildRoutine(&p.Routines[i]))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{
		Filename: g.config.Filename,
		Dir:      p.Dir,
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(g.config.DebugDir, file.Filename, buf.Bytes())

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code for %s: %w", p.ScopeName, err)
	}

	file.Content = formatted

	return file, nil
}

func (g *Generator) buildRoutine(r *plan.Routine) routineData {
	name := r.Name()

	// Type names only appear in signatures, where the parameter names are
	// not yet in scope; a declaration called rhs or lhs stays reachable.
	if r.Kind == plan.RoutineFrom {
		return routineData{
			Doc: fmt.Sprintf("%s returns a zero %s with the corresponding fields of rhs moved in.",
				name, r.Target),
			Signature: fmt.Sprintf("func %s(rhs %s) (lhs %s)", name, r.Source, r.Target),
			Lines: []string{
				"lhs." + plan.MoveMethodName(r.Source) + "(rhs)",
				"return lhs",
			},
		}
	}

	data := routineData{
		Doc:       fmt.Sprintf("%s moves the fields of rhs that correspond to fields of %s into lhs.", name, r.Target),
		Signature: fmt.Sprintf("func (lhs *%s) %s(rhs %s)", r.Target, name, r.Source),
	}

	if len(r.Actions) == 0 {
		data.Lines = []string{"_ = rhs"}
		return data
	}

	for _, a := range r.Actions {
		if g.config.GenerateComments {
			data.Lines = append(data.Lines, fmt.Sprintf("// %s: %s <- %s", a.Policy, a.TargetType, a.SourceType))
		}

		data.Lines = append(data.Lines, actionLines(a)...)
	}

	return data
}

// actionLines renders one field action. No line ever writes an absent value
// into the target.
func actionLines(a plan.FieldAction) []string {
	target := "lhs." + a.TargetField
	source := "rhs." + a.SourceField

	switch a.Policy {
	case plan.PolicyWrap:
		return []string{target + ".Set(" + source + ")"}

	case plan.PolicyUnwrap:
		return []string{
			"if v, ok := " + source + ".Get(); ok {",
			"\t" + target + " = v",
			"}",
		}

	case plan.PolicyAssignIfSome:
		return []string{
			"if " + source + ".IsSome() {",
			"\t" + target + " = " + source,
			"}",
		}

	default:
		return []string{target + " = " + source}
	}
}

// Template for the generated file

var fileTemplate = template.Must(template.New("corresponding").Parse(`{{.Header}}

package {{.PackageName}}
{{range .Routines}}
// {{.Doc}}
{{.Signature}} {
{{range .Lines}}	{{.}}
{{end}}}
{{end}}`))
