package config

import (
	"fmt"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"corresponding-generator/internal/analyze"
	"corresponding-generator/internal/common"
	"corresponding-generator/internal/gen"
	"corresponding-generator/internal/match"
	"corresponding-generator/internal/plan"
)

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "corresponding.yaml"

// File represents the root of a configuration file.
type File struct {
	// Version of the configuration schema.
	Version string `yaml:"version,omitempty"`
	// OptionalWrapper is the identifier treated as the optional wrapper.
	OptionalWrapper string `yaml:"optional_wrapper,omitempty"`
	// DefaultMarker is the doc comment directive marking default-constructible structs.
	DefaultMarker string `yaml:"default_marker,omitempty"`
	// Output is the name of the file generated into each scope.
	Output string `yaml:"output,omitempty"`
	// Comments annotates each generated field action.
	Comments bool `yaml:"comments,omitempty"`
	// Scopes lists the packages to generate for.
	Scopes []Scope `yaml:"scopes,omitempty"`
}

// Scope selects one package pattern.
type Scope struct {
	// Package is a go package pattern ("./models", "./...").
	Package string `yaml:"package"`
	// Exclude lists declarations left out of pairing.
	Exclude StringOrArray `yaml:"exclude,omitempty"`
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// Default returns the configuration used when no file exists.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// ExcludeFor returns the exclusions of the first scope whose package
// pattern equals pattern once both are cleaned ("./models/" and "models"
// select "./models").
func (f *File) ExcludeFor(pattern string) []string {
	want := CleanPattern(pattern)

	for _, s := range f.Scopes {
		if CleanPattern(s.Package) == want {
			return s.Exclude
		}
	}

	return nil
}

// CleanPattern returns the canonical spelling of a package pattern.
func CleanPattern(pattern string) string {
	return path.Clean(filepath.ToSlash(pattern))
}

// Patterns returns the package patterns of all scopes.
func (f *File) Patterns() []string {
	patterns := make([]string, 0, len(f.Scopes))
	for _, s := range f.Scopes {
		patterns = append(patterns, s.Package)
	}

	return patterns
}

// AnalyzeOptions returns the declaration collection options for pattern.
func (f *File) AnalyzeOptions(pattern string) analyze.Options {
	return analyze.Options{
		DefaultMarker: f.DefaultMarker,
		Exclude:       f.ExcludeFor(pattern),
	}
}

// PlanConfig returns the synthesis configuration.
func (f *File) PlanConfig() plan.Config {
	return plan.Config{Wrapper: f.OptionalWrapper}
}

// GeneratorConfig returns the code generation configuration.
func (f *File) GeneratorConfig() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()
	cfg.Filename = f.Output
	cfg.GenerateComments = f.Comments

	return cfg
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.OptionalWrapper == "" {
		f.OptionalWrapper = match.DefaultWrapper
	}

	if f.DefaultMarker == "" {
		f.DefaultMarker = analyze.DefaultMarker
	}

	if f.Output == "" {
		f.Output = gen.DefaultFilename
	}
}
