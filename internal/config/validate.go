package config

import (
	"fmt"
	"strings"

	"corresponding-generator/internal/common"
	"corresponding-generator/internal/diagnostic"
)

// Validate checks the configuration. It never fails on the scope contents:
// those are only known once the packages are loaded.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeInvalidConfig, "config is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("unsupported version %q, want %q", f.Version, CurrentVersion), "", "")
	}

	if !common.IsIdent(f.OptionalWrapper) {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("optional_wrapper %q is not a Go identifier", f.OptionalWrapper), "", "")
	}

	if strings.TrimSpace(f.DefaultMarker) == "" {
		res.AddError(diagnostic.CodeInvalidConfig, "default_marker is empty", "", "")
	}

	if !strings.HasSuffix(f.Output, ".go") || strings.HasSuffix(f.Output, "_test.go") ||
		strings.ContainsAny(f.Output, `/\`) {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("output %q must be a non-test .go file name", f.Output), "", "")
	}

	seen := make(map[string]bool, len(f.Scopes))
	for i, s := range f.Scopes {
		if s.Package == "" {
			res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("scopes[%d]: package is empty", i), "", "")
			continue
		}

		key := CleanPattern(s.Package)
		if seen[key] {
			res.AddWarning(diagnostic.CodeInvalidConfig,
				fmt.Sprintf("scopes[%d]: package %q listed twice, the first entry wins", i, s.Package), "", "")
		}

		seen[key] = true
	}

	return res
}
