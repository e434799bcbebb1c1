package plan

import (
	"fmt"

	"corresponding-generator/internal/analyze"
	"corresponding-generator/internal/diagnostic"
	"corresponding-generator/internal/match"
)

// Explain reports, for every ordered pair of scope, why each target field
// is or is not moved. It walks the same pairs and makes the same decisions
// as Synthesize, and only ever adds warnings and infos.
func Explain(scope *analyze.Scope, cfg Config) *Report {
	report := &Report{ScopeName: scope.Name()}
	diags := &report.Diagnostics

	decls := scope.Declarations
	if len(decls) < 2 {
		diags.AddInfo(diagnostic.CodeNoEligiblePairs,
			fmt.Sprintf("%d struct declaration(s) in scope, nothing to pair", len(decls)), "", "")

		return report
	}

	seen := make(map[string]bool, len(decls))
	for i := range decls {
		name := decls[i].Name
		if seen[name] {
			diags.AddWarning(diagnostic.CodeDuplicateDecl,
				fmt.Sprintf("%s is declared more than once; generated routines will collide", name), "", "")
		}

		seen[name] = true
	}

	for i := range decls {
		l := &decls[i]

		if l.SupportsDefault {
			diags.AddInfo(diagnostic.CodeDefaultConstructible,
				fmt.Sprintf("%s is default constructible; From routines are generated for it", l.Name), "", "")
		}

		for j := range decls {
			if i == j {
				continue
			}

			explainPair(diags, l, &decls[j], cfg.Wrapper)
		}
	}

	for _, c := range Conflicts(scope, Synthesize(scope, cfg)) {
		diags.AddWarning(diagnostic.CodeNameConflict, c.Reason, c.Routine.TypePair(), "")
	}

	return report
}

func explainPair(diags *diagnostic.Diagnostics, l, r *analyze.Declaration, wrapper string) {
	pair := typePair(l.Name, r.Name)

	for i := range l.Fields {
		c := match.FindCandidate(&l.Fields[i], r.Fields, wrapper)
		path := analyze.FieldPath(l, c.TargetField)

		if c.Matched() {
			policy := SelectPolicy(c.TargetShape.IsOptional, c.SourceShape.IsOptional)
			diags.AddInfo(diagnostic.CodeFieldMatched,
				fmt.Sprintf("%s from %s.%s (%s <- %s)", policy, r.Name, c.SourceField.Name,
					match.ExprString(c.TargetField.Type), match.ExprString(c.SourceField.Type)),
				pair, path)

			continue
		}

		diags.AddInfo(diagnostic.CodeFieldSkipped, skipReason(c, r), pair, path)
	}
}

func skipReason(c match.Candidate, r *analyze.Declaration) string {
	switch c.Verdict {
	case match.VerdictNoField:
		return fmt.Sprintf("%s has no field %s", r.Name, c.TargetField.Name)
	case match.VerdictUnclassifiable:
		return fmt.Sprintf("type %s is not a named type", match.ExprString(c.TargetField.Type))
	case match.VerdictSourceUnclassifiable:
		return fmt.Sprintf("%s.%s is not a named type", r.Name, c.TargetField.Name)
	case match.VerdictTypeMismatch:
		return fmt.Sprintf("base type %s differs from %s.%s base type %s",
			c.TargetShape.BaseName, r.Name, c.TargetField.Name, c.SourceShape.BaseName)
	default:
		return c.Verdict.String()
	}
}
