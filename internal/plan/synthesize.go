package plan

import (
	"corresponding-generator/internal/analyze"
	"corresponding-generator/internal/match"
)

// Synthesize builds the routines for every ordered pair of distinct
// declarations in scope. Pairs are distinct by position, so two
// declarations sharing a name still produce routines for each other.
//
// The pass is pure: it reads scope and returns a new Plan. A scope with
// fewer than two declarations yields a plan without routines.
func Synthesize(scope *analyze.Scope, cfg Config) *Plan {
	p := &Plan{
		PkgName:   scope.PkgName,
		Dir:       scope.Dir,
		ScopeName: scope.Name(),
	}

	decls := scope.Declarations
	for i := range decls {
		l := &decls[i]

		for j := range decls {
			if i == j {
				continue
			}

			r := &decls[j]

			p.Routines = append(p.Routines, Routine{
				Kind:    RoutineMove,
				Target:  l.Name,
				Source:  r.Name,
				Actions: Correspond(l, r, cfg.Wrapper),
			})

			// Only the target's capability matters; the source is consumed.
			if l.SupportsDefault {
				p.Routines = append(p.Routines, Routine{
					Kind:   RoutineFrom,
					Target: l.Name,
					Source: r.Name,
				})
			}
		}
	}

	return p
}

// Correspond returns the field actions moving r's fields into l, in l's
// field order. Each field of l gets at most one action: the first
// same-named field of r whose shape is comparable.
func Correspond(l, r *analyze.Declaration, wrapper string) []FieldAction {
	var actions []FieldAction

	for i := range l.Fields {
		c := match.FindCandidate(&l.Fields[i], r.Fields, wrapper)
		if !c.Matched() {
			continue
		}

		actions = append(actions, FieldAction{
			TargetField: c.TargetField.Name,
			SourceField: c.SourceField.Name,
			Policy:      SelectPolicy(c.TargetShape.IsOptional, c.SourceShape.IsOptional),
			TargetType:  match.ExprString(c.TargetField.Type),
			SourceType:  match.ExprString(c.SourceField.Type),
		})
	}

	return actions
}
