package plan

import (
	"fmt"

	"corresponding-generator/internal/analyze"
)

// Conflict is a generated identifier that would not compile next to the
// declarations of its scope.
type Conflict struct {
	Routine Routine
	Reason  string
}

// String returns "[Source -> Target] reason".
func (c Conflict) String() string {
	return "[" + c.Routine.TypePair() + "] " + c.Reason
}

// Conflicts lists the routines of p whose names clash with a field of their
// target, with a declaration, or with another constructor. Routines that
// clash only because two declarations share a name are left to the
// duplicate declaration check.
func Conflicts(scope *analyze.Scope, p *Plan) []Conflict {
	var conflicts []Conflict

	declared := make(map[string]bool, len(scope.Declarations))
	for i := range scope.Declarations {
		declared[scope.Declarations[i].Name] = true
	}

	constructors := make(map[string]*Routine)

	for i := range p.Routines {
		r := &p.Routines[i]
		name := r.Name()

		switch r.Kind {
		case RoutineMove:
			for j := range scope.Declarations {
				d := &scope.Declarations[j]
				if d.Name != r.Target {
					continue
				}

				if _, ok := d.FieldByName(name); ok {
					conflicts = append(conflicts, Conflict{
						Routine: *r,
						Reason:  fmt.Sprintf("%s has a field named like its method %s", r.Target, name),
					})

					break
				}
			}

		case RoutineFrom:
			if declared[name] {
				conflicts = append(conflicts, Conflict{
					Routine: *r,
					Reason:  fmt.Sprintf("function %s has the name of a declaration", name),
				})
			}

			prev, ok := constructors[name]
			if !ok {
				constructors[name] = r
				continue
			}

			if prev.Target != r.Target || prev.Source != r.Source {
				conflicts = append(conflicts, Conflict{
					Routine: *r,
					Reason:  fmt.Sprintf("function %s is also generated for %s", name, prev.TypePair()),
				})
			}
		}
	}

	return conflicts
}
