package plan

import (
	"go/token"

	"corresponding-generator/internal/common"
	"corresponding-generator/internal/diagnostic"
	"corresponding-generator/internal/match"
)

// Config holds configuration for synthesis.
type Config struct {
	// Wrapper is the identifier of the optional wrapper type.
	Wrapper string
}

// DefaultConfig returns the default synthesis configuration.
func DefaultConfig() Config {
	return Config{
		Wrapper: match.DefaultWrapper,
	}
}

// Plan is the output of one synthesis pass over one scope.
// It contains everything needed for code generation.
type Plan struct {
	// PkgName is the package the routines are emitted into.
	PkgName string
	// Dir is the scope's directory.
	Dir string
	// ScopeName labels the scope in logs and diagnostics.
	ScopeName string
	// Routines in emission order.
	Routines []Routine
}

// Lookup returns the routine of the given kind for the ordered pair.
func (p *Plan) Lookup(kind RoutineKind, target, source string) (*Routine, bool) {
	for i := range p.Routines {
		r := &p.Routines[i]
		if r.Kind == kind && r.Target == target && r.Source == source {
			return r, true
		}
	}

	return nil, false
}

// Count returns the number of routines of the given kind.
func (p *Plan) Count(kind RoutineKind) int {
	n := 0
	for _, r := range p.Routines {
		if r.Kind == kind {
			n++
		}
	}

	return n
}

// RoutineKind tells which artifact a Routine becomes.
type RoutineKind int

const (
	// RoutineMove - method moving the corresponding fields of Source into Target.
	RoutineMove RoutineKind = iota
	// RoutineFrom - function building a zero Target and moving Source into it.
	RoutineFrom
)

// String returns a human-readable routine kind.
func (k RoutineKind) String() string {
	switch k {
	case RoutineMove:
		return "move"
	case RoutineFrom:
		return "from"
	default:
		return common.UnknownStr
	}
}

// Routine is one generated function or method for an ordered pair.
type Routine struct {
	Kind RoutineKind
	// Target is the name of the declaration written to (L).
	Target string
	// Source is the name of the declaration read from (R).
	Source string
	// Actions lists the field actions in the target's field order.
	// Always empty for RoutineFrom.
	Actions []FieldAction
}

// Name returns the Go identifier of the routine.
func (r *Routine) Name() string {
	if r.Kind == RoutineFrom {
		return FromFuncName(r.Target, r.Source)
	}

	return MoveMethodName(r.Source)
}

// TypePair returns "Source -> Target".
func (r *Routine) TypePair() string {
	return typePair(r.Target, r.Source)
}

// MoveMethodName returns the name of the move method that reads from source.
// Distinct sources always give distinct names: "MoveFromA" for A,
// "MoveFrom_a" for a.
func MoveMethodName(source string) string {
	return "MoveFrom" + sourceSuffix(source)
}

// FromFuncName returns the name of the constructor building target from
// source. It is exported exactly when target is.
func FromFuncName(target, source string) string {
	return target + "From" + sourceSuffix(source)
}

// sourceSuffix keeps an exported name as is and prefixes any other name
// with an underscore.
func sourceSuffix(source string) string {
	if token.IsExported(source) {
		return source
	}

	return "_" + source
}

func typePair(target, source string) string {
	return source + " -> " + target
}

// Policy describes how a matched field pair is copied.
type Policy int

const (
	// PolicyAssign - plain to plain: always assign.
	PolicyAssign Policy = iota
	// PolicyWrap - plain source to optional target: always set the target.
	PolicyWrap
	// PolicyUnwrap - optional source to plain target: assign the held value if present.
	PolicyUnwrap
	// PolicyAssignIfSome - optional to optional: assign the whole option if present.
	PolicyAssignIfSome
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case PolicyAssign:
		return "assign"
	case PolicyWrap:
		return "wrap"
	case PolicyUnwrap:
		return "unwrap"
	case PolicyAssignIfSome:
		return "assign_if_some"
	default:
		return common.UnknownStr
	}
}

// SelectPolicy picks the policy from the optionality of the target and the
// source field.
func SelectPolicy(targetOptional, sourceOptional bool) Policy {
	switch {
	case !targetOptional && !sourceOptional:
		return PolicyAssign
	case targetOptional && !sourceOptional:
		return PolicyWrap
	case !targetOptional && sourceOptional:
		return PolicyUnwrap
	default:
		return PolicyAssignIfSome
	}
}

// FieldAction copies one source field into one target field.
type FieldAction struct {
	TargetField string
	SourceField string
	Policy      Policy
	// TargetType and SourceType are the type expressions as written.
	TargetType string
	SourceType string
}

// Report is the explanation of one synthesis pass.
type Report struct {
	ScopeName   string
	Diagnostics diagnostic.Diagnostics
}
