package match

import (
	"corresponding-generator/internal/analyze"
	"corresponding-generator/internal/common"
)

// Verdict tells why a target field did or did not find a source field.
type Verdict int

const (
	// VerdictMatched means a same-named field with a comparable shape exists.
	VerdictMatched Verdict = iota
	// VerdictNoField means no source field has the target field's name.
	VerdictNoField
	// VerdictUnclassifiable means the target field's type has no shape.
	VerdictUnclassifiable
	// VerdictSourceUnclassifiable means every same-named source field lacks a shape.
	VerdictSourceUnclassifiable
	// VerdictTypeMismatch means same-named source fields exist but none has the same base type.
	VerdictTypeMismatch
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictMatched:
		return "matched"
	case VerdictNoField:
		return "no_field"
	case VerdictUnclassifiable:
		return "unclassifiable"
	case VerdictSourceUnclassifiable:
		return "source_unclassifiable"
	case VerdictTypeMismatch:
		return "type_mismatch"
	default:
		return common.UnknownStr
	}
}

// Candidate is the outcome of looking up a target field in a source struct.
type Candidate struct {
	TargetField *analyze.Field
	SourceField *analyze.Field // nil unless Verdict is VerdictMatched
	TargetShape Shape
	SourceShape Shape
	Verdict     Verdict
}

// Matched reports whether a source field was found.
func (c Candidate) Matched() bool {
	return c.Verdict == VerdictMatched
}

// FindCandidate scans sourceFields in declared order and returns the first
// field with the target's name whose shape is comparable to the target's.
// Fields whose types cannot be classified never match.
func FindCandidate(target *analyze.Field, sourceFields []analyze.Field, wrapper string) Candidate {
	result := Candidate{
		TargetField: target,
		Verdict:     VerdictNoField,
	}

	targetShape, ok := Classify(target.Type, wrapper)
	if !ok {
		result.Verdict = VerdictUnclassifiable
		return result
	}

	result.TargetShape = targetShape

	for i := range sourceFields {
		source := &sourceFields[i]
		if source.Name != target.Name {
			continue
		}

		sourceShape, ok := Classify(source.Type, wrapper)
		if !ok {
			if result.Verdict == VerdictNoField {
				result.Verdict = VerdictSourceUnclassifiable
			}

			continue
		}

		if !targetShape.Comparable(sourceShape) {
			result.Verdict = VerdictTypeMismatch
			result.SourceShape = sourceShape

			continue
		}

		result.SourceField = source
		result.SourceShape = sourceShape
		result.Verdict = VerdictMatched

		return result
	}

	return result
}
