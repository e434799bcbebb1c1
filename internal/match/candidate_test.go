package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corresponding-generator/internal/analyze"
)

func field(t *testing.T, name, typ string) analyze.Field {
	t.Helper()

	return analyze.Field{Name: name, Type: mustExpr(t, typ)}
}

func TestFindCandidate(t *testing.T) {
	t.Parallel()

	source := []analyze.Field{
		field(t, "A", "uint8"),
		field(t, "B", "uint16"),
		field(t, "C", "option.Option[uint8]"),
		field(t, "P", "*uint8"),
		field(t, "K", "string"),
	}

	tests := []struct {
		name        string
		target      analyze.Field
		wantVerdict Verdict
		wantSource  string
		wantShape   Shape
	}{
		{
			name:        "same name and type",
			target:      field(t, "A", "uint8"),
			wantVerdict: VerdictMatched,
			wantSource:  "A",
			wantShape:   Shape{BaseName: "uint8"},
		},
		{
			name:        "different base type",
			target:      field(t, "B", "uint8"),
			wantVerdict: VerdictTypeMismatch,
			wantShape:   Shape{BaseName: "uint16"},
		},
		{
			name:        "optional source",
			target:      field(t, "C", "uint8"),
			wantVerdict: VerdictMatched,
			wantSource:  "C",
			wantShape:   Shape{BaseName: "uint8", IsOptional: true},
		},
		{
			name:        "source pointer is unclassifiable",
			target:      field(t, "P", "uint8"),
			wantVerdict: VerdictSourceUnclassifiable,
		},
		{
			name:        "target pointer is unclassifiable",
			target:      field(t, "K", "*string"),
			wantVerdict: VerdictUnclassifiable,
		},
		{
			name:        "only in target",
			target:      field(t, "M", "uint8"),
			wantVerdict: VerdictNoField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := FindCandidate(&tt.target, source, DefaultWrapper)
			assert.Equal(t, tt.wantVerdict, c.Verdict)
			assert.Equal(t, tt.wantShape, c.SourceShape)

			if tt.wantSource == "" {
				assert.Nil(t, c.SourceField)
				assert.False(t, c.Matched())
				return
			}

			require.NotNil(t, c.SourceField)
			assert.True(t, c.Matched())
			assert.Equal(t, tt.wantSource, c.SourceField.Name)
		})
	}
}

func TestFindCandidate_FirstStructuralMatchWins(t *testing.T) {
	t.Parallel()

	source := []analyze.Field{
		field(t, "X", "string"),
		field(t, "X", "Option[int]"),
		field(t, "X", "int"),
	}
	target := field(t, "X", "int")

	c := FindCandidate(&target, source, DefaultWrapper)
	require.True(t, c.Matched())
	assert.Same(t, &source[1], c.SourceField)
	assert.True(t, c.SourceShape.IsOptional)
}

func TestVerdict_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "matched", VerdictMatched.String())
	assert.Equal(t, "no_field", VerdictNoField.String())
	assert.Equal(t, "unclassifiable", VerdictUnclassifiable.String())
	assert.Equal(t, "source_unclassifiable", VerdictSourceUnclassifiable.String())
	assert.Equal(t, "type_mismatch", VerdictTypeMismatch.String())
	assert.Equal(t, "unknown", Verdict(42).String())
}
