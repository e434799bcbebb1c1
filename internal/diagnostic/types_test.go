package diagnostic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndError(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())

	d.AddInfo(CodeFieldMatched, "assign", "B -> A", "A.X")
	d.AddWarning(CodeDuplicateDecl, "declared twice", "", "")
	assert.False(t, d.HasErrors())

	d.AddError(CodeInvalidConfig, "output must end in .go", "", "")
	d.AddError(CodeInvalidConfig, "wrapper is empty", "", "")
	require.True(t, d.HasErrors())

	assert.EqualError(t, d.Error(),
		"[invalid_config] output must end in .go; [invalid_config] wrapper is empty")
	assert.Len(t, d.All(), 4)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
	assert.Equal(t, SeverityInfo, d.All()[3].Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo(CodeFieldSkipped, "no field", "B -> A", "A.M")
	b.AddError(CodeInvalidConfig, "bad", "", "")

	a.Merge(b)
	assert.Len(t, a.Infos, 1)
	assert.Len(t, a.Errors, 1)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: CodeFieldMatched, Message: "unwrap", TypePair: "B -> A", FieldPath: "A.C"}
	assert.Equal(t, "[B -> A] A.C: [field_matched] unwrap", d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnostics_WriteTo(t *testing.T) {
	var d Diagnostics
	d.AddInfo(CodeFieldMatched, "assign", "B -> A", "A.X")
	d.AddWarning(CodeDuplicateDecl, "twice", "", "")

	var buf bytes.Buffer
	_, err := d.WriteTo(&buf)
	require.NoError(t, err)

	assert.Equal(t,
		"warning [duplicate_declaration] twice\n"+
			"info    [B -> A] A.X: [field_matched] assign\n",
		buf.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
