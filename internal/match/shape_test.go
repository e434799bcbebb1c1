package match

import (
	"go/ast"
	"go/parser"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustExpr(t *testing.T, src string) ast.Expr {
	t.Helper()

	expr, err := parser.ParseExpr(src)
	require.NoError(t, err, src)

	return expr
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr   string
		want   Shape
		wantOK bool
	}{
		{expr: "uint8", want: Shape{BaseName: "uint8"}, wantOK: true},
		{expr: "string", want: Shape{BaseName: "string"}, wantOK: true},
		{expr: "time.Time", want: Shape{BaseName: "time.Time"}, wantOK: true},
		{expr: "Box[uint8]", want: Shape{BaseName: "Box"}, wantOK: true},
		{expr: "pkg.Box[uint8]", want: Shape{BaseName: "pkg.Box"}, wantOK: true},
		{expr: "Pair[string, int]", want: Shape{BaseName: "Pair"}, wantOK: true},
		{expr: "Option[uint8]", want: Shape{BaseName: "uint8", IsOptional: true}, wantOK: true},
		{expr: "option.Option[uint8]", want: Shape{BaseName: "uint8", IsOptional: true}, wantOK: true},
		{expr: "option.Option[time.Time]", want: Shape{BaseName: "time.Time", IsOptional: true}, wantOK: true},
		{expr: "Option[Box[uint8]]", want: Shape{BaseName: "Box", IsOptional: true}, wantOK: true},
		{expr: "Option[Option[uint8]]", want: Shape{BaseName: "Option", IsOptional: true}, wantOK: true},
		{expr: "option.Option[option.Option[uint8]]", want: Shape{BaseName: "option.Option", IsOptional: true}, wantOK: true},
		{expr: "Option[string, int]", want: Shape{BaseName: "Option"}, wantOK: true},
		{expr: "Option[*uint8]", wantOK: false},
		{expr: "Option[[]uint8]", wantOK: false},
		{expr: "*uint8", wantOK: false},
		{expr: "[]uint8", wantOK: false},
		{expr: "[4]uint8", wantOK: false},
		{expr: "map[string]int", wantOK: false},
		{expr: "func() int", wantOK: false},
		{expr: "chan int", wantOK: false},
		{expr: "struct{ A int }", wantOK: false},
		{expr: "interface{}", wantOK: false},
		{expr: "(uint8)", wantOK: false},
		{expr: "a.b.C", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			got, ok := Classify(mustExpr(t, tt.expr), DefaultWrapper)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_CustomWrapper(t *testing.T) {
	t.Parallel()

	got, ok := Classify(mustExpr(t, "Maybe[int]"), "Maybe")
	require.True(t, ok)
	assert.Equal(t, Shape{BaseName: "int", IsOptional: true}, got)

	got, ok = Classify(mustExpr(t, "Option[int]"), "Maybe")
	require.True(t, ok)
	assert.Equal(t, Shape{BaseName: "Option"}, got)
}

func TestShape_Comparable(t *testing.T) {
	t.Parallel()

	plain := Shape{BaseName: "uint8"}
	wrapped := Shape{BaseName: "uint8", IsOptional: true}
	other := Shape{BaseName: "uint16"}

	assert.True(t, plain.Comparable(wrapped))
	assert.True(t, wrapped.Comparable(plain))
	assert.True(t, plain.Comparable(plain))
	assert.False(t, plain.Comparable(other))
	assert.False(t, wrapped.Comparable(other))
}

func TestShape_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uint8", Shape{BaseName: "uint8"}.String())
	assert.Equal(t, "optional uint8", Shape{BaseName: "uint8", IsOptional: true}.String())
}

func TestExprString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "option.Option[uint8]", ExprString(mustExpr(t, "option.Option[uint8]")))
	assert.Equal(t, "<nil>", ExprString(nil))
}
