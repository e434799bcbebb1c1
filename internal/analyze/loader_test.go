package analyze

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_LoadPackages(t *testing.T) {
	scopes, err := NewAnalyzer(DefaultOptions()).LoadPackages("corresponding-generator/examples/basic")
	require.NoError(t, err)
	require.Len(t, scopes, 1)

	scope := scopes[0]
	assert.Equal(t, "basic", scope.PkgName)
	assert.Equal(t, "corresponding-generator/examples/basic", scope.Name())
	assert.Equal(t, "basic", filepath.Base(scope.Dir))

	// Box is generic and the generated file is skipped.
	require.Len(t, scope.Declarations, 2)
	assert.Equal(t, "A", scope.Declarations[0].Name)
	assert.True(t, scope.Declarations[0].SupportsDefault)
	assert.Equal(t, "B", scope.Declarations[1].Name)
	assert.False(t, scope.Declarations[1].SupportsDefault)
	assert.Equal(t, "types.go", filepath.Base(scope.Declarations[0].Pos.Filename))
}

func TestAnalyzer_LoadPackages_Errors(t *testing.T) {
	_, err := NewAnalyzer(DefaultOptions()).LoadPackages("corresponding-generator/does/not/exist")
	require.Error(t, err)
}

func TestAnalyzer_ParseDir(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"b.go":      "package models\n\ntype Second struct{ X int }\n",
		"a.go":      "package models\n\ntype First struct{ X int }\n",
		"a_test.go": "package models\n\ntype InTest struct{ X int }\n",
		"notes.txt": "type Ignored struct{}\n",
	}
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.go"), 0o755))

	scope, err := NewAnalyzer(DefaultOptions()).ParseDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "models", scope.PkgName)
	assert.Equal(t, dir, scope.Dir)
	assert.Equal(t, "models", scope.Name())

	names := make([]string, 0, len(scope.Declarations))
	for _, d := range scope.Declarations {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"First", "Second"}, names, "files are read in name order")
}

func TestAnalyzer_ParseDir_BuildConstraints(t *testing.T) {
	dir := t.TempDir()

	otherOS := "windows"
	if runtime.GOOS == otherOS {
		otherOS = "linux"
	}

	files := map[string]string{
		"kept.go":                 "package models\n\ntype Kept struct{ X int }\n",
		"tool.go":                 "//go:build ignore\n\npackage main\n\ntype Tool struct{ X int }\n",
		"only_" + otherOS + ".go": "package models\n\ntype Foreign struct{ X int }\n",
		"tagged.go":               "//go:build !never_set_tag\n\npackage models\n\ntype Tagged struct{ X int }\n",
	}
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}

	scope, err := NewAnalyzer(DefaultOptions()).ParseDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(scope.Declarations))
	for _, d := range scope.Declarations {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Kept", "Tagged"}, names)
}

func TestAnalyzer_ParseDir_Errors(t *testing.T) {
	a := NewAnalyzer(DefaultOptions())

	_, err := a.ParseDir(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	empty := t.TempDir()
	_, err = a.ParseDir(empty)
	require.ErrorIs(t, err, ErrNoGoFiles)

	broken := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(broken, "x.go"), []byte("package x\n\ntype {"), 0o644))
	_, err = a.ParseDir(broken)
	require.ErrorContains(t, err, "parsing x.go")
}
