package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/storefront/v2\n\ngo 1.24\n")

	got, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "example.com/acme/storefront/v2", got.ModulePath)
	assert.Equal(t, "storefront", got.Title)
	assert.Equal(t, DefaultExample, got.Example)
	assert.False(t, got.Verbose)
}

func TestResolve_FromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/shop\n")
	writeFile(t, dir, FileName, "render:\n  example: Counter\n  title: \" Demo \"\nlog:\n  verbose: true\n")

	got, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "counter", got.Example)
	assert.Equal(t, "Demo", got.Title)
	assert.True(t, got.Verbose)
}

func TestResolve_WithoutModule(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "playground")
	require.NoError(t, os.Mkdir(dir, 0o755))

	got, err := Resolve(dir)
	require.NoError(t, err)
	assert.Empty(t, got.ModulePath)
	assert.Equal(t, "playground", got.Title)
}

func TestResolve_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "go 1.24\n")
	_, err := Resolve(dir)
	assert.ErrorContains(t, err, "module path")

	dir = t.TempDir()
	writeFile(t, dir, FileName, "render: [")
	_, err = Resolve(dir)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}
