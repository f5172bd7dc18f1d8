package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlc/internal/token"
)

func writeInput(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestTokenizeSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "loja.puml", shopSource)

	res, err := Tokenize(path, 16)
	require.NoError(t, err)
	require.NotEmpty(t, res.Tokens)
	assert.Equal(t, token.EOF, res.Tokens[len(res.Tokens)-1].Kind)
	assert.False(t, res.Bag.HasErrors())
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(filepath.Join(t.TempDir(), "nope.puml"), 16)
	require.Error(t, err)
}

func TestParseSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "loja.puml", shopSource)

	res, err := Parse(path, 16)
	require.NoError(t, err)
	require.NotNil(t, res.Diagram)
	assert.Equal(t, "loja", res.Diagram.Name)
	assert.Len(t, res.Diagram.Structures(), 2)
	assert.False(t, res.Bag.HasErrors())
}

func TestListDiagramFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "b.puml", minimalSource)
	writeInput(t, dir, "nested/a.plantuml", minimalSource)
	writeInput(t, dir, "notes.txt", "not a diagram")

	files, err := ListDiagramFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "b.puml"), files[0])
	assert.Equal(t, filepath.Join(dir, "nested", "a.plantuml"), files[1])
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "a.puml", shopSource)
	writeInput(t, dir, "b.puml", "@startuml quebrado\nclass {\n@enduml\n")

	fileSet, results, err := ParseDir(context.Background(), dir, 16, 2)
	require.NoError(t, err)
	require.NotNil(t, fileSet)
	require.Len(t, results, 2)

	assert.Equal(t, filepath.Join(dir, "a.puml"), results[0].Path)
	assert.False(t, results[0].Bag.HasErrors())
	assert.Equal(t, "loja", results[0].Diagram.Name)

	assert.Equal(t, filepath.Join(dir, "b.puml"), results[1].Path)
	assert.True(t, results[1].Bag.HasErrors())
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "a.puml", minimalSource)
	writeInput(t, dir, "b.wsd", minimalSource)

	_, results, err := TokenizeDir(context.Background(), dir, 16, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, token.EOF, r.Tokens[len(r.Tokens)-1].Kind)
		assert.False(t, r.Bag.HasErrors())
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	_, results, err := TokenizeDir(context.Background(), t.TempDir(), 16, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}
