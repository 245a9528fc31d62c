package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marketplace.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `{
  "name": "dotnet-artisans",
  "skills": ["csharp/coding-standards", "testing/crap-analysis", "csharp/coding-standards"],
  "agents": ["code-reviewer"]
}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"csharp/coding-standards", "testing/crap-analysis", "csharp/coding-standards"}, m.Skills)
	assert.Equal(t, []string{"code-reviewer"}, m.Agents)
}

func TestLoadPreservesDeclarationOrder(t *testing.T) {
	path := writeManifest(t, `{"skills": ["z/last", "a/first", "m/middle"], "agents": []}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"z/last", "a/first", "m/middle"}, m.Skills)
}

func TestLoadEmptyLists(t *testing.T) {
	path := writeManifest(t, `{"skills": [], "agents": []}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, m.Skills)
	assert.Empty(t, m.Agents)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestLoadMalformed(t *testing.T) {
	path := writeManifest(t, `{"skills": ["csharp/coding-standards",}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}
