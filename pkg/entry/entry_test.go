package entry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, root, ref, kind, content string) {
	t.Helper()
	dir := filepath.Join(root, kind+"s", filepath.FromSlash(ref))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	file := "SKILL.md"
	if kind == "agent" {
		file = "AGENT.md"
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
}

func TestResolveSkill(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "csharp/coding-standards", "skill", `---
name: modern-csharp-coding-standards
description: Coding standards for modern C#
---

# Modern C# Coding Standards
`)

	r := NewResolver(root)
	entries := r.Resolve(context.Background(), []string{"csharp/coding-standards"}, KindSkill)

	require.Len(t, entries, 1)
	assert.Equal(t, "csharp/coding-standards", entries[0].Reference)
	assert.Equal(t, "modern-csharp-coding-standards", entries[0].DisplayName)
	assert.Equal(t, KindSkill, entries[0].Kind)
}

func TestResolvePreservesOrder(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "testing/crap-analysis", "skill", "name: crap-analysis\n")
	writeDescriptor(t, root, "csharp/coding-standards", "skill", "name: modern-csharp-coding-standards\n")

	r := NewResolver(root)
	entries := r.Resolve(context.Background(), []string{"csharp/coding-standards", "testing/crap-analysis"}, KindSkill)

	require.Len(t, entries, 2)
	assert.Equal(t, "modern-csharp-coding-standards", entries[0].DisplayName)
	assert.Equal(t, "crap-analysis", entries[1].DisplayName)
}

func TestResolveFirstNameLineWins(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "testing/xunit-patterns", "skill", `---
name: xunit-patterns
description: xUnit test patterns
---

Example frontmatter for a derived skill:

`+"```yaml"+`
name: not-this-one
`+"```"+`
`)

	r := NewResolver(root)
	entries := r.Resolve(context.Background(), []string{"testing/xunit-patterns"}, KindSkill)

	require.Len(t, entries, 1)
	assert.Equal(t, "xunit-patterns", entries[0].DisplayName)
}

func TestResolveIndentedNameLine(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "di/scrutor-scanning", "skill", "  name:   scrutor-scanning  \n")

	r := NewResolver(root)
	entries := r.Resolve(context.Background(), []string{"di/scrutor-scanning"}, KindSkill)

	require.Len(t, entries, 1)
	assert.Equal(t, "scrutor-scanning", entries[0].DisplayName)
}

func TestResolveMissingDescriptor(t *testing.T) {
	r := NewResolver(t.TempDir())
	entries := r.Resolve(context.Background(), []string{"csharp/does-not-exist"}, KindSkill)

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].DisplayName)
	assert.Equal(t, []string{"csharp/does-not-exist"}, Unresolved(entries))
}

func TestResolveDescriptorWithoutName(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "csharp/span-usage", "skill", "# Span Usage\n\nNo frontmatter here.\n")

	r := NewResolver(root)
	entries := r.Resolve(context.Background(), []string{"csharp/span-usage"}, KindSkill)

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].DisplayName)
	assert.Equal(t, []string{"csharp/span-usage"}, Unresolved(entries))
}

func TestResolveAgent(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "code-reviewer", "agent", "name: code-reviewer\n")

	r := NewResolver(root)
	entries := r.Resolve(context.Background(), []string{"code-reviewer"}, KindAgent)

	require.Len(t, entries, 1)
	assert.Equal(t, "code-reviewer", entries[0].DisplayName)
	assert.Equal(t, KindAgent, entries[0].Kind)
}

func TestDescriptorPath(t *testing.T) {
	r := NewResolver("/repo")
	assert.Equal(t, filepath.FromSlash("/repo/skills/csharp/coding-standards/SKILL.md"),
		r.DescriptorPath("csharp/coding-standards", KindSkill))
	assert.Equal(t, filepath.FromSlash("/repo/agents/code-reviewer/AGENT.md"),
		r.DescriptorPath("code-reviewer", KindAgent))
}
