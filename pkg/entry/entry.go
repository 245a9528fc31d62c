// Package entry resolves manifest references into display entries by
// locating each reference's descriptor file and extracting its declared
// name. Resolution is deliberately lenient: a missing or nameless
// descriptor degrades to an empty display name so that one bad entry
// never blocks regenerating the whole index.
package entry

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotnet-artisans/skillindex/pkg/logger"
)

const (
	skillFileName = "SKILL.md"
	agentFileName = "AGENT.md"

	skillsDirName = "skills"
	agentsDirName = "agents"
)

// Kind discriminates skill entries from agent entries.
type Kind string

const (
	KindSkill Kind = "skill"
	KindAgent Kind = "agent"
)

// Entry is one resolved manifest reference.
type Entry struct {
	Reference   string
	DisplayName string
	Kind        Kind
}

// Resolver computes descriptor paths by convention relative to the
// repository root and scans them for a name declaration.
type Resolver struct {
	repoRoot string
}

// NewResolver creates a resolver rooted at the given repository directory.
func NewResolver(repoRoot string) *Resolver {
	return &Resolver{repoRoot: repoRoot}
}

// DescriptorPath returns the conventional descriptor file location for a
// reference of the given kind.
func (r *Resolver) DescriptorPath(ref string, kind Kind) string {
	if kind == KindAgent {
		return filepath.Join(r.repoRoot, agentsDirName, filepath.FromSlash(ref), agentFileName)
	}
	return filepath.Join(r.repoRoot, skillsDirName, filepath.FromSlash(ref), skillFileName)
}

// Resolve maps each reference to an Entry, preserving input order.
// References whose descriptor is missing or carries no name declaration
// resolve with an empty display name and a warning-level log; they are
// never dropped here.
func (r *Resolver) Resolve(ctx context.Context, refs []string, kind Kind) []Entry {
	entries := make([]Entry, 0, len(refs))
	for _, ref := range refs {
		path := r.DescriptorPath(ref, kind)
		name, err := extractName(path)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("reference", ref).
				Warn("descriptor unresolved, entry will render with an empty name")
		} else if name == "" {
			logger.G(ctx).WithField("reference", ref).
				Warn("descriptor has no name declaration, entry will render with an empty name")
		}
		entries = append(entries, Entry{Reference: ref, DisplayName: name, Kind: kind})
	}
	return entries
}

// Unresolved returns the references of entries that resolved with an
// empty display name, for operator-facing diagnostics.
func Unresolved(entries []Entry) []string {
	var refs []string
	for _, e := range entries {
		if e.DisplayName == "" {
			refs = append(refs, e.Reference)
		}
	}
	return refs
}

// extractName scans the descriptor top to bottom and returns the value of
// the first line starting with the literal token "name:". First match
// wins so that example YAML embedded later in the body is ignored.
func extractName(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")
		if strings.HasPrefix(line, "name:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "name:")), nil
		}
	}
	return "", scanner.Err()
}
