package main

import (
	"context"
	"fmt"

	"github.com/dotnet-artisans/skillindex/pkg/entry"
	"github.com/dotnet-artisans/skillindex/pkg/manifest"
	"github.com/dotnet-artisans/skillindex/pkg/presenter"
)

// resolveEntries runs the manifest and resolution stages shared by the
// root, list and watch commands. Unresolved references surface as
// operator warnings but never fail the run; a broken manifest does.
func resolveEntries(ctx context.Context, config *RootConfig) (skills, agents []entry.Entry, err error) {
	m, err := manifest.Load(config.ManifestPath)
	if err != nil {
		return nil, nil, err
	}

	resolver := entry.NewResolver(config.RepoRoot)
	skills = resolver.Resolve(ctx, m.Skills, entry.KindSkill)
	agents = resolver.Resolve(ctx, m.Agents, entry.KindAgent)

	for _, ref := range entry.Unresolved(skills) {
		presenter.Warning(fmt.Sprintf("Skill '%s' has no resolvable name, it will render as an empty token", ref))
	}
	for _, ref := range entry.Unresolved(agents) {
		presenter.Warning(fmt.Sprintf("Agent '%s' has no resolvable name, it will render as an empty token", ref))
	}

	return skills, agents, nil
}
