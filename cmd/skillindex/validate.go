package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dotnet-artisans/skillindex/pkg/entry"
	"github.com/dotnet-artisans/skillindex/pkg/frontmatter"
	"github.com/dotnet-artisans/skillindex/pkg/manifest"
	"github.com/dotnet-artisans/skillindex/pkg/presenter"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate descriptor frontmatter for every catalog entry",
	Long: `Validate every skill and agent descriptor listed in the manifest.

Unlike index generation, which tolerates broken descriptors, validation
parses the full YAML frontmatter and requires both name and description.
The exit status is non-zero when any descriptor is invalid.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getRootConfigFromFlags(cmd)
		validateCatalogCmd(config)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateCatalogCmd(config *RootConfig) {
	m, err := manifest.Load(config.ManifestPath)
	if err != nil {
		presenter.Error(err, "Failed to load manifest")
		os.Exit(1)
	}

	resolver := entry.NewResolver(config.RepoRoot)

	var result *multierror.Error
	checked := 0

	validate := func(refs []string, kind entry.Kind) {
		for _, ref := range refs {
			checked++
			path := resolver.DescriptorPath(ref, kind)
			if _, err := frontmatter.Parse(path); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "%s '%s'", kind, ref))
				presenter.Warning(fmt.Sprintf("%s '%s': %v", kind, ref, err))
			}
		}
	}

	validate(m.Skills, entry.KindSkill)
	validate(m.Agents, entry.KindAgent)

	if err := result.ErrorOrNil(); err != nil {
		presenter.Error(errors.Errorf("%d of %d descriptors invalid", len(result.Errors), checked), "Validation failed")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("All %d descriptors valid", checked))
}
