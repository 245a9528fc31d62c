package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dotnet-artisans/skillindex/pkg/classify"
	"github.com/dotnet-artisans/skillindex/pkg/entry"
	"github.com/dotnet-artisans/skillindex/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog entries with their categories",
	Long: `List every skill and agent from the manifest with its resolved display
name, category and descriptor path. Entries whose reference matches no
classification rule show '-' as their category; they are dropped from
the rendered index.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getRootConfigFromFlags(cmd)
		listEntriesCmd(cmd, config)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listEntriesCmd(cmd *cobra.Command, config *RootConfig) {
	skills, agents, err := resolveEntries(cmd.Context(), config)
	if err != nil {
		presenter.Error(err, "Failed to load manifest")
		os.Exit(1)
	}

	if len(skills) == 0 && len(agents) == 0 {
		presenter.Info("The manifest lists no skills or agents")
		return
	}

	resolver := newResolver(config)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tCATEGORY\tPATH")
	fmt.Fprintln(tw, "----\t----\t--------\t----")

	for _, e := range skills {
		category := "-"
		if cat, ok := classify.Classify(e.Reference); ok {
			category = string(cat)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.DisplayName, e.Kind, category, resolver.DescriptorPath(e.Reference, e.Kind))
	}
	for _, e := range agents {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.DisplayName, e.Kind, classify.CategoryAgents, resolver.DescriptorPath(e.Reference, e.Kind))
	}
	tw.Flush()
}

func newResolver(config *RootConfig) *entry.Resolver {
	return entry.NewResolver(config.RepoRoot)
}
