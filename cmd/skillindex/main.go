package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotnet-artisans/skillindex/pkg/index"
	"github.com/dotnet-artisans/skillindex/pkg/logger"
	"github.com/dotnet-artisans/skillindex/pkg/patch"
	"github.com/dotnet-artisans/skillindex/pkg/presenter"
)

// RootConfig holds configuration for the default render/write run
type RootConfig struct {
	RepoRoot     string
	ManifestPath string
	ReadmePath   string
	Write        bool
	DryRun       bool
}

// NewRootConfig creates a RootConfig with default values. Empty manifest
// and readme paths resolve against the repo root.
func NewRootConfig() *RootConfig {
	return &RootConfig{
		RepoRoot: ".",
	}
}

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLINDEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("skillindex")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skillindex",
	Short: "Generate the compressed skills index for the catalog",
	Long: `skillindex reads the marketplace catalog, resolves every skill and agent
descriptor, classifies skills into display categories and renders the
compressed index.

By default the index is printed to stdout. With --write it replaces the
marked region of the README in place, leaving everything outside the
markers untouched.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		presenter.SetQuiet(viper.GetBool("quiet"))
		if level := viper.GetString("log-level"); level != "" {
			if err := logger.SetLogLevel(level); err != nil {
				presenter.Warning(fmt.Sprintf("Invalid log level %q, keeping default", level))
			}
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		config := getRootConfigFromFlags(cmd)
		runIndex(cmd.Context(), config)
	},
}

// getRootConfigFromFlags extracts root configuration from command flags
// and viper, resolving defaulted paths against the repo root.
func getRootConfigFromFlags(cmd *cobra.Command) *RootConfig {
	config := NewRootConfig()

	if root := viper.GetString("repo-root"); root != "" {
		config.RepoRoot = root
	}
	config.ManifestPath = viper.GetString("manifest")
	if config.ManifestPath == "" {
		config.ManifestPath = filepath.Join(config.RepoRoot, ".claude-plugin", "marketplace.json")
	}
	config.ReadmePath = viper.GetString("readme")
	if config.ReadmePath == "" {
		config.ReadmePath = filepath.Join(config.RepoRoot, "README.md")
	}

	if write, err := cmd.Flags().GetBool("write"); err == nil {
		config.Write = write
	}
	if dryRun, err := cmd.Flags().GetBool("dry-run"); err == nil {
		config.DryRun = dryRun
	}

	return config
}

// runIndex executes one full pipeline pass: load, resolve, render, and
// either print or patch.
func runIndex(ctx context.Context, config *RootConfig) {
	skills, agents, err := resolveEntries(ctx, config)
	if err != nil {
		presenter.Error(err, "Failed to load manifest")
		os.Exit(1)
	}

	block := index.Render(skills, agents)

	if !config.Write {
		fmt.Print(block)
		return
	}

	if config.DryRun {
		current, err := os.ReadFile(config.ReadmePath)
		if err != nil {
			presenter.Error(err, "Failed to read README")
			os.Exit(1)
		}
		patched, err := patch.Splice(string(current), block)
		if err != nil {
			presenter.Error(err, "Cannot patch README")
			os.Exit(1)
		}
		diff := udiff.Unified(config.ReadmePath, config.ReadmePath, string(current), patched)
		if diff == "" {
			presenter.Info("README is already up to date")
			return
		}
		fmt.Print(diff)
		return
	}

	if err := patch.Apply(config.ReadmePath, block); err != nil {
		presenter.Error(err, "Failed to patch README")
		os.Exit(1)
	}
	presenter.Success(fmt.Sprintf("Updated skills index in %s", config.ReadmePath))
}

func main() {
	// Global flags
	rootCmd.PersistentFlags().String("repo-root", ".", "Root of the skills repository")
	rootCmd.PersistentFlags().String("manifest", "", "Path to the marketplace catalog (default <repo-root>/.claude-plugin/marketplace.json)")
	rootCmd.PersistentFlags().String("readme", "", "Path to the README to patch (default <repo-root>/README.md)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-error diagnostics")

	viper.BindPFlag("repo-root", rootCmd.PersistentFlags().Lookup("repo-root"))
	viper.BindPFlag("manifest", rootCmd.PersistentFlags().Lookup("manifest"))
	viper.BindPFlag("readme", rootCmd.PersistentFlags().Lookup("readme"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.Flags().Bool("write", false, "Patch the index into the README instead of printing it")
	rootCmd.Flags().Bool("dry-run", false, "With --write, print a unified diff instead of writing")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
