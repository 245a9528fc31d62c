package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dotnet-artisans/skillindex/pkg/index"
	"github.com/dotnet-artisans/skillindex/pkg/logger"
	"github.com/dotnet-artisans/skillindex/pkg/patch"
	"github.com/dotnet-artisans/skillindex/pkg/presenter"
)

// WatchConfig holds configuration for the watch command
type WatchConfig struct {
	DebounceTime int
	Write        bool
}

// NewWatchConfig creates a new WatchConfig with default values
func NewWatchConfig() *WatchConfig {
	return &WatchConfig{
		DebounceTime: 500,
		Write:        false,
	}
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the index whenever the catalog changes",
	Long: `Continuously watches the manifest and the descriptor trees and
regenerates the index whenever one of them changes.

By default each regeneration prints the index to stdout; with --write
it patches the README in place instead.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		rootConfig := getRootConfigFromFlags(cmd)
		config := getWatchConfigFromFlags(cmd)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			presenter.Warning("Cancellation requested, shutting down...")
			cancel()
		}()

		runWatchMode(ctx, rootConfig, config)
	},
}

func init() {
	defaults := NewWatchConfig()
	watchCmd.Flags().IntP("debounce", "d", defaults.DebounceTime, "Debounce time in milliseconds for file change events")
	watchCmd.Flags().Bool("write", defaults.Write, "Patch the README on every regeneration instead of printing")
	rootCmd.AddCommand(watchCmd)
}

// getWatchConfigFromFlags extracts watch configuration from command flags
func getWatchConfigFromFlags(cmd *cobra.Command) *WatchConfig {
	config := NewWatchConfig()

	if debounceTime, err := cmd.Flags().GetInt("debounce"); err == nil {
		config.DebounceTime = debounceTime
	}
	if write, err := cmd.Flags().GetBool("write"); err == nil {
		config.Write = write
	}

	return config
}

func runWatchMode(ctx context.Context, rootConfig *RootConfig, config *WatchConfig) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		presenter.Error(err, "Failed to create file watcher")
		logger.G(ctx).WithError(err).Fatal("Failed to create file watcher")
	}
	defer watcher.Close()

	changes := make(chan string)
	go debounceChanges(ctx, changes, time.Duration(config.DebounceTime)*time.Millisecond, func(path string) {
		presenter.Info(fmt.Sprintf("Change detected: %s", path))
		logger.G(ctx).WithField("file", path).Debug("Regenerating index")
		regenerate(ctx, rootConfig, config)
	})

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				// The patched README would retrigger the watcher forever.
				if config.Write && sameFile(event.Name, rootConfig.ReadmePath) {
					continue
				}
				changes <- event.Name
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				presenter.Error(err, "File watcher error")
				logger.G(ctx).WithError(err).Error("Error watching files")
			case <-ctx.Done():
				return
			}
		}
	}()

	watchRoots := []string{
		filepath.Dir(rootConfig.ManifestPath),
		filepath.Join(rootConfig.RepoRoot, "skills"),
		filepath.Join(rootConfig.RepoRoot, "agents"),
	}
	for _, root := range watchRoots {
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if strings.HasPrefix(info.Name(), ".git") {
					return filepath.SkipDir
				}
				logger.G(ctx).WithField("directory", path).Debug("Adding directory to watcher")
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			presenter.Error(err, "Failed to watch directories")
			logger.G(ctx).WithError(err).Fatal("Failed to watch directories")
		}
	}

	// Initial pass before any change arrives.
	regenerate(ctx, rootConfig, config)

	presenter.Info("Watching for catalog changes... Press Ctrl+C to stop")
	<-ctx.Done()
}

// debounceChanges collapses rapid bursts of file events into a single
// regeneration, keeping only the last changed path for diagnostics.
func debounceChanges(ctx context.Context, input <-chan string, delay time.Duration, fire func(path string)) {
	var timer *time.Timer
	var lastPath string
	fired := make(chan struct{}, 1)

	for {
		select {
		case path, ok := <-input:
			if !ok {
				return
			}
			lastPath = path
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(delay, func() {
				select {
				case fired <- struct{}{}:
				case <-ctx.Done():
				}
			})
		case <-fired:
			fire(lastPath)
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// regenerate runs one pipeline pass in watch mode. Failures are reported
// and logged but never stop the watch loop.
func regenerate(ctx context.Context, rootConfig *RootConfig, config *WatchConfig) {
	skills, agents, err := resolveEntries(ctx, rootConfig)
	if err != nil {
		presenter.Error(err, "Failed to load manifest")
		logger.G(ctx).WithError(err).Error("Manifest load failed, keeping previous index")
		return
	}

	block := index.Render(skills, agents)

	if !config.Write {
		fmt.Print(block)
		return
	}

	if err := patch.Apply(rootConfig.ReadmePath, block); err != nil {
		presenter.Error(err, "Failed to patch README")
		logger.G(ctx).WithError(err).Error("README patch failed")
		return
	}
	presenter.Success(fmt.Sprintf("Updated skills index in %s", rootConfig.ReadmePath))
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
