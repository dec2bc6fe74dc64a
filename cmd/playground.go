package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vimkit/internal/config"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/playground"
	"github.com/zjrosen/vimkit/internal/watcher"
)

var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Interactive playground for the vim input widget",
	Long:  `Launch an interactive playground to try vim keybindings and modal text editing.`,
	RunE:  runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

func runPlayground(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cleanup, err := initLogging(); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	} else if cleanup != nil {
		defer cleanup()
	}

	// Watch the loaded config file so edits apply without restarting.
	var reloads <-chan struct{}
	var w *watcher.Watcher
	if path := viper.ConfigFileUsed(); path != "" {
		var err error
		w, err = watcher.New(watcher.DefaultConfig(path))
		if err != nil {
			log.ErrorErr(log.CatWatcher, "Failed to create config watcher", err)
		} else if ch, startErr := w.Start(); startErr != nil {
			log.ErrorErr(log.CatWatcher, "Failed to start config watcher", startErr)
			_ = w.Stop()
			w = nil
		} else {
			reloads = ch
		}
	}

	model := playground.New(cfg, reloads, loadConfig)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()

	if w != nil {
		if stopErr := w.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}

	if err != nil {
		return fmt.Errorf("running playground: %w", err)
	}
	return nil
}

// initLogging enables file logging when --debug or VIMKIT_DEBUG is set.
// Returns a nil cleanup when logging stays off.
func initLogging() (func(), error) {
	if !debugMode && os.Getenv("VIMKIT_DEBUG") == "" {
		return nil, nil
	}

	path := cfg.Log.Path
	if path == "" {
		path = config.DefaultLogPath()
	}
	if path == "" {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	cleanup, err := log.Init(path)
	if err != nil {
		return nil, err
	}

	if debugMode {
		log.SetMinLevel(log.LevelDebug)
	} else {
		log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
	}
	log.Info(log.CatConfig, "Logging initialized", "path", path, "level", cfg.Log.Level)
	return cleanup, nil
}
