package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/pkg/watcher"
)

// setupFileWatcher watches the config file and flags a reload on change
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		fmt.Printf("\nConfig changed: %s\n", changedFile)
		app.FileWatch.needsReload.Store(true)
	}
	if err := fw.Watch([]string{app.FileWatch.configFile}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}
	fw.OnError(func(err error) {
		fmt.Printf("Watcher error: %v\n", err)
	})
	fw.Start()

	fmt.Printf("Watching config for changes: %s\n", app.FileWatch.configFile)
	app.FileWatch.fileWatcher = fw
	return nil
}

// reloadConfig applies the config file again. Style changes apply at once;
// a new tolerance starts a new session.
func (app *App) reloadConfig() {
	cfg, err := config.Load(app.FileWatch.configFile)
	if err != nil {
		fmt.Printf("Error reloading config: %v\n", err)
		return
	}

	toleranceChanged := cfg.Tolerance != app.View.config.Tolerance
	app.View.config = cfg
	app.View.palette = cfg.Palette()

	if toleranceChanged {
		fmt.Printf("Tolerance changed to %g, starting a new session\n", cfg.Tolerance)
		app.newSession()
	}
}
