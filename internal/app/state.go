package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/internal/construction"
	"github.com/philipparndt/gocircle/pkg/watcher"
)

// SessionState holds the construction engine and what it has published
type SessionState struct {
	engine  *construction.Engine
	status  *construction.StatusBoard
	redraws int // redraw requests since the session started
}

// ViewSettings holds display toggles
type ViewSettings struct {
	config     config.Config
	palette    config.Palette
	showAxes   bool
	showLabels bool
	showHelp   bool
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	dragging     bool // left button went down inside the window
}

// WindowState tracks the drawable size forwarded to the engine
type WindowState struct {
	width  int32
	height int32
}

// FileWatchState holds config file watching and reload state
type FileWatchState struct {
	configFile  string
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // set from the watcher goroutine
}

// UIState holds UI-related state
type UIState struct {
	font rl.Font
}
