package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/internal/construction"
	"github.com/philipparndt/gocircle/internal/overlay"
)

var overlayRenderer = overlay.NewRenderer()

type App struct {
	Session     SessionState
	View        ViewSettings
	Interaction InteractionState
	Window      WindowState
	FileWatch   FileWatchState
	UI          UIState
}

// Options configures the viewer
type Options struct {
	Config     config.Config
	ConfigFile string // watched and reloaded when set
	Title      string
}

// Run opens the viewer window and blocks until it is closed
func Run(opts Options) error {
	if err := opts.Config.Validate(); err != nil {
		return err
	}
	title := opts.Title
	if title == "" {
		title = "gocircle"
	}

	app := &App{
		View: ViewSettings{
			config:     opts.Config,
			palette:    opts.Config.Palette(),
			showAxes:   true,
			showLabels: true,
			showHelp:   true,
		},
		Window: WindowState{
			width:  int32(opts.Config.Width),
			height: int32(opts.Config.Height),
		},
		FileWatch: FileWatchState{configFile: opts.ConfigFile},
	}
	app.newSession()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(app.Window.width, app.Window.height, title)
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	if app.FileWatch.configFile != "" {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Config reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	app.UI.font = rl.GetFontDefault()

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		if app.FileWatch.needsReload.CompareAndSwap(true, false) {
			app.reloadConfig()
		}

		app.updateWindowSize()
		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(app.View.palette.Background)

		ctx := app.renderContext()
		overlayRenderer.DrawAxes(ctx)
		overlayRenderer.DrawConstruction(ctx)
		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}

// newSession replaces the engine with a fresh one using the current config
func (app *App) newSession() {
	board := &construction.StatusBoard{}
	app.Session = SessionState{status: board}

	sink := construction.StatusFunc(func(line construction.StatusLine, text string) {
		board.SetStatus(line, text)
		if text != "" {
			fmt.Println(text)
		}
	})
	redraw := construction.RedrawFunc(func() {
		app.Session.redraws++
	})

	app.Session.engine = construction.New(
		float64(app.Window.width), float64(app.Window.height),
		construction.WithTolerance(app.View.config.Tolerance),
		construction.WithStatusSink(sink),
		construction.WithRedrawer(redraw),
	)
}

func (app *App) renderContext() overlay.RenderContext {
	return overlay.RenderContext{
		Snapshot:       app.Session.engine.Snapshot(),
		Viewport:       app.Session.engine.Viewport(),
		Font:           app.UI.font,
		Palette:        app.View.palette,
		CircleSegments: app.View.config.CircleSegments,
		AxesLength:     app.View.config.AxesLength,
		ShowAxes:       app.View.showAxes,
		ShowLabels:     app.View.showLabels,
		Mouse:          app.Interaction.lastMousePos,
	}
}
