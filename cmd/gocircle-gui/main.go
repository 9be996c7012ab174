package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/internal/construction"
	"github.com/philipparndt/gocircle/internal/viewer"
	"github.com/philipparndt/gocircle/version"
	"github.com/spf13/cobra"
)

type App struct {
	window fyne.Window
	canvas *viewer.ConstructionCanvas
	status *StatusInfo
}

// StatusInfo holds one label per status line
type StatusInfo struct {
	circleLabel       *widget.Label
	segmentLabel      *widget.Label
	intersectionLabel *widget.Label
	stateLabel        *widget.Label
}

var configFile string

var rootCmd = &cobra.Command{
	Use:     "gocircle-gui",
	Short:   "Circle and line segment intersection explorer (desktop GUI)",
	Version: version.GetFullVersion(),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(configFile)
		if err != nil {
			return err
		}
		run(cfg)
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "TOML config file")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) {
	a := app.New()
	w := a.NewWindow(fmt.Sprintf("gocircle %s", version.GetVersion()))

	appInstance := &App{window: w}
	appInstance.setupMainUI(cfg)

	w.Resize(fyne.NewSize(float32(cfg.Width)+320, float32(cfg.Height)))
	w.ShowAndRun()
}

func (a *App) setupMainUI(cfg config.Config) {
	a.status = &StatusInfo{
		circleLabel:       widget.NewLabel(""),
		segmentLabel:      widget.NewLabel(""),
		intersectionLabel: widget.NewLabel(""),
		stateLabel:        widget.NewLabel(""),
	}
	a.status.intersectionLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.status.intersectionLabel.Wrapping = fyne.TextWrapWord

	sink := construction.StatusFunc(func(line construction.StatusLine, text string) {
		switch line {
		case construction.StatusCircle:
			a.status.circleLabel.SetText(text)
		case construction.StatusSegment:
			a.status.segmentLabel.SetText(text)
		case construction.StatusIntersection:
			a.status.intersectionLabel.SetText(text)
		}
	})

	a.canvas = viewer.NewConstructionCanvas(cfg, construction.WithStatusSink(sink))
	a.canvas.SetOnChange(func(snap construction.Snapshot) {
		a.updateState(snap.State)
	})
	a.updateState(construction.Idle)

	clearButton := widget.NewButton("Clear", func() {
		a.canvas.Clear()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag from the center to draw the circle\n" +
			"• Drag again to draw the line segment\n" +
			"• Clear starts over",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Construction:"),
		widget.NewSeparator(),
		a.status.stateLabel,
		a.status.circleLabel,
		a.status.segmentLabel,
		a.status.intersectionLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		clearButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.canvas,   // center
	)
	a.window.SetContent(content)
}

func (a *App) updateState(state construction.State) {
	a.status.stateLabel.SetText(fmt.Sprintf("State: %s", state))
}
