package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/internal/construction"
	"github.com/philipparndt/gocircle/internal/raster"
	"github.com/philipparndt/gocircle/internal/script"
	"github.com/philipparndt/gocircle/pkg/analysis"
	"github.com/philipparndt/gocircle/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	replayPNG   string
	replayWatch bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.toml>",
	Short: "Replay a recorded pointer script without a window",
	Long: `Feed the down, move and up events of a TOML script to a new construction
and print the resulting status lines. With --png the final construction is
rendered to an image. With --watch the script is replayed whenever it is
saved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := replayScript(args[0], cfg, replayPNG, out); err != nil {
			if !replayWatch {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		if !replayWatch {
			return nil
		}
		return watchScript(args[0], cfg, replayPNG, cmd)
	},
}

func init() {
	replayCmd.Flags().StringVarP(&replayPNG, "png", "o", "", "write the final construction to this PNG file")
	replayCmd.Flags().BoolVarP(&replayWatch, "watch", "w", false, "replay again whenever the script changes")
	rootCmd.AddCommand(replayCmd)
}

// replayScript runs one script through a new engine and reports the result
func replayScript(path string, cfg config.Config, pngPath string, out io.Writer) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}

	w, h := s.Size(float64(cfg.Width), float64(cfg.Height))
	board := &construction.StatusBoard{}
	engine := construction.New(w, h,
		construction.WithTolerance(cfg.Tolerance),
		construction.WithStatusSink(board),
	)
	res := script.Play(engine, s.Events)

	name := s.Name
	if name == "" {
		name = path
	}
	fmt.Fprintf(out, "%s: %d events, %d redraws, state %s\n", name, len(s.Events), res.Redraws, res.Snapshot.State)
	for _, line := range board.Lines() {
		fmt.Fprintf(out, "  %s\n", line)
	}
	if snap := res.Snapshot; snap.Circle != nil && snap.Segment != nil {
		fmt.Fprintln(out, "Measurements:")
		for _, line := range analysis.AnalyzeConstruction(*snap.Circle, *snap.Segment, snap.Intersections).Lines() {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}

	if pngPath == "" {
		return nil
	}
	img, err := raster.Render(res.Snapshot, board.Lines(), raster.StyleFromConfig(cfg), int(math.Round(w)), int(math.Round(h)))
	if err != nil {
		return err
	}
	if err := raster.SavePNG(pngPath, img); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", pngPath)
	return nil
}

// watchScript replays path on every change until interrupted
func watchScript(path string, cfg config.Config, pngPath string, cmd *cobra.Command) error {
	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	changed := make(chan string, 1)
	if err := fw.Watch([]string{path}, func(file string) {
		select {
		case changed <- file:
		default:
		}
	}); err != nil {
		return err
	}
	fw.OnError(func(err error) {
		fmt.Fprintf(errOut, "Watcher error: %v\n", err)
	})
	fw.Start()
	fmt.Fprintf(out, "Watching %s for changes (Ctrl+C to stop)\n", path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case <-sig:
			return nil
		case file := <-changed:
			fmt.Fprintf(out, "\nFile changed: %s\n", file)
			if err := replayScript(path, cfg, pngPath, out); err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
			}
		}
	}
}
