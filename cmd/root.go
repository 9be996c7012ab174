package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gocircle/internal/app"
	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/internal/construction"
	"github.com/philipparndt/gocircle/version"
	"github.com/spf13/cobra"
)

var (
	configFile string
	width      int
	height     int
	tolerance  float64
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gocircle",
	Short: "Circle and line segment intersection explorer",
	Long: `gocircle opens a window where one drag draws a circle and a second drag
draws a line segment. The points where the segment crosses the circle are
computed and shown.

Subcommands compute intersections and replay recorded drags without a window.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			construction.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{
			Config:     cfg,
			ConfigFile: configFile,
			Title:      fmt.Sprintf("gocircle %s", version.GetVersion()),
		})
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "TOML config file")
	flags.IntVar(&width, "width", 0, "canvas width in pixels (overrides config)")
	flags.IntVar(&height, "height", 0, "canvas height in pixels (overrides config)")
	flags.Float64Var(&tolerance, "tolerance", 0, "tangency tolerance for the discriminant (overrides config)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log engine transitions to stderr")
}

// loadConfig reads --config and applies the flags the user set
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = tolerance
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
