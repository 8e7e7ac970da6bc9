package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/proxvid/internal/config"
	"github.com/san-kum/proxvid/internal/logging"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	ffmpegPath string

	cfg    *config.Config
	logger zerolog.Logger

	// video / preview / snapshot
	duration  float64
	nx        int
	ny        int
	videoOut  string
	snapOut   string
	scale     float64
	order     string
	cmapName  string
	figWidth  float64
	figHeight float64
	dpi       int
	preset    string
	frameIdx  int
	maskTol   float64
	showMask  bool

	// threshold
	mode   string
	gamma  float64
	alpha  float64
	beta   float64
	thrOut string

	// error
	plotFrames bool
)

// main registers the proxvid commands and exits with status 1 on failure.
func main() {
	rootCmd := &cobra.Command{
		Use:           "proxvid",
		Short:         "sparse thresholding and matrix-to-video rendering",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for run records")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&ffmpegPath, "ffmpeg", "", "ffmpeg executable path")

	videoCmd := &cobra.Command{
		Use:   "video [matrix.csv]",
		Short: "render matrix columns as an mp4 video",
		Args:  cobra.ExactArgs(1),
		RunE:  runVideo,
	}
	videoCmd.Flags().Float64Var(&duration, "time", 10.0, "video duration in seconds")
	videoCmd.Flags().StringVarP(&videoOut, "out", "o", "", "output name without .mp4 (default: input name)")
	videoCmd.Flags().StringVar(&preset, "preset", "", "use preset video settings")
	addFrameFlags(videoCmd)
	addStyleFlags(videoCmd)

	thresholdCmd := &cobra.Command{
		Use:   "threshold [matrix.csv]",
		Short: "apply hard or soft thresholding",
		Args:  cobra.ExactArgs(1),
		RunE:  runThreshold,
	}
	thresholdCmd.Flags().StringVar(&mode, "mode", "soft", "hard or soft")
	thresholdCmd.Flags().Float64Var(&gamma, "gamma", 0.1, "penalty weight")
	thresholdCmd.Flags().Float64Var(&alpha, "alpha", 1.0, "sparsity weight (scaled variant)")
	thresholdCmd.Flags().Float64Var(&beta, "beta", 0.0, "ridge weight (scaled variant)")
	thresholdCmd.Flags().StringVarP(&thrOut, "out", "o", "", "output csv path")
	_ = thresholdCmd.MarkFlagRequired("out")

	errorCmd := &cobra.Command{
		Use:   "error [actual.csv] [truth.csv]",
		Short: "relative error between two matrices",
		Args:  cobra.ExactArgs(2),
		RunE:  runError,
	}
	errorCmd.Flags().BoolVar(&plotFrames, "plot", false, "plot per-frame error")

	previewCmd := &cobra.Command{
		Use:   "preview [matrix.csv]",
		Short: "show one frame in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&frameIdx, "frame", 0, "frame (column) index")
	previewCmd.Flags().BoolVar(&showMask, "mask", false, "show nonzero pattern instead of colors")
	previewCmd.Flags().Float64Var(&maskTol, "tol", 0, "magnitude treated as zero in --mask")
	addFrameFlags(previewCmd)
	addStyleFlags(previewCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [matrix.csv]",
		Short: "export one frame as png or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&frameIdx, "frame", 0, "frame (column) index")
	snapshotCmd.Flags().StringVarP(&snapOut, "out", "o", "frame.png", "output path (.png or .svg)")
	addFrameFlags(snapshotCmd)
	addStyleFlags(snapshotCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list rendered videos",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list video presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	depsCmd := &cobra.Command{
		Use:   "deps",
		Short: "report external dependencies",
		Args:  cobra.NoArgs,
		RunE:  checkDeps,
	}

	rootCmd.AddCommand(videoCmd, thresholdCmd, errorCmd, previewCmd, snapshotCmd, listCmd, presetsCmd, depsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func addFrameFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&nx, "nx", 0, "frame rows")
	cmd.Flags().IntVar(&ny, "ny", 0, "frame columns")
	_ = cmd.MarkFlagRequired("nx")
	_ = cmd.MarkFlagRequired("ny")
}

func addStyleFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "color range scale")
	cmd.Flags().StringVar(&order, "order", "F", "element order: F (column-major) or C (row-major)")
	cmd.Flags().StringVar(&cmapName, "cmap", "viridis", "colormap")
	cmd.Flags().Float64Var(&figWidth, "fig-width", 0, "frame width in inches")
	cmd.Flags().Float64Var(&figHeight, "fig-height", 0, "frame height in inches")
	cmd.Flags().IntVar(&dpi, "dpi", 0, "frame resolution in dots per inch")
}

// setup loads configuration and builds the logger. CLI flags override the
// config file.
func setup(cmd *cobra.Command) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if ffmpegPath != "" {
		cfg.FFmpeg = ffmpegPath
	}

	l, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger = l
	return nil
}

// videoSettings merges config, preset and explicitly set flags.
func videoSettings(cmd *cobra.Command) (config.VideoConfig, error) {
	v := cfg.Video
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return v, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		v.Apply(*p)
	}

	flags := cmd.Flags()
	if flags.Changed("scale") {
		v.Scale = scale
	}
	if flags.Changed("order") {
		v.Order = order
	}
	if flags.Changed("cmap") {
		v.Colormap = cmapName
	}
	if flags.Changed("fig-width") {
		v.FigWidth = figWidth
	}
	if flags.Changed("fig-height") {
		v.FigHeight = figHeight
	}
	if flags.Changed("dpi") {
		v.DPI = dpi
	}
	return v, nil
}
