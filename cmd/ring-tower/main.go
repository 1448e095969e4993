package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ring-tower/audio"
	"github.com/lixenwraith/ring-tower/config"
	"github.com/lixenwraith/ring-tower/game"
)

// options holds command line overrides, applied on top of the loaded config
type options struct {
	configPath string
	rings      int
	debug      bool
	noAudio    bool
	frames     int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "ring-tower",
		Short:        "Drag rings between three poles until the tower is rebuilt",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.IntVar(&opts.rings, "rings", 0, "number of rings (1-8)")
	flags.BoolVar(&opts.debug, "debug", false, "write logs/ring-tower.log and enable the axis overlay")
	flags.BoolVar(&opts.noAudio, "no-audio", false, "disable sound cues")
	flags.IntVar(&opts.frames, "frames", 0, "frames per ring transition, 0 places rings instantly")

	root.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Play in the terminal (default)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runPlay(cmd, opts)
			},
		},
		&cobra.Command{
			Use:   "solve",
			Short: "Print the optimal solution and verify it against the puzzle rules",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := loadConfig(cmd, opts)
				if err != nil {
					return err
				}
				return runSolve(cmd.OutOrStdout(), cfg)
			},
		},
	)
	return root
}

// loadConfig merges file and environment config with explicitly set flags
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("rings") {
		cfg.Rings = opts.rings
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("no-audio") {
		cfg.Audio = !opts.noAudio
	}
	if flags.Changed("frames") {
		cfg.AnimationFrames = opts.frames
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(cfg.LogDir, cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	crash := crashHandler(screen)
	// Panic Recovery: setup code outside the game loop
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	sound := audio.NewSoundManager(logger.With("component", "audio"))
	if cfg.Audio {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
		defer sound.Cleanup()
	}

	g, err := game.New(cfg, screen, sound, logger.With("component", "game"))
	if err != nil {
		return err
	}
	g.SetCrashHandler(crash)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return g.Run(ctx)
}

// crashHandler restores the terminal and prints the panic with its stack
func crashHandler(screen tcell.Screen) func(any) {
	return func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mRING TOWER CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}
