// memory is a card matching game.
//
// Usage:
//
//	memory [flags]
//
// Flags:
//
//	--config <path>     - Config file (default: ~/.memory/config.yaml, ./configs/memory.yaml)
//	--seed <value>      - RNG seed (0 = random based on time)
//	--scale <n>         - Window scale
//	--log-level <lvl>   - debug, info, warn or error
//	--pprof             - Serve pprof on localhost:6060
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"github.com/spf13/cobra"

	"memory/config"
	"memory/game"
	"memory/misc"
)

var (
	ErrLogger  = misc.ErrLogger
	WarnLogger = misc.WarnLogger
	InfoLogger = misc.InfoLogger
)

var (
	flagConfig   string
	flagSeed     uint64
	flagScale    int
	flagLogLevel string
	flagPProf    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - find the pairs before the cards move",
	Long: `Memory is a card matching game.

Flip two cards, keep them if they match. Between turns cards swap
places, and from round 3 on whole groups of them get shuffled.`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale (0 = from config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagPProf, "pprof", false, "Enable pprof on localhost:6060")
}

// loadConfig loads config file and applies command line flags over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("scale") {
		cfg.Window.Scale = flagScale
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := misc.SetLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	table, err := game.ColorTableFromStrings(game.DefaultColorTable(), cfg.Colors)
	if err != nil {
		return fmt.Errorf("bad colors in config: %w", err)
	}
	game.ColorTable = table

	if flagPProf {
		go func() {
			InfoLogger.Info("initializing pprof")
			InfoLogger.Info(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	InfoLogger.Info("starting", "seed", seed)

	InitClipboardManager()

	app := NewApp(cfg, seed)

	eb.SetVsyncEnabled(cfg.Window.VSync)
	eb.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle(cfg.Window.Title)

	if err := eb.RunGame(app); err != nil {
		return fmt.Errorf("game exited: %w", err)
	}

	return nil
}
