// pong is a two-player Pong clone.
//
// Usage:
//
//	pong                 - Play (left paddle W/S, right paddle Up/Down)
//	pong backends        - List the front ends compiled into this binary
//	pong config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Use a specific config file
//	--backend <name>     - Front end: tui (default), sdl, ebiten
//	--assets <dir>       - Asset directory (fonts are read from <dir>/fonts)
//	--font <name>        - Score font: gomono (builtin) or a .ttf under assets
//	--fps <rate>         - Frame cap (0 = uncapped)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-clone/internal/platform"

	// Import front ends to register them
	_ "github.com/vovakirdan/pong-clone/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagBackend  string
	flagAssets   string
	flagFont     string
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pong",
		})

		var initErr *platform.InitError
		if errors.As(err, &initErr) {
			logger.Error("startup failed", "stage", initErr.Stage, "error", initErr.Err)
		} else {
			logger.Error(err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong Clone - two players, one keyboard",
	Long: `Pong Clone is a minimal two-player Pong game.

Controls:
  W / S      - Left paddle up / down
  Up / Down  - Right paddle up / down
  R          - Restart (scores back to 0 : 0)
  Q / Esc    - Quit (terminal); close the window for sdl and ebiten

The default front end runs in the terminal. Native windows are available
when the binary is built with -tags sdl or -tags ebiten.

Examples:
  pong
  pong --backend sdl --font LiberationMono-Regular --assets ./assets
  pong --fps 60 --log-level debug
  pong config > ~/.pong/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Front end (see 'pong backends')")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory")
	rootCmd.PersistentFlags().StringVar(&flagFont, "font", "", "Score font name")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame cap (0 = uncapped)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
