package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoo/internal/audio"
	"github.com/vovakirdan/arkanoo/internal/config"
	"github.com/vovakirdan/arkanoo/internal/core"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/level"
	"github.com/vovakirdan/arkanoo/internal/platform/tui"
	"github.com/vovakirdan/arkanoo/internal/registry"
	"github.com/vovakirdan/arkanoo/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPattern    string
	flagEndless    bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing. The mode defaults to the nine-level campaign.

Controls:
  Left/Right, A/D, mouse  - Move paddle
  Space, click            - Launch ball
  F/Up                    - Fire rocket
  P/Esc                   - Pause
  O                       - Settings (from the pause menu)
  E                       - Level editor (from the pause menu)
  R                       - Restart
  Ctrl+S                  - Screenshot
  Q/Ctrl+C                - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arkanoo play
  arkanoo play --endless
  arkanoo play --difficulty hard
  arkanoo play --config ./my-rules.yaml
  arkanoo play --pattern ./castle.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play the endless mode")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagPattern, "pattern", "", "Level 1 layout file (.txt or .yaml)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

// host bundles the services a local game runs with.
type host struct {
	logger   *log.Logger
	store    *storage.Store
	player   *audio.Player
	settings config.Settings
	path     string
	closeLog func()
}

// openHost applies the game flags and opens logging, storage, settings and
// audio. Only invalid flags are fatal; every service degrades on failure.
func openHost() (*host, error) {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	h := &host{path: config.SettingsPath()}
	h.logger, h.closeLog = newFileLogger()

	settings, err := config.LoadSettings(h.path)
	if err != nil {
		h.logger.Warn("could not load settings", "path", h.path, "error", err)
	}
	h.settings = settings

	arkanoo.SetConfigPath(flagConfig)
	arkanoo.SetDifficultyPreset(flagDifficulty)
	arkanoo.SetGravityMode(settings.GravityMode)

	if flagPattern != "" {
		p, patErr := level.LoadPattern(flagPattern)
		if patErr != nil {
			h.closeLog()
			return nil, patErr
		}
		h.logger.Info("custom level 1", "pattern", p.Name, "blocks", p.Count())
		arkanoo.SetPattern(p)
	}

	h.store, err = storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		h.logger.Warn("could not open scores database", "error", err)
		h.store = nil
	}

	h.player = audio.NewPlayer(settings.EffectiveSfxVolume(), settings.SfxMuted || flagMute, h.logger)
	if !flagMute {
		if err := h.player.Init(); err != nil {
			h.logger.Warn("audio disabled", "error", err)
		}
	}

	return h, nil
}

func (h *host) options() tui.Options {
	return tui.Options{
		Store:        h.store,
		Player:       h.player,
		Settings:     h.settings,
		SettingsPath: h.path,
		Logger:       h.logger,
	}
}

func (h *host) Close() {
	h.player.Close()
	if h.store != nil {
		h.store.Close()
	}
	h.closeLog()
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "arkanoo"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagEndless {
		gameID = "arkanoo_endless"
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arkanoo list' to see available modes.")
		os.Exit(1)
	}

	h, err := openHost()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		h.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	h.logger.Info("starting", "mode", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	runErr := tui.Run(game, runtimeConfig(), h.options())

	// Close services before potential exit
	h.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
