// arkanoo is a brick breaker for the terminal.
//
// Usage:
//
//	arkanoo list              - List game modes
//	arkanoo play [mode]       - Play a mode (default: arkanoo)
//	arkanoo menu              - Pick a mode interactively
//	arkanoo serve             - Start SSH server for remote play
//	arkanoo scores <mode>     - Show high scores
//	arkanoo levels            - Print or export level layouts
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arkanoo/scores.db)
//	--verbose       - Log debug events to ~/.arkanoo/arkanoo.log
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Registers both game modes
	_ "github.com/vovakirdan/arkanoo/internal/games/arkanoo"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoo",
	Short: "Arkanoo - a brick breaker in your terminal",
	Long: `Arkanoo is a brick breaker played in the terminal: nine handmade
levels, an endless mode with generated layouts, power-ups, rockets,
and a portal that opens when the ball gets fast enough.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Print or export level layouts

Examples:
  arkanoo play
  arkanoo play --endless --difficulty hard
  arkanoo menu
  arkanoo serve --ssh :2222
  arkanoo levels 12`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoo/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug events")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newFileLogger returns a logger writing to ~/.arkanoo/arkanoo.log, since the
// terminal belongs to the game. It falls back to stderr when the file cannot
// be opened. The returned func closes the file.
func newFileLogger() (*log.Logger, func()) {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	opts := log.Options{ReportTimestamp: true, Level: level, Prefix: "arkanoo"}

	home, err := os.UserHomeDir()
	if err == nil {
		dir := filepath.Join(home, ".arkanoo")
		if err = os.MkdirAll(dir, 0o750); err == nil {
			var f *os.File
			f, err = os.OpenFile(filepath.Join(dir, "arkanoo.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				return log.NewWithOptions(f, opts), func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(os.Stderr, opts)
	logger.Warn("logging to stderr", "error", err)
	return logger, func() {}
}

// newStderrLogger returns the logger for commands that keep the terminal.
func newStderrLogger(prefix string) *log.Logger {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          prefix,
	})
}
