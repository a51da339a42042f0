package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoo/internal/audio"
	"github.com/vovakirdan/arkanoo/internal/config"
	"github.com/vovakirdan/arkanoo/internal/core"
	"github.com/vovakirdan/arkanoo/internal/registry"
	"github.com/vovakirdan/arkanoo/internal/storage"
)

// helpRows is the height of the key help footer.
const helpRows = 1

// Options carries the host services a game model talks to. Every field is
// optional.
type Options struct {
	Store        *storage.Store
	Player       *audio.Player
	Settings     config.Settings
	SettingsPath string // where Settings are persisted, empty to never save
	Logger       *log.Logger
	Renderer     *lipgloss.Renderer // per-client renderer for SSH sessions
	ShowHelp     bool
	Embedded     bool // quit hands control back to a parent model
}

// gravityReporter is implemented by games with a persisted gravity setting.
type gravityReporter interface {
	GravityMode() bool
}

// gravitySetter is implemented by games that accept the saved gravity setting.
type gravitySetter interface {
	SetGravityMode(on bool)
}

// speedReporter is implemented by games that track their top ball speed.
type speedReporter interface {
	MaxSpeed() float64
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	painter    *Painter
	opts       Options
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current game over

	gravity      bool
	gravityKnown bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	m := Model{
		game:       game,
		painter:    NewPainter(opts.Renderer),
		opts:       opts,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.fieldHeight(cfg.ScreenH))
	return m
}

// fieldHeight is the screen height left for the game.
func (m Model) fieldHeight(h int) int {
	if m.opts.ShowHelp {
		return max(h-helpRows, 1)
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if gs, ok := m.game.(gravitySetter); ok && m.opts.SettingsPath != "" {
		gs.SetGravityMode(m.opts.Settings.GravityMode)
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, m.screen.Width(), &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize follows the terminal size. The session keeps running: the
// field is drawn relative to the screen, so nothing in it depends on size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.fieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.opts.Player != nil {
		m.opts.Player.Play(result.Sounds)
	}
	m.saveRun()
	m.syncSettings()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished game once per game over. A restart clears the
// flag again.
func (m *Model) saveRun() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
		Won:    m.gameState.Won,
	}
	if sr, ok := m.game.(speedReporter); ok {
		run.MaxSpeed = sr.MaxSpeed()
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save score", "game", run.GameID, "error", err)
		return
	}
	m.opts.Logger.Info("run saved", "game", run.GameID, "score", run.Score, "level", run.Level)
}

// syncSettings persists the gravity toggle when the player flips it.
func (m *Model) syncSettings() {
	gr, ok := m.game.(gravityReporter)
	if !ok {
		return
	}
	on := gr.GravityMode()
	if !m.gravityKnown {
		m.gravity, m.gravityKnown = on, true
		return
	}
	if on == m.gravity {
		return
	}
	m.gravity = on
	m.opts.Settings.GravityMode = on

	if m.opts.SettingsPath == "" {
		return
	}
	if err := config.SaveSettings(m.opts.SettingsPath, m.opts.Settings); err != nil {
		m.opts.Logger.Warn("could not save settings", "error", err)
		return
	}
	m.opts.Logger.Debug("settings saved", "gravity_mode", on)
}

// saveScreenshot writes the current screen to ~/.arkanoo/screenshots.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arkanoo", "screenshots")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("cannot write screenshot: %w", err)
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := m.painter.Paint(m.screen)
	if m.opts.ShowHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// IsQuitting reports whether the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether an embedded game was left with the quit key.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Settings returns the settings as last persisted by this model.
func (m Model) Settings() config.Settings {
	return m.opts.Settings
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the pointer
	)

	_, err := p.Run()
	return err
}
