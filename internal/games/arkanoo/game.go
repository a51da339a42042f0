// Package arkanoo wires the brick-breaker simulation into the arcade platform.
// Game is the state machine: it owns one sim.Session, dispatches input per
// mode and only runs the resolver while Playing.
package arkanoo

import (
	"github.com/vovakirdan/arkanoo/internal/config"
	"github.com/vovakirdan/arkanoo/internal/core"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/level"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/sim"
	"github.com/vovakirdan/arkanoo/internal/registry"
)

// Mode is the top-level state of a game.
type Mode int

const (
	ModeSplash          Mode = iota // title card, advances on its own
	ModePaused                      // menu, see MenuPage
	ModePlaying                     // the only mode that advances the session
	ModeGameOver                    // no lives left, waiting for continue
	ModeVictory                     // terminal level cleared, waiting for continue
	ModeLevelTransition             // level cleared, waiting for continue
	ModeLevelEditor                 // layout browser, never touches the session
)

// String returns the mode name used in GameState.Mode.
func (m Mode) String() string {
	switch m {
	case ModeSplash:
		return "splash"
	case ModePaused:
		return "paused"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	case ModeVictory:
		return "victory"
	case ModeLevelTransition:
		return "level_transition"
	case ModeLevelEditor:
		return "level_editor"
	default:
		return "unknown"
	}
}

// MenuPage is the menu shown while paused.
type MenuPage int

const (
	PageMain MenuPage = iota
	PageSettings
)

// Variant selects the campaign or endless rules.
type Variant int

const (
	VariantCampaign Variant = iota // victory after the terminal level
	VariantEndless                 // procedural levels until game over
)

// splashTicks is how long the title card stays up without input.
const splashTicks = 120

// Options set from the command line before a game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	customPattern    *level.Pattern
	gravityMode      bool
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown or empty names keep
// the config file's difficulty.
func SetDifficultyPreset(name string) {
	p, ok := config.ParsePreset(name)
	if !ok || name == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetPattern replaces the layout of level 1. nil restores the built-in one.
func SetPattern(p *level.Pattern) {
	customPattern = p
}

// SetGravityMode sets the initial gravity preference, usually from settings.
func SetGravityMode(on bool) {
	gravityMode = on
}

// Game implements registry.Game for the brick breaker.
type Game struct {
	variant Variant
	mode    Mode
	page    MenuPage
	started bool // a game has been started from the main menu
	timer   int  // ticks spent in the current mode

	cfg     config.Config
	session *sim.Session
	pattern *level.Pattern

	editorLevel   int
	editorPreview []entity.Block
}

// New creates a campaign game.
func New() *Game {
	return &Game{variant: VariantCampaign}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{variant: VariantEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantEndless {
		return "arkanoo_endless"
	}
	return "arkanoo"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantEndless {
		return "Arkanoo (Endless)"
	}
	return "Arkanoo"
}

// Reset loads the config and builds a fresh session behind the splash screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.pattern = customPattern

	g.session = sim.NewSession(cfg, uint64(rc.Seed)) //#nosec G115 -- seed bits are reused as-is
	g.session.GravityMode = cfg.Physics.GravityMode || gravityMode
	g.startLevel(1)

	g.started = false
	g.page = PageMain
	g.editorLevel = 1
	g.editorPreview = nil
	g.setMode(ModeSplash)
}

// Step advances the state machine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.timer++

	var sounds []core.Sound
	switch g.mode {
	case ModeSplash:
		if g.timer >= splashTicks || in.Has(core.ActionConfirm) || in.Has(core.ActionLaunch) {
			g.page = PageMain
			g.setMode(ModePaused)
		}
	case ModePaused:
		g.stepMenu(in)
	case ModePlaying:
		sounds = g.stepPlaying(in)
	case ModeLevelTransition:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionLaunch) {
			g.StartNextLevel()
		}
	case ModeGameOver, ModeVictory:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.Restart()
		}
	case ModeLevelEditor:
		g.stepEditor(in)
	}

	return core.StepResult{State: g.State(), Sounds: sounds}
}

func (g *Game) stepMenu(in core.InputFrame) {
	if g.page == PageSettings {
		switch {
		case in.Has(core.ActionToggleGravity):
			g.session.GravityMode = !g.session.GravityMode
		case in.Has(core.ActionBack), in.Has(core.ActionConfirm):
			g.page = PageMain
		}
		return
	}

	switch {
	case in.Has(core.ActionConfirm):
		if !g.started {
			g.started = true
			g.startLevel(1)
		}
		g.setMode(ModePlaying)
	case in.Has(core.ActionPause):
		g.TogglePause()
	case in.Has(core.ActionSettings):
		g.page = PageSettings
	case in.Has(core.ActionEditor):
		g.openEditor()
	case in.Has(core.ActionRestart) && g.started:
		g.Restart()
	}
}

func (g *Game) stepPlaying(in core.InputFrame) []core.Sound {
	if in.Has(core.ActionPause) {
		g.TogglePause()
		return nil
	}

	s := g.session
	if in.HasPointer {
		s.MovePaddle(in.Pointer)
	}
	if in.Has(core.ActionLeft) {
		s.NudgePaddle(-1)
	}
	if in.Has(core.ActionRight) {
		s.NudgePaddle(1)
	}
	if in.Has(core.ActionLaunch) {
		s.LaunchAttached()
	}
	if in.Has(core.ActionFire) {
		s.FireRocket()
	}

	r := sim.Advance(s)
	s.Compact()

	switch r.Outcome {
	case sim.OutcomeGameOver:
		g.setMode(ModeGameOver)
	case sim.OutcomeLevelComplete:
		if g.variant == VariantCampaign && s.Level >= g.cfg.Gameplay.TerminalLevel {
			g.setMode(ModeVictory)
		} else {
			g.setMode(ModeLevelTransition)
		}
	case sim.OutcomeNone, sim.OutcomeLifeLost:
	}
	return r.Sounds
}

func (g *Game) stepEditor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.browse(g.editorLevel - 1)
	case in.Has(core.ActionRight):
		g.browse(g.editorLevel + 1)
	case in.Has(core.ActionConfirm):
		g.pattern = level.FromBlocks(level.Name(g.editorLevel), g.editorPreview)
		g.setMode(ModePaused)
	case in.Has(core.ActionBack), in.Has(core.ActionPause):
		g.setMode(ModePaused)
	}
}

// TogglePause flips between Playing and Paused. Every other mode is left
// alone, so a finished game cannot be paused.
func (g *Game) TogglePause() {
	switch g.mode {
	case ModePlaying:
		g.page = PageMain
		g.setMode(ModePaused)
	case ModePaused:
		if g.started {
			g.setMode(ModePlaying)
		}
	case ModeSplash, ModeGameOver, ModeVictory, ModeLevelTransition, ModeLevelEditor:
	}
}

// StartNextLevel loads the following level and resumes play.
func (g *Game) StartNextLevel() {
	g.startLevel(g.session.Level + 1)
	g.setMode(ModePlaying)
}

// Restart begins a new game at level 1 without going back through the menu.
func (g *Game) Restart() {
	g.session.Reset()
	g.startLevel(1)
	g.started = true
	g.setMode(ModePlaying)
}

func (g *Game) startLevel(n int) {
	blocks := level.Generate(n)
	if n == 1 && g.pattern != nil && g.pattern.Count() > 0 {
		blocks = g.pattern.Blocks(g.cfg.Gameplay.IceHealth)
	}
	g.session.StartLevel(n, blocks)
}

func (g *Game) openEditor() {
	g.browse(g.editorLevel)
	g.setMode(ModeLevelEditor)
}

func (g *Game) browse(n int) {
	g.editorLevel = max(n, 1)
	g.editorPreview = level.Generate(g.editorLevel)
}

func (g *Game) setMode(m Mode) {
	g.mode = m
	g.timer = 0
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Page returns the menu page shown while paused.
func (g *Game) Page() MenuPage {
	return g.page
}

// Session exposes the simulation state for rendering and tests.
func (g *Game) Session() *sim.Session {
	return g.session
}

// GravityMode reports whether the variant physics mode is on.
func (g *Game) GravityMode() bool {
	return g.session != nil && g.session.GravityMode
}

// SetGravityMode switches gravity on the running session. The config file's
// physics.gravity_mode still forces it on.
func (g *Game) SetGravityMode(on bool) {
	if g.session != nil {
		g.session.GravityMode = on || g.cfg.Physics.GravityMode
	}
}

// MaxSpeed returns the fastest ball speed of the session in px/s.
func (g *Game) MaxSpeed() float64 {
	if g.session == nil {
		return 0
	}
	return g.session.MaxSpeed
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	if s == nil {
		return core.GameState{Mode: g.mode.String()}
	}
	return core.GameState{
		Score:    int(s.Score),
		Level:    s.Level,
		Lives:    s.Lives,
		Mode:     g.mode.String(),
		GameOver: g.mode == ModeGameOver || g.mode == ModeVictory,
		Won:      g.mode == ModeVictory,
		Paused:   g.mode == ModePaused,
	}
}

func init() {
	registry.Register("arkanoo", func() registry.Game {
		return New()
	})
	registry.Register("arkanoo_endless", func() registry.Game {
		return NewEndless()
	})
}
