package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoo/internal/config"
	"github.com/vovakirdan/arkanoo/internal/core"
	"github.com/vovakirdan/arkanoo/internal/storage"
)

// fakeGame records its inputs and lets tests script its state.
type fakeGame struct {
	resets  int
	steps   int
	last    core.InputFrame
	state   core.GameState
	gravity bool
	speed   float64
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawTextColored(0, 0, "fake", core.ColorRed) }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) GravityMode() bool { return g.gravity }
func (g *fakeGame) MaxSpeed() float64 { return g.speed }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state}
}

func quietOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

func newTestModel(g *fakeGame, opts Options) Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(g, cfg, opts)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(k)
	return next.(Model)
}

func TestModelKeysReachGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, quietOptions())

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)

	if !g.last.Has(core.ActionLaunch) || !g.last.Has(core.ActionLeft) {
		t.Errorf("Expected launch and left, got %v", g.last.Actions)
	}

	// Input is cleared after each tick
	m = tick(t, m)
	if len(g.last.Actions) != 0 {
		t.Errorf("Expected empty frame, got %v", g.last.Actions)
	}
	_ = m
}

func TestModelMousePointer(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, quietOptions())

	next, _ := m.Update(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionMotion})
	m = tick(t, next.(Model))

	if !g.last.HasPointer || g.last.Pointer != 0.5 {
		t.Errorf("Expected pointer 0.5, got %v/%f", g.last.HasPointer, g.last.Pointer)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, quietOptions())
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("Resize should not reset the game, resets=%d", g.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("Screen should follow the window, got %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelHelpFooterTakesARow(t *testing.T) {
	opts := quietOptions()
	opts.ShowHelp = true
	m := newTestModel(&fakeGame{}, opts)

	if m.screen.Height() != 23 {
		t.Errorf("Expected 23 rows for the field, got %d", m.screen.Height())
	}
	view := m.View()
	if !strings.Contains(view, "fake") || !strings.Contains(view, "launch") {
		t.Errorf("View should hold the game and the help footer:\n%s", view)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, quietOptions())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit a standalone game")
	}

	opts := quietOptions()
	opts.Embedded = true
	m = newTestModel(&fakeGame{}, opts)
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(Model).BackToMenu() || next.(Model).IsQuitting() || cmd != nil {
		t.Error("q should return an embedded game to its menu")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{speed: 640}
	opts := quietOptions()
	opts.Store = store
	m := newTestModel(g, opts)

	m = tick(t, m)
	g.state = core.GameState{Score: 420, Level: 5, GameOver: true}
	m = tick(t, m)
	m = tick(t, m)
	m = tick(t, m)

	scores, _ := store.AllScores("fake")
	if len(scores) != 1 {
		t.Fatalf("Expected one saved run, got %d", len(scores))
	}
	if scores[0].Score != 420 || scores[0].Level != 5 || scores[0].MaxSpeed != 640 {
		t.Errorf("Unexpected run: %+v", scores[0])
	}

	// Restart then a second game over saves again
	g.state = core.GameState{Score: 10, Level: 1}
	m = tick(t, m)
	g.state = core.GameState{Score: 90, Level: 2, GameOver: true}
	tick(t, m)

	scores, _ = store.AllScores("fake")
	if len(scores) != 2 {
		t.Errorf("Expected two saved runs, got %d", len(scores))
	}
}

func TestModelPersistsGravityToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	g := &fakeGame{}
	opts := quietOptions()
	opts.Settings = config.DefaultSettings()
	opts.SettingsPath = path
	m := newTestModel(g, opts)

	m = tick(t, m)
	g.gravity = true
	m = tick(t, m)

	saved, err := config.LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if !saved.GravityMode {
		t.Error("Gravity toggle should be persisted")
	}
	if saved.SfxVolume != config.DefaultSettings().SfxVolume {
		t.Errorf("Other settings should be kept, got volume %d", saved.SfxVolume)
	}
	_ = m
}

func TestKeyMapEscapeBacksAndPauses(t *testing.T) {
	frame := core.NewInputFrame()
	quit := DefaultKeyMap().MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame)

	if quit {
		t.Fatal("esc is not a quit key")
	}
	if !frame.Has(core.ActionPause) || !frame.Has(core.ActionBack) {
		t.Errorf("esc should pause and go back, got %v", frame.Actions)
	}
}

func TestKeyMapBindings(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"f", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}, core.ActionFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{"o", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}}, core.ActionSettings},
		{"e", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}, core.ActionEditor},
		{"g", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, core.ActionToggleGravity},
	}

	km := DefaultKeyMap()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			km.MapKeyToFrame(tc.msg, &frame)
			if !frame.Has(tc.want) {
				t.Errorf("Expected %s, got %v", tc.want, frame.Actions)
			}
		})
	}
}

func TestPainterKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.DrawTextColored(0, 1, "ef", core.ColorDefault)

	out := NewPainter(nil).Paint(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("First line lost text: %q", lines[0])
	}
}
