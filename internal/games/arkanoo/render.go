package arkanoo

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arkanoo/internal/core"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/level"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/sim"
)

// Visual characters for rendering
const (
	PaddleChar   = '='
	BallChar     = '●'
	TrailChar    = '·'
	RocketChar   = '^'
	ParticleChar = '*'
	PenguinChar  = 'P'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
	PortalChar   = '@'
)

const (
	minScreenW = 40
	minScreenH = 16
	hudRows    = 1
)

var titleArt = []string{
	"  _   ___ _  __  _   _  _  ___   ___  ",
	" /_\\ | _ \\ |/ / /_\\ | \\| |/ _ \\ / _ \\ ",
	"/ _ \\|   / ' < / _ \\| .` | (_) | (_) |",
	"/_/ \\_\\_|_\\_|\\_/_/ \\_\\_|\\_|\\___/ \\___/ ",
}

// viewport maps field pixels onto terminal cells below the HUD.
type viewport struct {
	x0, y0 int
	w, h   int
}

func newViewport(dst *core.Screen) viewport {
	return viewport{x0: 0, y0: hudRows, w: dst.Width(), h: dst.Height() - hudRows}
}

func (v viewport) col(x float64) int {
	return v.x0 + int(math.Floor(x*float64(v.w)/entity.FieldWidth))
}

func (v viewport) row(y float64) int {
	return v.y0 + int(math.Floor(y*float64(v.h)/entity.FieldHeight))
}

// rect converts a field box to a cell rectangle at least one cell large.
func (v viewport) rect(b core.Box) core.Rect {
	c0, r0 := v.col(b.X), v.row(b.Y)
	c1, r1 := v.col(b.Right()-1), v.row(b.Bottom()-1)
	return core.NewRect(c0, r0, core.Max(c1-c0+1, 1), core.Max(r1-r0+1, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.session == nil {
		return
	}

	v := newViewport(dst)
	switch g.mode {
	case ModeSplash:
		g.renderSplash(dst)
		return
	case ModeLevelEditor:
		g.renderEditor(dst, v)
		return
	case ModePaused, ModePlaying, ModeGameOver, ModeVictory, ModeLevelTransition:
	}

	g.renderField(dst, v)
	g.renderHUD(dst, v)
	g.renderOverlay(dst)
}

func (g *Game) renderField(dst *core.Screen, v viewport) {
	s := g.session

	g.renderPortal(dst, v)
	for _, b := range s.Blocks {
		drawBlock(dst, v, b)
	}
	for _, p := range s.Particles {
		if p.Alive() {
			ch := ParticleChar
			if p.Fade() < 0.3 {
				ch = '.'
			}
			dst.SetColored(v.col(p.X), v.row(p.Y), ch, core.PaletteColor(p.Color))
		}
	}
	for _, pu := range s.PowerUps {
		if pu.Active {
			r := v.rect(pu.Bounds())
			dst.SetColored(r.X+r.W/2, r.Y+r.H/2, pu.Kind.Glyph(), core.ColorBrightGreen)
		}
	}
	for _, p := range s.Projectiles {
		if p.Active {
			cx, cy := p.Center()
			dst.SetColored(v.col(cx), v.row(cy), RocketChar, core.ColorBrightRed)
		}
	}
	for _, b := range s.Balls {
		if !b.Active {
			continue
		}
		for _, pt := range b.Trail {
			dst.SetColored(v.col(pt.X), v.row(pt.Y), TrailChar, core.ColorGray)
		}
		cx, cy := b.Center()
		dst.SetColored(v.col(cx), v.row(cy), BallChar, core.ColorBrightWhite)
	}

	paddle := s.Paddle
	color := core.ColorWhite
	switch {
	case paddle.Ghost():
		color = core.ColorBrightMagenta
	case paddle.SpinIntensity > 0.5:
		color = core.ColorBrightYellow
	case paddle.Width > entity.PaddleWidth:
		color = core.ColorBrightCyan
	}
	pr := v.rect(paddle.Bounds())
	dst.DrawHLine(pr.X, pr.Y, pr.W, PaddleChar, color)

	if s.Thief != nil && !s.Thief.Done() {
		col, row := v.col(s.Thief.X), v.row(s.Thief.Y)
		dst.SetColored(col, row, PenguinChar, core.ColorBrightWhite)
		if s.Thief.HoldingHeart() {
			dst.SetColored(col+1, row, HeartFull, core.ColorBrightRed)
		}
	}
}

func drawBlock(dst *core.Screen, v viewport, b *entity.Block) {
	if !b.Active {
		return
	}
	glyph, color := blockStyle(b)
	dst.DrawRect(v.rect(b.Bounds()), glyph, color)
}

func blockStyle(b *entity.Block) (rune, core.Color) {
	switch b.Kind {
	case entity.KindIce:
		if b.Health < b.MaxHealth {
			return '░', core.ColorBrightCyan
		}
		return '▒', core.ColorBrightCyan
	case entity.KindExplosive:
		return '▓', core.ColorBrightRed
	case entity.KindIndestructible:
		return '█', core.ColorGray
	case entity.KindNormal:
		return '█', core.PaletteColor(b.Color)
	default:
		return '█', core.ColorDefault
	}
}

// renderPortal draws the vortex ring for the current portal stage.
func (g *Game) renderPortal(dst *core.Screen, v viewport) {
	p := g.cfg.Portal
	timer := float64(g.session.Portal.Timer)
	radius := p.OrbitRadius

	switch g.session.PortalStage() {
	case sim.PortalClosed:
		return
	case sim.PortalPulling, sim.PortalOpen:
	case sim.PortalCollapse:
		span := float64(p.CollapseEnd - p.HoldEnd)
		radius *= 1 - (timer-float64(p.HoldEnd))/span
	case sim.PortalFlash:
		for row := v.y0; row < v.y0+v.h; row++ {
			dst.DrawHLine(v.x0, row, v.w, '░', core.ColorBrightWhite)
		}
		return
	case sim.PortalFade:
		radius = p.OrbitRadius * (timer - float64(p.FlashEnd)) / float64(p.FadeEnd-p.FlashEnd)
	}

	cx, cy := entity.FieldWidth/2.0, entity.FieldHeight/2.0
	const steps = 48
	for i := range steps {
		a := g.session.Portal.Angle + 2*math.Pi*float64(i)/steps
		x := cx + math.Cos(a)*radius
		y := cy + math.Sin(a)*radius
		dst.SetColored(v.col(x), v.row(y), PortalChar, core.ColorBrightMagenta)
	}
}

// renderHUD draws score and level on the left, effects in the middle and
// hearts where HeartPosition puts them.
func (g *Game) renderHUD(dst *core.Screen, v viewport) {
	s := g.session

	left := fmt.Sprintf("Score: %d  Level: %d", s.Score, s.Level)
	if g.variant == VariantCampaign {
		left = fmt.Sprintf("Score: %d  Level: %d/%d", s.Score, s.Level, g.cfg.Gameplay.TerminalLevel)
	}
	dst.DrawText(1, 0, left)

	if effects := g.effectsString(); effects != "" {
		dst.DrawTextCenteredColored(0, effects, core.ColorBrightGreen)
	}

	for i := range g.cfg.Gameplay.MaxLives {
		if i == s.StolenLife && s.Thief != nil && s.Thief.HoldingHeart() {
			continue
		}
		x, _ := sim.HeartPosition(i)
		glyph, color := HeartEmpty, core.ColorGray
		if i < s.Lives || i == s.StolenLife {
			glyph, color = HeartFull, core.ColorBrightRed
		}
		dst.SetColored(v.col(x), 0, glyph, color)
	}
}

func (g *Game) effectsString() string {
	p := g.session.Paddle
	out := ""
	add := func(part string) {
		if out != "" {
			out += " "
		}
		out += part
	}
	if p.RocketAmmo > 0 {
		add(fmt.Sprintf("R×%d", p.RocketAmmo))
	}
	if p.GhostTimer > 0 {
		add(fmt.Sprintf("Ghost(%d)", p.GhostTimer/entity.TicksPerSecond))
	}
	if p.LongTimer > 0 {
		add(fmt.Sprintf("Long(%d)", p.LongTimer/entity.TicksPerSecond))
	}
	if g.session.GravityMode {
		add("Gravity")
	}
	return out
}

// renderOverlay draws the menu or message box for the current mode.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.session

	switch g.mode {
	case ModePlaying:
		for _, b := range s.Balls {
			if b.Active && b.Attached {
				dst.DrawTextCenteredColored(dst.Height()-1, "SPACE to launch", core.ColorGray)
				break
			}
		}
	case ModePaused:
		if g.page == PageSettings {
			gravity := "off"
			if s.GravityMode {
				gravity = "on"
			}
			drawPanel(dst, "SETTINGS",
				fmt.Sprintf("G  gravity mode: %s", gravity),
				"B  back")
			return
		}
		first := "Enter  start"
		if g.started {
			first = "Enter  resume"
		}
		lines := []string{first, "O  settings", "E  level editor"}
		if g.started {
			lines = append(lines, "R  restart")
		}
		lines = append(lines, "Q  quit")
		drawPanel(dst, g.Title(), lines...)
	case ModeGameOver:
		drawPanel(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Enter to restart", s.Score))
	case ModeVictory:
		drawPanel(dst, "VICTORY!", fmt.Sprintf("Final Score: %d  |  Enter to restart", s.Score))
	case ModeLevelTransition:
		drawPanel(dst, fmt.Sprintf("LEVEL %d CLEAR", s.Level),
			fmt.Sprintf("Next: %s", level.Name(s.Level+1)),
			"Enter to continue")
	case ModeSplash, ModeLevelEditor:
	}
}

func (g *Game) renderSplash(dst *core.Screen) {
	top := dst.Height()/2 - len(titleArt)
	for i, line := range titleArt {
		dst.DrawTextCenteredColored(top+i, line, core.PaletteColor(i))
	}
	if (g.timer/30)%2 == 0 {
		dst.DrawTextCentered(top+len(titleArt)+2, "press Enter")
	}
}

func (g *Game) renderEditor(dst *core.Screen, v viewport) {
	n := g.editorLevel
	header := fmt.Sprintf("Level %d: %s (%d blocks)", n, level.Name(n), len(g.editorPreview))
	dst.DrawTextColored(1, 0, header, core.ColorBrightWhite)

	for i := range g.editorPreview {
		drawBlock(dst, v, &g.editorPreview[i])
	}
	dst.DrawTextCenteredColored(dst.Height()-1, "←/→ browse  Enter select  B back", core.ColorGray)
}

// drawPanel draws a centered message box with a title and lines below it.
func drawPanel(dst *core.Screen, title string, lines ...string) {
	w := runeLen(title)
	for _, l := range lines {
		w = core.Max(w, runeLen(l))
	}
	boxW := w + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-runeLen(title))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+3+i, l)
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}
