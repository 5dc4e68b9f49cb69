// Package recall provides the Pattern Recall memory game: a colored
// pattern flashes on the board, then the player repaints it from
// memory. Rounds grow the pattern until a mistake ends the run.
package recall

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arc-studio/internal/config"
	platformcore "github.com/vovakirdan/arc-studio/internal/core"
	"github.com/vovakirdan/arc-studio/internal/grid"
	"github.com/vovakirdan/arc-studio/internal/registry"
)

// Phase tracks where the current round is.
type Phase int

const (
	// PhaseReveal shows the pattern on the board.
	PhaseReveal Phase = iota
	// PhaseGrace blanks the board briefly before input opens.
	PhaseGrace
	// PhaseAnswer takes the player's reproduction.
	PhaseAnswer
)

// Package-level variables for configuration
var selectedConfig *config.RecallConfig

// SetConfig overrides the game configuration for the next game.
func SetConfig(cfg config.RecallConfig) {
	selectedConfig = &cfg
}

func init() {
	registry.Register("recall", func() registry.Game {
		return New()
	})
}

// Game implements the Pattern Recall game.
type Game struct {
	rng  *rand.Rand
	cfg  config.RecallConfig
	diff *config.DifficultyManager

	pattern *grid.Grid
	answer  *grid.Grid
	phase   Phase
	timer   int // Ticks left in the current timed phase

	cursorX int
	cursorY int
	round   int

	screenW int
	screenH int

	tick     uint64
	score    int
	gameOver bool
	won      bool
	paused   bool
}

// New creates a new Pattern Recall game.
func New() *Game {
	return &Game{
		cfg: config.DefaultRecallConfig(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "recall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pattern Recall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.round = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	if selectedConfig != nil {
		g.cfg = *selectedConfig
	}
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	g.startRound()
}

// startRound generates the next pattern and begins the reveal.
func (g *Game) startRound() {
	g.round++
	pattern, err := grid.New(g.cfg.Board.Width, g.cfg.Board.Height, 0)
	if err != nil {
		g.gameOver = true
		return
	}

	colors := g.diff.ColorCount(g.cfg.Sequence.Colors, 10, g.round-1, int(g.tick))
	cells := g.cfg.Sequence.StartCells + (g.round-1)*g.cfg.Sequence.Growth
	area := g.cfg.Board.Width * g.cfg.Board.Height
	if cells > area {
		cells = area
	}

	// Scatter lit cells without stacking
	for placed := 0; placed < cells; {
		x := g.rng.Intn(g.cfg.Board.Width)
		y := g.rng.Intn(g.cfg.Board.Height)
		if v, _ := pattern.Get(x, y); v != 0 {
			continue
		}
		// Colors 1..colors-1; zero stays the background
		_ = pattern.Set(x, y, 1+g.rng.Intn(colors-1))
		placed++
	}

	g.pattern = pattern
	g.answer = nil
	g.phase = PhaseReveal
	g.timer = g.diff.RevealTicks(g.cfg.Timing.RevealTicks, g.round-1, int(g.tick))
	g.cursorX = 0
	g.cursorY = 0
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionRestart) && g.gameOver {
		g.Reset(platformcore.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.pattern == nil {
		return platformcore.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseReveal:
		g.timer--
		if g.timer <= 0 {
			g.phase = PhaseGrace
			g.timer = g.cfg.Timing.GraceTicks
		}
	case PhaseGrace:
		g.timer--
		if g.timer <= 0 {
			g.phase = PhaseAnswer
			g.answer = g.pattern.Clone()
			// The answer starts from a blank board, not the pattern
			_ = g.answer.Fill(0)
		}
	case PhaseAnswer:
		g.stepAnswer(input)
	}

	return platformcore.StepResult{State: g.State()}
}

// stepAnswer handles cursor movement, painting, and submission.
func (g *Game) stepAnswer(input platformcore.InputFrame) {
	if input.Has(platformcore.ActionLeft) {
		g.cursorX = platformcore.Clamp(g.cursorX-1, 0, g.answer.Width()-1)
	}
	if input.Has(platformcore.ActionRight) {
		g.cursorX = platformcore.Clamp(g.cursorX+1, 0, g.answer.Width()-1)
	}
	if input.Has(platformcore.ActionUp) {
		g.cursorY = platformcore.Clamp(g.cursorY-1, 0, g.answer.Height()-1)
	}
	if input.Has(platformcore.ActionDown) {
		g.cursorY = platformcore.Clamp(g.cursorY+1, 0, g.answer.Height()-1)
	}

	if input.Has(platformcore.ActionApply) {
		g.cycleCell()
	}

	if input.Has(platformcore.ActionConfirm) {
		g.submit()
	}
}

// cycleCell advances the cell under the cursor through the colors in
// play, wrapping back to the background.
func (g *Game) cycleCell() {
	colors := g.diff.ColorCount(g.cfg.Sequence.Colors, 10, g.round-1, int(g.tick))
	v, err := g.answer.Get(g.cursorX, g.cursorY)
	if err != nil {
		return
	}
	_ = g.answer.Set(g.cursorX, g.cursorY, (v+1)%colors)
}

// submit compares the answer against the pattern.
func (g *Game) submit() {
	if g.answer.Equal(g.pattern) {
		lit := 0
		for c := 1; c < 16; c++ {
			lit += g.pattern.CountColor(c)
		}
		g.score += lit * 10
		g.startRound()
		return
	}
	g.gameOver = true
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.pattern == nil {
		return
	}

	switch g.phase {
	case PhaseReveal:
		g.renderBoard(dst, g.pattern, false)
		dst.DrawTextCentered(dst.Height()-2, "Memorize the pattern...")
	case PhaseGrace:
		dst.DrawTextCentered(dst.Height()/2, "Get ready")
	case PhaseAnswer:
		g.renderBoard(dst, g.answer, true)
		dst.DrawTextCentered(dst.Height()-2, "Space: Cycle color | Enter: Submit")
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Wrong Pattern", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Pattern Recall | Score: %d | Round: %d", g.score, g.round)
	dst.DrawTextColor(0, 0, hud, platformcore.ColorBright)
	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorDim)
}

// renderBoard draws a grid as colored 2-char blocks, centered, with an
// optional cursor marker.
func (g *Game) renderBoard(dst *platformcore.Screen, b *grid.Grid, withCursor bool) {
	boardW := b.Width() * 2
	boardH := b.Height()
	offX := (dst.Width() - boardW) / 2
	offY := 3 + (dst.Height()-3-boardH-2)/2
	if offX < 0 {
		offX = 0
	}
	if offY < 3 {
		offY = 3
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			v, err := b.Get(x, y)
			if err != nil {
				continue
			}
			r := '█'
			c := platformcore.PaletteSlot(v)
			if v == 0 {
				r = '·'
				c = platformcore.ColorDim
			}
			dst.SetCell(offX+x*2, offY+y, r, c)
			dst.SetCell(offX+x*2+1, offY+y, r, c)
		}
	}

	if withCursor {
		dst.SetCell(offX+g.cursorX*2-1, offY+g.cursorY, '[', platformcore.ColorCursor)
		dst.SetCell(offX+g.cursorX*2+2, offY+g.cursorY, ']', platformcore.ColorCursor)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, subtitle string) {
	w := platformcore.Max(len(title), len(subtitle)) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	box := platformcore.NewRect(x, y, w, h)
	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorAccent)
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+3, subtitle)
}
