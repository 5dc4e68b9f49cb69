// Package flood provides the Color Flood puzzle game: recolor the
// region anchored at the top-left corner until the whole board is one
// color, inside a move budget.
package flood

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arc-studio/internal/config"
	platformcore "github.com/vovakirdan/arc-studio/internal/core"
	"github.com/vovakirdan/arc-studio/internal/games/flood/levels"
	"github.com/vovakirdan/arc-studio/internal/grid"
	"github.com/vovakirdan/arc-studio/internal/registry"
)

// Mode selects between the fixed campaign and random boards.
type Mode int

const (
	ModeCampaign Mode = iota
	ModeEndless
)

// Package-level variables for configuration
var (
	selectedMode       Mode
	selectedStartLevel int
	selectedConfig     *config.FloodConfig
	levelsRoot         string
)

// SetMode selects campaign or endless play for the next game.
func SetMode(m Mode) {
	selectedMode = m
}

// SetStartLevel sets the starting campaign level (1-indexed). 0 means
// start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetConfig overrides the game configuration for the next game.
func SetConfig(cfg config.FloodConfig) {
	selectedConfig = &cfg
}

// SetLevelsRoot points the campaign at a custom levels directory.
func SetLevelsRoot(root string) {
	levelsRoot = root
}

func init() {
	registry.Register("flood", func() registry.Game {
		return New()
	})
}

// Game implements the Color Flood game.
type Game struct {
	rng  *rand.Rand
	cfg  config.FloodConfig
	diff *config.DifficultyManager
	mode Mode

	board    *grid.Grid
	palette  *grid.Palette
	colors   int // Colors in play on the current board
	moves    int // Moves remaining
	selected int // Color queued for the next flood

	levelIndex int
	allLevels  []levels.Level
	cleared    int // Boards finished this session, drives difficulty

	screenW int
	screenH int

	tick     uint64
	score    int
	gameOver bool
	won      bool
	paused   bool
	loadErr  string
}

// New creates a new Color Flood game.
func New() *Game {
	return &Game{
		cfg: config.DefaultFloodConfig(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "flood"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Color Flood"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.cleared = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.loadErr = ""
	g.palette = grid.ForLimits(grid.DefaultLimits())

	if selectedConfig != nil {
		g.cfg = *selectedConfig
	}
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.mode = selectedMode

	if g.mode == ModeCampaign {
		loader := levels.NewLoader(levelsRoot)
		all, err := loader.LoadAll()
		if err != nil || len(all) == 0 {
			g.loadErr = "No levels found"
			g.gameOver = true
			return
		}
		g.allLevels = all

		if selectedStartLevel > 0 && selectedStartLevel <= len(all) {
			g.levelIndex = selectedStartLevel - 1
			selectedStartLevel = 0 // Reset after use
		} else {
			g.levelIndex = 0
		}
		g.loadCurrentLevel()
	} else {
		g.newEndlessBoard()
	}
}

// loadCurrentLevel puts the campaign level at levelIndex on the board.
func (g *Game) loadCurrentLevel() {
	if g.levelIndex >= len(g.allLevels) {
		g.won = true
		g.gameOver = true
		return
	}

	lvl := g.allLevels[g.levelIndex]
	board, err := lvl.ToGrid()
	if err != nil {
		g.loadErr = fmt.Sprintf("Bad level %s", lvl.ID)
		g.gameOver = true
		return
	}
	g.board = board
	g.colors = lvl.Colors()
	g.moves = lvl.Moves
	g.selected = g.nextColorFrom(g.anchorColor(), 1)
}

// newEndlessBoard generates a fresh random board sized per the config,
// with difficulty scaling the color count and move budget.
func (g *Game) newEndlessBoard() {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	g.colors = g.diff.ColorCount(g.cfg.Board.Colors, 10, g.cleared, int(g.tick))

	board, err := grid.New(w, h, 0)
	if err != nil {
		g.loadErr = "Bad board config"
		g.gameOver = true
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_ = board.Set(x, y, g.rng.Intn(g.colors))
		}
	}
	g.board = board

	budget := g.cfg.Moves.Base
	if g.cfg.Moves.PerArea > 0 {
		budget += (w * h) / g.cfg.Moves.PerArea
	}
	g.moves = g.diff.MoveBudget(budget, g.cleared, int(g.tick))
	g.selected = g.nextColorFrom(g.anchorColor(), 1)
}

// anchorColor returns the color of the flood origin cell.
func (g *Game) anchorColor() int {
	if g.board == nil {
		return 0
	}
	v, err := g.board.Get(0, 0)
	if err != nil {
		return 0
	}
	return v
}

// nextColorFrom cycles through the palette in the given direction,
// skipping the anchor color since flooding with it wastes nothing but
// also does nothing.
func (g *Game) nextColorFrom(from, dir int) int {
	if g.colors <= 1 {
		return from
	}
	c := from
	for i := 0; i < g.colors; i++ {
		c = (c + dir + g.colors) % g.colors
		if c != g.anchorColor() {
			return c
		}
	}
	return from
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

	if g.gameOver || g.paused || g.board == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionLeft) {
		g.selected = g.nextColorFrom(g.selected, -1)
	}
	if input.Has(platformcore.ActionRight) {
		g.selected = g.nextColorFrom(g.selected, 1)
	}

	if input.Has(platformcore.ActionApply) || input.Has(platformcore.ActionConfirm) {
		g.applyFlood()
	}

	return platformcore.StepResult{State: g.State()}
}

// applyFlood spends one move recoloring the anchor region.
func (g *Game) applyFlood() {
	anchor := g.anchorColor()
	if g.selected == anchor {
		return // Free no-op, not worth a move
	}

	before := g.board.CountColor(g.selected)
	if err := g.board.FloodFill(0, 0, g.selected); err != nil {
		return
	}
	g.moves--

	// Score the cells captured into the region this move
	gained := g.board.CountColor(g.selected) - before
	g.score += gained

	if g.board.IsAll(g.selected) {
		g.finishBoard()
		return
	}

	if g.moves <= 0 {
		g.gameOver = true
		return
	}

	// The old selection is now the anchor color; move off it
	g.selected = g.nextColorFrom(g.selected, 1)
}

// finishBoard awards the clear bonus and advances to the next board.
func (g *Game) finishBoard() {
	g.cleared++
	g.score += g.moves * 5 // Unspent moves are worth points

	if g.mode == ModeCampaign {
		g.levelIndex++
		if g.levelIndex >= len(g.allLevels) {
			g.won = true
			g.gameOver = true
			return
		}
		g.loadCurrentLevel()
	} else {
		g.newEndlessBoard()
	}
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

	if g.loadErr != "" {
		g.renderOverlay(dst, g.loadErr, "Check the levels directory")
		return
	}
	if g.board == nil {
		return
	}

	g.renderBoard(dst)
	g.renderPalette(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", "All boards cleared!")
	case g.gameOver:
		g.renderOverlay(dst, "Out of Moves", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Color Flood | Score: %d | Moves: %d", g.score, g.moves)
	if g.mode == ModeCampaign && g.levelIndex < len(g.allLevels) {
		lvl := g.allLevels[g.levelIndex]
		hud += fmt.Sprintf(" | Level %d/%d: %s", g.levelIndex+1, len(g.allLevels), lvl.Name)
	} else if g.mode == ModeEndless {
		hud += fmt.Sprintf(" | Board #%d", g.cleared+1)
	}
	dst.DrawTextColor(0, 0, hud, platformcore.ColorBright)
	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorDim)

	controls := " ←/→: Pick color | Space: Flood | P: Pause | Q: Quit"
	dst.DrawTextColor(0, 2, controls, platformcore.ColorDim)
	dst.DrawHLine(0, 3, dst.Width(), '─', platformcore.ColorDim)
}

// renderBoard draws the board as colored 2-char blocks, centered.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	boardW := g.board.Width() * 2
	boardH := g.board.Height()
	offX := (dst.Width() - boardW) / 2
	offY := 4 + (dst.Height()-4-boardH-3)/2
	if offX < 0 {
		offX = 0
	}
	if offY < 4 {
		offY = 4
	}

	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			v, err := g.board.Get(x, y)
			if err != nil {
				continue
			}
			c := platformcore.PaletteSlot(v)
			dst.SetCell(offX+x*2, offY+y, '█', c)
			dst.SetCell(offX+x*2+1, offY+y, '█', c)
		}
	}
}

// renderPalette draws the selectable colors along the bottom, with a
// marker under the queued color.
func (g *Game) renderPalette(dst *platformcore.Screen) {
	y := dst.Height() - 2
	total := g.colors*3 - 1
	offX := (dst.Width() - total) / 2
	if offX < 0 {
		offX = 0
	}

	for c := 0; c < g.colors; c++ {
		x := offX + c*3
		slot := platformcore.PaletteSlot(c)
		dst.SetCell(x, y, '█', slot)
		dst.SetCell(x+1, y, '█', slot)
		if c == g.selected {
			dst.DrawTextColor(x, y+1, "▲▲", platformcore.ColorCursor)
		}
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
