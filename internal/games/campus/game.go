// Package campus implements the campus walk game: guide a student across
// campus levels, talk to tutors and answer their quizzes. Levels are YAML
// files; each one runs until the player ends it, then the next begins.
package campus

import (
	"fmt"
	"math/rand"

	"github.com/andrewmow/quizwalk/internal/core"
	"github.com/andrewmow/quizwalk/internal/games/campus/levels"
	"github.com/andrewmow/quizwalk/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeCampaign plays every level in order.
	ModeCampaign Mode = "campaign"
	// ModePractice plays a single chosen level and ends.
	ModePractice Mode = "practice"
)

// phase is the controller state. Transitions only move forward within one
// run: loading -> running -> (running per level) -> complete.
type phase int

const (
	phaseLoading phase = iota
	phaseRunning
	phaseComplete
)

const hudHeight = 2

// Game implements the campus walk.
type Game struct {
	mode     Mode
	rng      *rand.Rand
	tickRate int
	ticks    uint64
	score    int

	levels   []levels.Level
	levelIdx int
	world    *World
	player   *Player
	panel    Panel

	screenW int
	screenH int

	phase    phase
	paused   bool
	tooSmall bool
	loadErr  error
}

// Package-level variables set by CLI flags before the platform creates the
// game instance.
var (
	selectedStartLevel int
	customLevelDir     string
)

// SetStartLevel sets the 1-based starting level. 0 means start from the
// beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetLevelDir points the loader at a directory of level files instead of the
// embedded defaults.
func SetLevelDir(dir string) {
	customLevelDir = dir
}

// New creates a campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewPractice creates a practice mode game: one level, then done.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

func init() {
	registry.Register("campus", func() registry.Game {
		return New()
	})
	registry.Register("campus_practice", func() registry.Game {
		return NewPractice()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "campus_practice"
	}
	return "campus"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Campus Walk (Practice)"
	}
	return "Campus Walk"
}

// Reset initializes/restarts the game: loads the level list and enters the
// first selected level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.ticks = 0
	g.score = 0
	g.paused = false
	g.phase = phaseLoading
	g.panel.Close()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if err := g.loadLevelList(); err != nil {
		g.loadErr = err
		return
	}
	g.loadErr = nil

	g.levelIdx = 0
	if selectedStartLevel > 0 && selectedStartLevel <= len(g.levels) {
		g.levelIdx = selectedStartLevel - 1
		if g.mode == ModeCampaign {
			selectedStartLevel = 0 // one-shot, like a CLI flag should be
		}
	}

	g.loadLevel()
}

// loadLevelList fills g.levels from the custom directory when set, otherwise
// from the embedded defaults.
func (g *Game) loadLevelList() error {
	if customLevelDir != "" {
		loader := levels.Loader{Root: customLevelDir}
		lvls, err := loader.LoadAll()
		if err != nil {
			return err
		}
		if len(lvls) == 0 {
			return fmt.Errorf("campus: no levels in %s", customLevelDir)
		}
		g.levels = lvls
		return nil
	}

	lvls, err := levels.Defaults()
	if err != nil {
		return err
	}
	g.levels = lvls
	return nil
}

// loadLevel builds a fresh world for the current level and registers its
// entities in file order.
func (g *Game) loadLevel() {
	if g.levelIdx >= len(g.levels) {
		g.phase = phaseComplete
		return
	}
	lvl := g.levels[g.levelIdx]

	g.tooSmall = g.screenW < 20 || g.screenH < hudHeight+6
	g.world = NewWorld(float64(g.screenW), float64(g.screenH), g.rng.Int63())
	g.player = nil
	g.panel.Close()

	for _, d := range lvl.Entities {
		e, err := NewEntity(d, g.world)
		if err != nil {
			g.loadErr = fmt.Errorf("level %s: %w", lvl.ID, err)
			return
		}
		g.world.Add(e)
		if p, ok := e.(*Player); ok {
			g.player = p
		}
	}

	g.phase = phaseRunning
}

// CurrentLevel returns the level being played, or nil before loading.
func (g *Game) CurrentLevel() *levels.Level {
	if g.levelIdx >= len(g.levels) {
		return nil
	}
	return &g.levels[g.levelIdx]
}

// DirectionKeys returns the current level's movement key overrides keyed by
// key name, or nil when the level uses the default bindings.
func (g *Game) DirectionKeys() map[string]core.Action {
	lvl := g.CurrentLevel()
	if lvl == nil {
		return nil
	}
	for _, d := range lvl.Entities {
		if d.Kind != levels.KindPlayer || d.Keys == nil {
			continue
		}
		return map[string]core.Action{
			d.Keys.Up:    core.ActionUp,
			d.Keys.Down:  core.ActionDown,
			d.Keys.Left:  core.ActionLeft,
			d.Keys.Right: core.ActionRight,
		}
	}
	return nil
}

// ReloadLevels re-reads the level list from disk and restarts the current
// level in place. Used by the file watcher during level authoring.
func (g *Game) ReloadLevels() error {
	if err := g.loadLevelList(); err != nil {
		return err
	}
	if g.levelIdx >= len(g.levels) {
		g.levelIdx = len(g.levels) - 1
	}
	if g.phase == phaseRunning {
		g.loadLevel()
	}
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.ticks++

	var events []core.Event

	// Handle restart
	if input.Down(core.ActionRestart) && g.phase == phaseComplete {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if g.loadErr != nil || g.phase != phaseRunning {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Down(core.ActionPause) && !g.panel.IsOpen() {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// The end-of-level flag is only consulted here, at the top of a tick.
	// A request made mid-tick takes effect one tick later.
	if !g.world.Continue() {
		g.endLevel(&events)
		return core.StepResult{State: g.State(), Events: events}
	}

	g.handleInput(input, &events)

	g.world.Advance()
	for _, e := range g.world.Entities() {
		e.Update(g.world)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// handleInput routes the frame. An open panel owns every key; otherwise
// direction edges go to the player and interact/exit to the controller.
func (g *Game) handleInput(input core.InputFrame, events *[]core.Event) {
	if g.panel.IsOpen() {
		answers, ev := g.panel.Input(input)
		if ev == PanelSubmitted {
			answered := 0
			for _, a := range answers {
				if a.Text != "" {
					answered++
				}
			}
			g.score += answered
			*events = append(*events, core.Event{
				Kind:   core.EventQuizSubmitted,
				Level:  g.levelIdx + 1,
				Detail: fmt.Sprintf("%d/%d answered", answered, len(answers)),
			})
		}
		return
	}

	if input.Down(core.ActionExit) {
		g.world.RequestEnd()
		return
	}

	if g.player != nil {
		for action, dir := range map[core.Action]Direction{
			core.ActionUp:    DirUp,
			core.ActionDown:  DirDown,
			core.ActionLeft:  DirLeft,
			core.ActionRight: DirRight,
		} {
			if input.Down(action) {
				g.player.KeyDown(dir)
			}
			if input.Up(action) {
				g.player.KeyUp(dir)
			}
		}
	}

	if input.Down(core.ActionInteract) {
		g.openPanel()
	}
}

// openPanel opens the answer panel for the first tutor the player is
// touching, in registry evaluation order. No-op when nobody is in reach.
func (g *Game) openPanel() {
	if g.player == nil {
		return
	}
	for _, id := range g.player.Touching() {
		if n, ok := g.world.ByID(id).(*NPC); ok && !n.Quiz().Empty() {
			g.panel.Open(n)
			return
		}
	}
}

// endLevel tears the level down and moves on: entities are destroyed in
// reverse insertion order, a level-end event fires, the completion bonus is
// added, and the next level loads (or the run completes).
func (g *Game) endLevel(events *[]core.Event) {
	snapshot := g.world.Entities()
	for i := len(snapshot) - 1; i >= 0; i-- {
		snapshot[i].Destroy(g.world)
	}

	g.score += 10 // level completion bonus
	*events = append(*events, core.Event{
		Kind:   core.EventLevelEnd,
		Level:  g.levelIdx + 1,
		Detail: g.levels[g.levelIdx].Name,
	})

	g.panel.Close()
	g.levelIdx++
	if g.mode == ModePractice || g.levelIdx >= len(g.levels) {
		g.phase = phaseComplete
		return
	}
	g.loadLevel()
}

// Resize rescales the running world to the new screen dimensions instead of
// restarting the level.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < 20 || h < hudHeight+6
	if g.world != nil {
		g.world.Resize(float64(w), float64(h))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	level := g.levelIdx + 1
	if level > len(g.levels) {
		level = len(g.levels)
	}
	return core.GameState{
		Score:     g.score,
		Level:     level,
		Elapsed:   float64(g.ticks) / float64(g.tickRate),
		GameOver:  g.phase == phaseComplete || g.loadErr != nil,
		Paused:    g.paused,
		TextEntry: g.panel.IsOpen(),
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderOverlay(dst, "Level load failed", g.loadErr.Error())
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.world != nil {
		for _, e := range g.world.Entities() {
			e.Draw(dst)
		}
	}

	g.renderHUD(dst)
	g.panel.Draw(dst)

	switch {
	case g.phase == phaseComplete:
		g.renderOverlay(dst, "All levels complete!", fmt.Sprintf("Final Score: %d — press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	name := ""
	if lvl := g.CurrentLevel(); lvl != nil {
		name = lvl.Name
	}
	hud := fmt.Sprintf(" %s — Score: %d  Level: %d/%d  %s",
		g.Title(), g.score, g.State().Level, len(g.levels), name)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 0, ' ')
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.player != nil && !g.panel.IsOpen() {
		for _, id := range g.player.Touching() {
			if n, ok := g.world.ByID(id).(*NPC); ok && !n.Quiz().Empty() {
				dst.DrawTextColored(1, dst.Height()-1,
					fmt.Sprintf("press E to talk to %s", n.ID()), core.ColorGray)
				break
			}
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
