package campus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrewmow/quizwalk/internal/core"
)

const testLevelYAML = `id: "t1"
name: "Test Hall"
entities:
  - id: student
    kind: player
    pos: {x: 0.5, y: 0.5}
    sprite:
      frames:
        down:
          - |-
            ##
            ##
  - id: tutor
    kind: npc
    pos: {x: 0.5, y: 0.5}
    sprite:
      frames:
        down:
          - |-
            ##
            ##
    quiz:
      title: "Quick Check"
      questions:
        - "What does CPU stand for?"
        - "What base is hexadecimal?"
`

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 80, TickRate: 20, Seed: 42}
}

// useTestLevel points the loader at a temp directory holding one level with
// the player spawned on top of the tutor, so they touch from the first tick.
func useTestLevel(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "t1.yaml"), []byte(testLevelYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	SetLevelDir(dir)
	t.Cleanup(func() { SetLevelDir("") })
}

func stepWith(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return g.Step(in)
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestGameResetLoadsDefaults(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	st := g.State()
	if st.GameOver {
		t.Fatal("fresh game should not be over")
	}
	if st.Level != 1 {
		t.Errorf("expected level 1, got %d", st.Level)
	}
	if len(g.levels) < 2 {
		t.Errorf("expected at least 2 embedded levels, got %d", len(g.levels))
	}
	if g.player == nil {
		t.Error("expected a player entity after reset")
	}
}

func TestGameExitEndsLevelNextTick(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// The escape press requests the end; the tick it arrives on still plays
	// out the current level.
	res := stepWith(g, core.ActionExit)
	if res.State.Level != 1 {
		t.Fatalf("level must not change mid-tick, got %d", res.State.Level)
	}
	if hasEvent(res.Events, core.EventLevelEnd) {
		t.Fatal("level end must not fire on the requesting tick")
	}

	// The next tick observes the flag and tears the level down.
	res = stepWith(g)
	if !hasEvent(res.Events, core.EventLevelEnd) {
		t.Fatal("expected level end event")
	}
	if res.State.Level != 2 {
		t.Errorf("expected level 2, got %d", res.State.Level)
	}
	if res.State.Score != 10 {
		t.Errorf("expected completion bonus of 10, got %d", res.State.Score)
	}
	if g.world.Len() == 0 {
		t.Error("next level should have fresh entities")
	}
}

func TestGameCampaignCompleteAndRestart(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	total := len(g.levels)

	for i := 0; i < total; i++ {
		stepWith(g, core.ActionExit)
		stepWith(g)
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("campaign should be over after the last level")
	}
	if st.Score != total*10 {
		t.Errorf("expected score %d, got %d", total*10, st.Score)
	}

	// Further escape presses are inert once complete.
	stepWith(g, core.ActionExit)
	if !g.State().GameOver {
		t.Error("completed run must stay complete")
	}

	res := stepWith(g, core.ActionRestart)
	if res.State.GameOver {
		t.Error("restart should begin a fresh run")
	}
	if res.State.Score != 0 || res.State.Level != 1 {
		t.Errorf("restart should reset score and level, got %+v", res.State)
	}
}

func TestGamePracticeEndsAfterOneLevel(t *testing.T) {
	g := NewPractice()
	g.Reset(testConfig())

	stepWith(g, core.ActionExit)
	res := stepWith(g)

	if !res.State.GameOver {
		t.Error("practice mode should end after a single level")
	}
	if res.State.Score != 10 {
		t.Errorf("expected score 10, got %d", res.State.Score)
	}
}

func TestGameStartLevelFlag(t *testing.T) {
	SetStartLevel(2)
	defer SetStartLevel(0)

	g := New()
	g.Reset(testConfig())

	if g.State().Level != 2 {
		t.Errorf("expected start at level 2, got %d", g.State().Level)
	}
	if selectedStartLevel != 0 {
		t.Error("campaign start level should be consumed after one use")
	}
}

func TestGameInteractOpensPanel(t *testing.T) {
	useTestLevel(t)
	g := New()
	g.Reset(testConfig())

	// First tick runs the collision pass so the player registers the tutor.
	stepWith(g)
	if len(g.player.Touching()) == 0 {
		t.Fatal("expected player to touch the tutor")
	}

	res := stepWith(g, core.ActionInteract)
	if !res.State.TextEntry {
		t.Fatal("interact should open the answer panel")
	}
	if !g.panel.IsOpen() {
		t.Fatal("panel should be open")
	}

	// Direction keys go to the panel now, not the player.
	stepWith(g, core.ActionRight)
	if dx, _ := g.player.Velocity(); dx != 0 {
		t.Errorf("open panel must swallow movement keys, dx=%v", dx)
	}
}

func TestGameQuizSubmitScores(t *testing.T) {
	useTestLevel(t)
	g := New()
	g.Reset(testConfig())

	stepWith(g)
	stepWith(g, core.ActionInteract)

	// Answer the first question only.
	in := core.NewInputFrame()
	in.Type('4')
	in.Type('2')
	g.Step(in)

	res := stepWith(g, core.ActionSubmit)
	if !hasEvent(res.Events, core.EventQuizSubmitted) {
		t.Fatal("expected quiz submitted event")
	}
	if res.State.Score != 1 {
		t.Errorf("one non-empty answer scores 1, got %d", res.State.Score)
	}
	if res.State.TextEntry {
		t.Error("panel should close on submit")
	}
}

func TestGamePanelDismissScoresNothing(t *testing.T) {
	useTestLevel(t)
	g := New()
	g.Reset(testConfig())

	stepWith(g)
	stepWith(g, core.ActionInteract)

	in := core.NewInputFrame()
	in.Type('x')
	g.Step(in)

	res := stepWith(g, core.ActionExit)
	if res.State.Score != 0 {
		t.Errorf("dismiss must not score, got %d", res.State.Score)
	}
	if res.State.TextEntry {
		t.Error("panel should close on dismiss")
	}

	// The escape was consumed by the panel, not the level.
	res = stepWith(g)
	if hasEvent(res.Events, core.EventLevelEnd) || res.State.GameOver {
		t.Error("dismissing the panel must not end the level")
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	res := stepWith(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	tick := g.world.Tick()
	stepWith(g, core.ActionRight)
	if g.world.Tick() != tick {
		t.Error("paused world must not advance")
	}

	res = stepWith(g, core.ActionPause)
	if res.State.Paused {
		t.Error("expected unpaused state")
	}
}

func TestGameElapsedTracksTicks(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for i := 0; i < 20; i++ {
		stepWith(g)
	}
	if got := g.State().Elapsed; got != 1.0 {
		t.Errorf("20 ticks at 20/s should be 1s, got %v", got)
	}
}

func TestGameResizeKeepsLevel(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	stepWith(g)

	before := g.world.Len()
	g.Resize(50, 40)

	if g.world.Len() != before {
		t.Error("resize must not rebuild the level")
	}
	if g.world.W != 50 || g.world.H != 40 {
		t.Errorf("world not resized: %vx%v", g.world.W, g.world.H)
	}

	r := g.player.Rect()
	if r.X >= 50 || r.Y >= 40 {
		t.Errorf("player not rescaled into the new viewport: %+v", r)
	}
}

func TestGameRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	stepWith(g)

	s := core.NewScreen(100, 80)
	g.Render(s)

	if !strings.Contains(s.Row(0), "Score") {
		t.Errorf("expected HUD in the top row, got %q", s.Row(0))
	}
}
