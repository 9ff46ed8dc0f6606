package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// scriptedRNG returns its values in order, then repeats the last one.
type scriptedRNG struct {
	vals []int
	i    int
}

func (r *scriptedRNG) IntRange(low, high int) int {
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

func newGame(t *testing.T, rng core.RNG) *Game {
	t.Helper()
	g := New(config.Default().Snake, rng)
	g.Reset()
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestReset(t *testing.T) {
	g := newGame(t, core.NewRandom(1))

	want := []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	body := g.cells[:g.length]
	if len(body) != len(want) {
		t.Fatalf("initial length = %d, expected 3", len(body))
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("cell %d = %v, expected %v", i, body[i], want[i])
		}
	}
	if g.heading != DirRight {
		t.Errorf("initial heading = %v, expected right", g.heading)
	}
	if g.State().GameOver {
		t.Error("fresh game should not be over")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, core.NewRandom(12345))
	g2 := newGame(t, core.NewRandom(12345))

	for i := range 40 {
		in := core.NewInputFrame()
		switch i {
		case 3:
			in.Set(core.ActionDown)
		case 6:
			in.Set(core.ActionLeft)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newGame(t, core.NewRandom(42))

	g.Sample(frame(core.ActionLeft))
	if g.heading != DirRight {
		t.Errorf("reversal should be ignored, heading = %v", g.heading)
	}

	g.Sample(frame(core.ActionDown))
	if g.heading != DirDown {
		t.Errorf("orthogonal turn should be accepted, heading = %v", g.heading)
	}

	g = newGame(t, core.NewRandom(42))
	g.Sample(frame(core.ActionUp))
	if g.heading != DirUp {
		t.Errorf("orthogonal turn should be accepted, heading = %v", g.heading)
	}
}

func TestDoubleTurnBetweenMovesCannotReverse(t *testing.T) {
	g := newGame(t, core.NewRandom(42))
	g.food = core.Point{X: 0, Y: 0}

	// Down then left before the next move would reverse into the neck.
	g.Sample(frame(core.ActionDown))
	g.Sample(frame(core.ActionLeft))
	if g.heading != DirDown {
		t.Fatalf("second turn is parallel to the last move and must be ignored, heading = %v", g.heading)
	}

	g.Step(core.NewInputFrame())
	if g.State().GameOver {
		t.Fatal("snake should not have collided with itself")
	}
	if head := g.cells[0]; head != (core.Point{X: 10, Y: 11}) {
		t.Errorf("head = %v, expected (10, 11)", head)
	}
}

func TestDiagonalPrefersVertical(t *testing.T) {
	g := newGame(t, core.NewRandom(1))
	g.Sample(frame(core.ActionUp, core.ActionRight))
	if g.heading != DirUp {
		t.Errorf("heading = %v, expected up", g.heading)
	}
}

func TestTurnThenMove(t *testing.T) {
	g := newGame(t, core.NewRandom(1))
	g.food = core.Point{X: 0, Y: 0}

	g.Sample(frame(core.ActionDown))
	result := g.Step(core.NewInputFrame())

	if result.State.GameOver {
		t.Fatal("move should not terminate")
	}
	want := []core.Point{{X: 10, Y: 11}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	body := g.cells[:g.length]
	if len(body) != 3 {
		t.Fatalf("length = %d, expected 3 (no growth)", len(body))
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("cell %d = %v, expected %v", i, body[i], want[i])
		}
	}
}

func TestEatingGrowsAndRespawnsFood(t *testing.T) {
	rng := &scriptedRNG{vals: []int{11, 10, 3, 4}}
	g := newGame(t, rng)

	if g.food != (core.Point{X: 11, Y: 10}) {
		t.Fatalf("food = %v, expected (11, 10)", g.food)
	}

	g.Step(core.NewInputFrame())

	want := []core.Point{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	body := g.cells[:g.length]
	if len(body) != 4 {
		t.Fatalf("length = %d, expected 4", len(body))
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("cell %d = %v, expected %v", i, body[i], want[i])
		}
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, expected 1", g.State().Score)
	}
	if g.food != (core.Point{X: 3, Y: 4}) {
		t.Errorf("food = %v, expected respawn at (3, 4)", g.food)
	}
}

func TestLengthNeverExceedsCapacity(t *testing.T) {
	cfg := config.Default().Snake
	cfg.Capacity = 5
	g := New(cfg, core.NewRandom(3))
	g.Reset()

	for range 10 {
		g.food = g.cells[0].Add(g.heading)
		g.Step(core.NewInputFrame())
		if g.length > cfg.Capacity {
			t.Fatalf("length %d exceeds capacity %d", g.length, cfg.Capacity)
		}
	}

	if g.State().GameOver {
		t.Fatal("straight run should stay inside the grid")
	}
	if g.length != cfg.Capacity {
		t.Errorf("length = %d, expected to saturate at %d", g.length, cfg.Capacity)
	}
	// Cells stay contiguous behind the head.
	body := g.cells[:g.length]
	for i := 1; i < len(body); i++ {
		if body[i] != body[i-1].Add(DirLeft) {
			t.Errorf("cell %d = %v, expected directly behind %v", i, body[i], body[i-1])
		}
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name    string
		head    core.Point
		heading core.Point
	}{
		{"right wall", core.Point{X: 31, Y: 5}, DirRight},
		{"left wall", core.Point{X: 0, Y: 5}, DirLeft},
		{"top wall", core.Point{X: 5, Y: 0}, DirUp},
		{"bottom wall", core.Point{X: 5, Y: 15}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, core.NewRandom(1))
			g.length = 1
			g.cells[0] = tc.head
			g.heading = tc.heading
			g.moved = tc.heading

			result := g.Step(core.NewInputFrame())
			if !result.State.GameOver {
				t.Fatal("leaving the grid should end the game")
			}
			if g.cells[0] != tc.head {
				t.Errorf("head moved to %v on a terminal step", g.cells[0])
			}
		})
	}
}

func TestSelfCollisionFreezesState(t *testing.T) {
	g := newGame(t, core.NewRandom(1))
	g.food = core.Point{X: 0, Y: 0}

	// Head at (5,5) heading up into (5,4), which is the 4th cell.
	coiled := []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 4}}
	copy(g.cells, coiled)
	g.length = len(coiled)
	g.heading = DirUp
	g.moved = DirLeft

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver {
		t.Fatal("running into the body should end the game")
	}

	for range 3 {
		g.Step(frame(core.ActionRight))
	}
	body := g.cells[:g.length]
	if len(body) != len(coiled) {
		t.Fatalf("length changed after termination: %d", len(body))
	}
	for i := range coiled {
		if body[i] != coiled[i] {
			t.Errorf("cell %d = %v after termination, expected %v", i, body[i], coiled[i])
		}
	}
}

func TestTailCellCountsAsCollision(t *testing.T) {
	g := newGame(t, core.NewRandom(1))
	g.food = core.Point{X: 0, Y: 0}

	square := []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 5, Y: 4}}
	copy(g.cells, square)
	g.length = len(square)
	g.heading = DirUp
	g.moved = DirLeft

	if !g.Step(core.NewInputFrame()).State.GameOver {
		t.Error("moving onto the current tail cell should end the game")
	}
}

func TestFoodMaySpawnUnderSnake(t *testing.T) {
	// First draw is the initial food, second lands on the body.
	rng := &scriptedRNG{vals: []int{0, 0, 9, 10}}
	g := newGame(t, rng)
	g.spawnFood()

	if g.food != (core.Point{X: 9, Y: 10}) || !g.occupies(g.food) {
		t.Errorf("food = %v, expected it under the body at (9, 10)", g.food)
	}
}

func TestFoodStaysInGrid(t *testing.T) {
	g := newGame(t, core.NewRandom(999))
	for range 1000 {
		g.spawnFood()
		if !g.grid.Contains(g.food) {
			t.Fatalf("food spawned outside the grid at %v", g.food)
		}
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, core.NewRandom(1))
	g.food = core.Point{X: 20, Y: 2}

	fb := core.NewFramebuffer()
	fb.FillRect(0, 60, 4, 4) // stale pixels must be cleared
	g.Render(fb)
	fb.Present()

	lit := []core.Point{{X: 80, Y: 8}, {X: 83, Y: 11}, {X: 40, Y: 40}, {X: 36, Y: 40}, {X: 32, Y: 43}}
	for _, p := range lit {
		if !fb.Pixel(p.X, p.Y) {
			t.Errorf("pixel %v should be on", p)
		}
	}
	dark := []core.Point{{X: 44, Y: 40}, {X: 31, Y: 40}, {X: 0, Y: 60}}
	for _, p := range dark {
		if fb.Pixel(p.X, p.Y) {
			t.Errorf("pixel %v should be off", p)
		}
	}
}

func TestDebugState(t *testing.T) {
	g := newGame(t, core.NewRandom(1))

	got := g.DebugState()
	for _, want := range []string{"tick=0", "score=0", "len=3", "heading={1 0}", "head={10 10}", "game_over=false"} {
		if !strings.Contains(got, want) {
			t.Errorf("DebugState() = %q, missing %q", got, want)
		}
	}
}
