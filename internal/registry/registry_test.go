package registry

import (
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

type stubGame struct {
	id    string
	deps  Deps
	reset int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset()                               { g.reset++ }
func (g *stubGame) Interval() int64                      { return 10 }
func (g *stubGame) Sample(core.InputFrame)               {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(core.Display)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("stub_b", "Stub B", 101, func(d Deps) Game { return &stubGame{id: "stub_b", deps: d} })
	Register("stub_a", "Stub A", 102, func(d Deps) Game { return &stubGame{id: "stub_a", deps: d} })

	var order []string
	for _, info := range List() {
		if info.Slot > 100 {
			order = append(order, info.ID)
		}
	}
	if len(order) != 2 || order[0] != "stub_b" || order[1] != "stub_a" {
		t.Errorf("List() order = %v, expected slot order [stub_b stub_a]", order)
	}

	deps := Deps{Config: config.Default(), RNG: core.NewRandom(1)}
	g, err := Create("stub_a", deps)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.(*stubGame).deps.RNG != deps.RNG {
		t.Error("Create() should hand deps to the factory")
	}

	if _, err := Create("missing", deps); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "Dup", 201, func(Deps) Game { return &stubGame{} })

	tests := []struct {
		name string
		id   string
		slot int
	}{
		{"duplicate id", "stub_dup", 202},
		{"duplicate slot", "stub_other", 201},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() should panic")
				}
			}()
			Register(tc.id, "X", tc.slot, func(Deps) Game { return &stubGame{} })
		})
	}
}
