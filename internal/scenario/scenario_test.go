package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/FreddyWordingham/GOAP/internal/domain"
	"github.com/FreddyWordingham/GOAP/internal/planner"
)

func TestParse(t *testing.T) {
	data := []byte(`
initial:
  position: {x: 1, y: -2}
  has_weapon: true
  enemy_alive: true
  wood: 3
goal:
  position: {x: 4, y: 0}
  has_weapon: true
  enemy_alive: false
planner:
  max_expansions: 500
disabled_actions: [pickup_wood]
`)

	sc, err := Parse(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	wantInitial := domain.WorldState{PlayerPos: domain.Position{X: 1, Y: -2}, HasWeapon: true, EnemyAlive: true, Wood: 3}
	if sc.Initial != wantInitial {
		t.Errorf("Initial = %s, want %s", sc.Initial, wantInitial)
	}
	if sc.Goal.PlayerPos != (domain.Position{X: 4, Y: 0}) || sc.Goal.EnemyAlive {
		t.Errorf("Unexpected goal %s", sc.Goal)
	}
	if sc.Planner.MaxExpansions != 500 {
		t.Errorf("MaxExpansions = %d, want 500", sc.Planner.MaxExpansions)
	}

	cfg, err := sc.PlannerConfig()
	if err != nil {
		t.Fatalf("PlannerConfig error: %v", err)
	}
	if cfg.MaxExpansions != 500 {
		t.Errorf("cfg.MaxExpansions = %d, want 500", cfg.MaxExpansions)
	}
	for _, a := range cfg.Actions(sc.Initial) {
		if a.Type == domain.ActionPickUpWood {
			t.Error("PickUpWood should be disabled")
		}
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Run("Empty document", func(t *testing.T) {
		sc, err := Parse(nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		def := Default()
		if sc.Initial != def.Initial || sc.Goal != def.Goal {
			t.Errorf("Expected default scenario, got %+v", sc)
		}
	})

	t.Run("Only planner section", func(t *testing.T) {
		sc, err := Parse([]byte("planner:\n  max_expansions: 7\n"))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if sc.Goal != Default().Goal {
			t.Errorf("Goal should default, got %s", sc.Goal)
		}
		if sc.Planner.MaxExpansions != 7 {
			t.Errorf("MaxExpansions = %d, want 7", sc.Planner.MaxExpansions)
		}
	})
}

func TestParse_PartialSections(t *testing.T) {
	t.Run("Omitted goal field is false", func(t *testing.T) {
		sc, err := Parse([]byte("goal:\n  position: {x: 4, y: 0}\n  has_weapon: true\n  enemy_alive: false\n"))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := domain.WorldState{PlayerPos: domain.Position{X: 4, Y: 0}, HasWeapon: true}
		if sc.Goal != want {
			t.Errorf("Goal = %s, want %s", sc.Goal, want)
		}
		if sc.Initial != Default().Initial {
			t.Errorf("Missing initial section should default, got %s", sc.Initial)
		}
	})

	t.Run("Initial with only position", func(t *testing.T) {
		sc, err := Parse([]byte("initial:\n  position: {x: 2, y: 2}\n"))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := domain.WorldState{PlayerPos: domain.Position{X: 2, Y: 2}}
		if sc.Initial != want {
			t.Errorf("Initial = %s, want %s", sc.Initial, want)
		}
		if sc.Goal != Default().Goal {
			t.Errorf("Missing goal section should default, got %s", sc.Goal)
		}
	})
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", "disabled_actions: [fly]"},
		{"negative limit", "planner: {max_expansions: -1}"},
		{"unknown field", "initial: {mana: 3}"},
		{"broken yaml", "initial: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	if _, err := Parse([]byte("disabled_actions: [fly]")); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
}

func TestLoad_RoundTripSolves(t *testing.T) {
	sc := Default()
	sc.Goal = domain.WorldState{PlayerPos: domain.Position{X: 2, Y: 1}, HasWeapon: true}

	data, err := sc.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Goal != sc.Goal {
		t.Errorf("Goal = %s, want %s", loaded.Goal, sc.Goal)
	}

	cfg, err := loaded.PlannerConfig()
	if err != nil {
		t.Fatalf("PlannerConfig error: %v", err)
	}
	res := planner.New(cfg).Solve(loaded.Initial, loaded.Goal)
	// two walks (one diagonal, one straight), weapon, attack
	if res.Status != planner.StatusFound || len(res.Actions) != 4 {
		t.Errorf("Expected a 4-step plan, got %s %v", res.Status, res.Actions)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
