// internal/config/settings_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if s.Sim.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", s.Sim.TickRate)
	}
	if s.Sim.Lives != BaseLives {
		t.Errorf("Lives = %d, want %d", s.Sim.Lives, BaseLives)
	}
	if s.Sim.MapRadius != MapRadius {
		t.Errorf("MapRadius = %d, want %d", s.Sim.MapRadius, MapRadius)
	}
	if s.Economy.StartingGold != DefaultStartingGold {
		t.Errorf("StartingGold = %d, want %d", s.Economy.StartingGold, DefaultStartingGold)
	}
	if !s.Economy.InterestEnabled {
		t.Error("interest disabled by default")
	}
	if s.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", s.Server.Addr)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
sim:
  tick_rate: 30
  lives: 5
economy:
  starting_gold: 500
  interest_enabled: false
server:
  addr: ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Sim.TickRate != 30 || s.Sim.Lives != 5 {
		t.Errorf("sim = %+v, want tick_rate 30 lives 5", s.Sim)
	}
	if s.Economy.StartingGold != 500 || s.Economy.InterestEnabled {
		t.Errorf("economy = %+v, want starting_gold 500 interest off", s.Economy)
	}
	if s.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", s.Server.Addr)
	}
	// Anything the file leaves out keeps its default.
	if s.Sim.PoolPrewarm != DefaultPoolPrewarm {
		t.Errorf("PoolPrewarm = %d, want default %d", s.Sim.PoolPrewarm, DefaultPoolPrewarm)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing settings file did not error")
	}
}
