package tables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/proofplay/gridiron/internal/model"
)

func TestBaselineLoaded(t *testing.T) {
	if BigPlayRate() <= 0 {
		t.Fatal("expected a positive baseline big play rate")
	}
	if MaxInjuriesPerGame() <= 0 {
		t.Fatal("expected a positive injury cap")
	}
}

func TestPenaltyTableSize(t *testing.T) {
	p := Penalties()
	if len(p) < 20 || len(p) > 30 {
		t.Fatalf("expected roughly 24 penalty entries, got %d", len(p))
	}
	for _, pm := range p {
		if pm.FrequencyWeight <= 0 {
			t.Fatalf("penalty %s has non-positive frequency weight", pm.Kind)
		}
		if pm.Yards < 0 {
			t.Fatalf("penalty %s has negative yards", pm.Kind)
		}
	}
}

func TestFieldGoalInterpolationMonotonicDecreasing(t *testing.T) {
	prev := FieldGoalBaseRate(1)
	for d := 5; d <= 65; d += 5 {
		cur := FieldGoalBaseRate(d)
		if cur > prev+1e-9 {
			t.Fatalf("field goal rate should not increase with distance: at %d got %v after %v", d, cur, prev)
		}
		prev = cur
	}
}

func TestCompletionRateByDepth(t *testing.T) {
	screen := CompletionRate(model.DepthScreen)
	deep := CompletionRate(model.DepthDeep)
	if deep >= screen {
		t.Fatalf("deep completion rate should be lower than screen: deep=%v screen=%v", deep, screen)
	}
}

func TestLoadOverridesMergesOntoBaseline(t *testing.T) {
	before := BigPlayRate()
	defer func() {
		T.Rates.BigPlayRate = before
	}()

	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(path, []byte("rates:\n  big_play_rate: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadOverrides(path); err != nil {
		t.Fatal(err)
	}
	if BigPlayRate() != 0.5 {
		t.Fatalf("expected override to apply, got %v", BigPlayRate())
	}
	// A field omitted from the override file must retain its baseline value.
	if MaxInjuriesPerGame() <= 0 {
		t.Fatal("expected untouched field to retain baseline after override")
	}
}

func TestLoadOverridesEmptyPathIsNoop(t *testing.T) {
	if err := LoadOverrides(""); err != nil {
		t.Fatalf("empty path should be a no-op, got %v", err)
	}
}
