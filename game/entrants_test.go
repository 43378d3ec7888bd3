package game

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"Alice, Bob", []string{"Alice", "Bob"}},
		{"Alice\nBob\n\n,Carol", []string{"Alice", "Bob", "Carol"}},
		{"  Ann Lee  ,\n  Bo  ", []string{"Ann Lee", "Bo"}},
		{"Alice, Alice", []string{"Alice", "Alice"}},
		{"", []string{}},
		{" , \n ,,", []string{}},
	}
	for _, tt := range tests {
		got := ParseNames(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseNames(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestPopulate(t *testing.T) {
	cfg := DefaultConfig()
	specs, err := Populate(cfg, []string{"Alice", "Bob"}, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	if len(specs) != 2*cfg.MoversPerEntrant {
		t.Fatalf("specs = %d, want %d", len(specs), 2*cfg.MoversPerEntrant)
	}

	spawn := specs[0].Position
	for i, s := range specs {
		wantLabel, wantEntrant := "Alice", 0
		if i >= cfg.MoversPerEntrant {
			wantLabel, wantEntrant = "Bob", 1
		}
		if s.Label != wantLabel || s.Entrant != wantEntrant {
			t.Errorf("spec %d = %s/%d, want %s/%d", i, s.Label, s.Entrant, wantLabel, wantEntrant)
		}
		if s.Position != spawn {
			t.Errorf("spec %d spawned at %v, want %v", i, s.Position, spawn)
		}
		if speed := s.Velocity.Len(); abs(speed-cfg.LaunchSpeed) > 1e-6 {
			t.Errorf("spec %d launch speed = %f", i, speed)
		}
		def := s.BodyDef()
		if def.Static || def.Sensor || def.Tag != wantLabel {
			t.Errorf("spec %d body = %+v", i, def)
		}
	}
}

func TestPopulateEmpty(t *testing.T) {
	if _, err := Populate(DefaultConfig(), nil, fixedRand(0)); !errors.Is(err, ErrEmptyEntrantList) {
		t.Errorf("err = %v, want ErrEmptyEntrantList", err)
	}
}

func TestEntrantHues(t *testing.T) {
	entrants := NewEntrants([]string{"a", "b", "c", "d", "e", "f", "g"})
	if entrants[1].Hue != EntrantHueStep {
		t.Errorf("second hue = %v", entrants[1].Hue)
	}
	if entrants[6].Hue != entrants[0].Hue {
		t.Errorf("hues do not wrap: %v vs %v", entrants[6].Hue, entrants[0].Hue)
	}
	if entrants[0].Color() == entrants[1].Color() {
		t.Error("adjacent entrants share a colour")
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
