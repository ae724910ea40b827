package system

import (
	"testing"

	"go-bug-smashers/internal/config"
)

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DifficultyConfig
		elapsed float64
		want    float64
	}{
		{"start", config.DifficultyConfig{Enabled: true, RampSeconds: 100}, 0, 0},
		{"halfway", config.DifficultyConfig{Enabled: true, RampSeconds: 100}, 50, 0.5},
		{"past ramp", config.DifficultyConfig{Enabled: true, RampSeconds: 100}, 250, 1},
		{"initial level", config.DifficultyConfig{Enabled: true, InitialLevel: 0.5, RampSeconds: 100}, 50, 0.75},
		{"disabled", config.DifficultyConfig{Enabled: false, InitialLevel: 0.3, RampSeconds: 100}, 1000, 0.3},
		{"zero ramp", config.DifficultyConfig{Enabled: true, RampSeconds: 0}, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(tt.cfg, config.SpawnConfig{})
			if got := d.Level(tt.elapsed); !approx(got, tt.want) {
				t.Errorf("Level(%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestDifficultyDerivedValues(t *testing.T) {
	d := NewDifficultyManager(
		config.DifficultyConfig{Enabled: true, RampSeconds: 100, SpeedMultiplier: 1.5, HealthMultiplier: 1},
		config.SpawnConfig{InitialInterval: 1.2, MinInterval: 0.2},
	)

	if got := d.SpawnInterval(0); !approx(got, 1.2) {
		t.Errorf("SpawnInterval(0) = %v, want 1.2", got)
	}
	if got := d.SpawnInterval(50); got < 0.6999 || got > 0.7001 {
		t.Errorf("SpawnInterval(50) = %v, want 0.7", got)
	}
	if got := d.SpawnInterval(100); got < 0.1999 || got > 0.2001 {
		t.Errorf("SpawnInterval(100) = %v, want 0.2", got)
	}
	if got := d.SpeedMultiplier(100); !approx(got, 2.5) {
		t.Errorf("SpeedMultiplier(100) = %v, want 2.5", got)
	}
	if got := d.HealthMultiplier(50); !approx(got, 1.5) {
		t.Errorf("HealthMultiplier(50) = %v, want 1.5", got)
	}

	d.Update(50)
	if got := d.Current(); !approx(got, 0.5) {
		t.Errorf("Current() = %v, want 0.5", got)
	}
}

func TestGameTimer(t *testing.T) {
	timer := NewGameTimer()
	timer.Update(60)
	timer.Update(5.4)
	timer.Update(-3)

	if got := timer.Text(); got != "01 : 05" {
		t.Errorf("Text() = %q, want %q", got, "01 : 05")
	}
	timer.Reset()
	if timer.Elapsed() != 0 {
		t.Errorf("Elapsed() after Reset = %v", timer.Elapsed())
	}
}
