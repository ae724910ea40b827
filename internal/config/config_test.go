package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults are invalid: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window = %dx%d, want 1280x720", cfg.Window.Width, cfg.Window.Height)
	}
	if len(cfg.Enemies) != 4 {
		t.Errorf("got %d enemy templates, want 4", len(cfg.Enemies))
	}
	if cfg.Enemies[0].ID != "BUG_ANT" {
		t.Errorf("first template = %q, want BUG_ANT", cfg.Enemies[0].ID)
	}
}

func TestLoadYAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := `
tower:
  health: 250
spawn:
  min_interval: 0.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Tower.Health != 250 {
		t.Errorf("tower.health = %v, want 250", cfg.Tower.Health)
	}
	if cfg.Spawn.MinInterval != 0.5 {
		t.Errorf("spawn.min_interval = %v, want 0.5", cfg.Spawn.MinInterval)
	}
	// Не указанные поля остаются значениями по умолчанию
	if cfg.Tower.Radius != 16 {
		t.Errorf("tower.radius = %v, want default 16", cfg.Tower.Radius)
	}
	if cfg.Spawn.InitialInterval != 1.2 {
		t.Errorf("spawn.initial_interval = %v, want default 1.2", cfg.Spawn.InitialInterval)
	}
}

func TestLoadTOMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.toml")
	data := `
[swatter]
radius = 24.0

[[enemies]]
id = "BUG_ONLY"
name = "Only"
health = 10.0
speed = 30.0
radius = 8.0
damage = 1.0
xp = 1
weight = 1
unlock_at = 0.0
color = "#ff0000"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Swatter.Radius != 24 {
		t.Errorf("swatter.radius = %v, want 24", cfg.Swatter.Radius)
	}
	if len(cfg.Enemies) != 1 || cfg.Enemies[0].ID != "BUG_ONLY" {
		t.Errorf("enemies = %+v, want the single BUG_ONLY template", cfg.Enemies)
	}
}

func TestLoadPartialEnemiesMatchAcrossFormats(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "override.toml")
	yamlPath := filepath.Join(dir, "override.yaml")
	tomlData := `
[[enemies]]
id = "BUG_X"
health = 10.0
speed = 5.0
radius = 3.0
`
	yamlData := `
enemies:
  - id: BUG_X
    health: 10
    speed: 5
    radius: 3
`
	if err := os.WriteFile(tomlPath, []byte(tomlData), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}

	// Load валидирует, поэтому сравниваем результат разбора напрямую
	load := func(path string) *Config {
		t.Helper()
		cfg, err := Default()
		if err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := decode(path, data, cfg); err != nil {
			t.Fatalf("decode(%s) failed: %v", path, err)
		}
		return cfg
	}

	fromTOML := load(tomlPath)
	fromYAML := load(yamlPath)
	if len(fromTOML.Enemies) != 1 || len(fromYAML.Enemies) != 1 {
		t.Fatalf("enemies: toml=%d yaml=%d, want 1 each", len(fromTOML.Enemies), len(fromYAML.Enemies))
	}
	got := fromTOML.Enemies[0]
	if got != fromYAML.Enemies[0] {
		t.Errorf("toml enemy = %+v, yaml enemy = %+v", got, fromYAML.Enemies[0])
	}
	// Поля, которых нет в файле, не берутся у шаблона по умолчанию
	if got.Name != "" || got.Damage != 0 || got.XP != 0 || got.Weight != 0 || got.Color != "" {
		t.Errorf("unset fields leaked from defaults: %+v", got)
	}
	if got.ID != "BUG_X" || got.Health != 10 || got.Speed != 5 || got.Radius != 3 {
		t.Errorf("set fields lost: %+v", got)
	}
}

func TestLoadTOMLWithoutEnemiesKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.toml")
	if err := os.WriteFile(path, []byte("[tower]\nhealth = 50.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Enemies) != 4 {
		t.Errorf("got %d enemy templates, want the 4 defaults", len(cfg.Enemies))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "zero tower health",
			mutate:  func(c *Config) { c.Tower.Health = 0 },
			wantErr: "tower.health",
		},
		{
			name:    "min interval above initial",
			mutate:  func(c *Config) { c.Spawn.MinInterval = 5 },
			wantErr: "spawn.min_interval",
		},
		{
			name:    "no enemies",
			mutate:  func(c *Config) { c.Enemies = nil },
			wantErr: "at least one enemy",
		},
		{
			name: "duplicate enemy id",
			mutate: func(c *Config) {
				c.Enemies = append(c.Enemies, c.Enemies[0])
			},
			wantErr: "duplicate id",
		},
		{
			name:    "zero spawn radius",
			mutate:  func(c *Config) { c.Spawn.RadiusY = 0 },
			wantErr: "spawn.radius_x",
		},
		{
			name:    "negative projectile radius",
			mutate:  func(c *Config) { c.Projectile.Radius = -1 },
			wantErr: "projectile.radius",
		},
		{
			name:    "zero projectile speed",
			mutate:  func(c *Config) { c.Projectile.Speed = 0 },
			wantErr: "projectile.speed",
		},
		{
			name:    "zero orb radius",
			mutate:  func(c *Config) { c.XP.OrbRadius = 0 },
			wantErr: "xp.orb_radius",
		},
		{
			name:    "initial level out of range",
			mutate:  func(c *Config) { c.Difficulty.InitialLevel = 1.5 },
			wantErr: "initial_level",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Default()
			if err != nil {
				t.Fatal(err)
			}
			tc.mutate(cfg)
			err = cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestXPForNextLevel(t *testing.T) {
	xp := XPConfig{Base: 5, Exponent: 1.5}
	tests := []struct {
		level int
		want  int
	}{
		{0, 5},
		{1, 5},
		{2, 14},
		{4, 40},
	}
	for _, tc := range tests {
		if got := xp.ForNextLevel(tc.level); got != tc.want {
			t.Errorf("ForNextLevel(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path.db")
	if err != nil || got != "/abs/path.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/x/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "x", "scores.db"); got != want {
		t.Errorf("ExpandHome(~) = %q, want %q", got, want)
	}
}
