// Package config holds the game constants, colour palette and the tunable
// Config loaded from embedded defaults plus an optional user file.
package config

import (
	"math"

	"go-bug-smashers/internal/defs"
)

// Config — все настраиваемые параметры игры.
type Config struct {
	Window     WindowConfig           `yaml:"window" toml:"window"`
	Tower      TowerConfig            `yaml:"tower" toml:"tower"`
	Swatter    SwatterConfig          `yaml:"swatter" toml:"swatter"`
	Spawn      SpawnConfig            `yaml:"spawn" toml:"spawn"`
	Difficulty DifficultyConfig       `yaml:"difficulty" toml:"difficulty"`
	XP         XPConfig               `yaml:"xp" toml:"xp"`
	Projectile ProjectileConfig       `yaml:"projectile" toml:"projectile"`
	Enemies    []defs.EnemyDefinition `yaml:"enemies" toml:"enemies"`
	Audio      AudioConfig            `yaml:"audio" toml:"audio"`
	Storage    StorageConfig          `yaml:"storage" toml:"storage"`
	Logging    LoggingConfig          `yaml:"logging" toml:"logging"`
}

type WindowConfig struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Title      string `yaml:"title" toml:"title"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
}

type TowerConfig struct {
	Health float64 `yaml:"health" toml:"health"`
	Radius float64 `yaml:"radius" toml:"radius"`
}

type SwatterConfig struct {
	Radius        float64 `yaml:"radius" toml:"radius"`
	Damage        float64 `yaml:"damage" toml:"damage"`
	Cooldown      float64 `yaml:"cooldown" toml:"cooldown"`             // секунды между ударами
	SlashDuration float64 `yaml:"slash_duration" toml:"slash_duration"` // сколько живёт след удара
}

type SpawnConfig struct {
	InitialInterval float64 `yaml:"initial_interval" toml:"initial_interval"`
	MinInterval     float64 `yaml:"min_interval" toml:"min_interval"`
	RadiusX         float64 `yaml:"radius_x" toml:"radius_x"`
	RadiusY         float64 `yaml:"radius_y" toml:"radius_y"`
	MaxEnemies      int     `yaml:"max_enemies" toml:"max_enemies"` // 0 — без ограничения
}

// DifficultyConfig описывает рост сложности во времени.
type DifficultyConfig struct {
	Enabled          bool    `yaml:"enabled" toml:"enabled"`
	InitialLevel     float64 `yaml:"initial_level" toml:"initial_level"` // 0.0 – 1.0
	RampSeconds      float64 `yaml:"ramp_seconds" toml:"ramp_seconds"`   // за сколько секунд уровень дойдёт до 1.0
	SpeedMultiplier  float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`
	HealthMultiplier float64 `yaml:"health_multiplier" toml:"health_multiplier"`
}

type XPConfig struct {
	Base      float64 `yaml:"base" toml:"base"`
	Exponent  float64 `yaml:"exponent" toml:"exponent"`
	OrbTTL    float64 `yaml:"orb_ttl" toml:"orb_ttl"`
	OrbRadius float64 `yaml:"orb_radius" toml:"orb_radius"`
}

// ForNextLevel возвращает порог опыта для перехода с уровня level на следующий.
func (c XPConfig) ForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	need := int(math.Round(c.Base * math.Pow(float64(level), c.Exponent)))
	if need < 1 {
		need = 1
	}
	return need
}

type ProjectileConfig struct {
	Interval float64 `yaml:"interval" toml:"interval"`
	Speed    float64 `yaml:"speed" toml:"speed"`
	Damage   float64 `yaml:"damage" toml:"damage"`
	TTL      float64 `yaml:"ttl" toml:"ttl"`
	Radius   float64 `yaml:"radius" toml:"radius"`
	Spread   float64 `yaml:"spread" toml:"spread"` // радианы, на которые раскрывается залп
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"` // 0.0 – 1.0
}

type StorageConfig struct {
	DBPath string `yaml:"db_path" toml:"db_path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" или "console"
}
