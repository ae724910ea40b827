// internal/defs/enemies.go
package defs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID       string  `yaml:"id" toml:"id"`
	Name     string  `yaml:"name" toml:"name"`
	Health   float64 `yaml:"health" toml:"health"`
	Speed    float64 `yaml:"speed" toml:"speed"`   // пикселей в секунду
	Radius   float64 `yaml:"radius" toml:"radius"` // радиус коллайдера
	Damage   float64 `yaml:"damage" toml:"damage"` // урон башне при контакте
	XP       int     `yaml:"xp" toml:"xp"`
	Weight   int     `yaml:"weight" toml:"weight"`       // относительный шанс появления
	UnlockAt float64 `yaml:"unlock_at" toml:"unlock_at"` // секунды игры, после которых жук начинает появляться
	Color    string  `yaml:"color" toml:"color"`         // "#rrggbb" или "#rrggbbaa"
}

// Validate checks a single template.
func (d EnemyDefinition) Validate() error {
	if d.Health <= 0 {
		return fmt.Errorf("%s: health must be positive", d.ID)
	}
	if d.Speed < 0 {
		return fmt.Errorf("%s: speed must not be negative", d.ID)
	}
	if d.Radius <= 0 {
		return fmt.Errorf("%s: radius must be positive", d.ID)
	}
	if d.Weight < 0 {
		return fmt.Errorf("%s: weight must not be negative", d.ID)
	}
	if _, err := ParseHexColor(d.Color); err != nil {
		return fmt.Errorf("%s: %w", d.ID, err)
	}
	return nil
}

// RGBA returns the template colour, or opaque black if it cannot be parsed.
func (d EnemyDefinition) RGBA() color.RGBA {
	c, err := ParseHexColor(d.Color)
	if err != nil {
		return color.RGBA{0, 0, 0, 255}
	}
	return c
}

// ParseHexColor разбирает "#rrggbb" или "#rrggbbaa". Пустая строка — чёрный.
func ParseHexColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{0, 0, 0, 255}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ErrEmptyLibrary is returned when a library is built from no templates.
var ErrEmptyLibrary = errors.New("enemy library is empty")
