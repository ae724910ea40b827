package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Default возвращает конфигурацию из встроенного defaults.yaml.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load загружает встроенные значения по умолчанию и поверх них файл path.
// Файлы с расширением .toml читаются как TOML, остальные как YAML.
// Поля, которых нет в файле, остаются значениями по умолчанию.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return decodeTOML(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// decodeTOML заменяет список жуков целиком, как это делает YAML.
// Иначе toml пишет [[enemies]] поверх шаблонов по умолчанию с тем же индексом.
func decodeTOML(data []byte, cfg *Config) error {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return err
	}
	if md.IsDefined("enemies") {
		cfg.Enemies = nil
	}
	return toml.Unmarshal(data, cfg)
}

// Resolve ищет файл конфигурации.
// Порядок поиска: customPath -> ~/.bugsmash/config.yaml -> ./configs/config.yaml.
// Пустая строка означает "только встроенные значения".
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".bugsmash", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat(filepath.Join("configs", "config.yaml")); err == nil {
		return filepath.Join("configs", "config.yaml")
	}
	return ""
}

// ExpandHome раскрывает ведущую ~ в пути.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Validate проверяет значения, без которых игра не может работать.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Tower.Health <= 0 {
		errs = append(errs, errors.New("tower.health must be positive"))
	}
	if c.Tower.Radius <= 0 || c.Swatter.Radius <= 0 {
		errs = append(errs, errors.New("tower.radius and swatter.radius must be positive"))
	}
	if c.Spawn.InitialInterval <= 0 || c.Spawn.MinInterval <= 0 {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	if c.Spawn.MinInterval > c.Spawn.InitialInterval {
		errs = append(errs, fmt.Errorf("spawn.min_interval (%v) exceeds spawn.initial_interval (%v)", c.Spawn.MinInterval, c.Spawn.InitialInterval))
	}
	if c.Spawn.RadiusX <= 0 || c.Spawn.RadiusY <= 0 {
		errs = append(errs, errors.New("spawn.radius_x and spawn.radius_y must be positive"))
	}
	if c.Projectile.Interval <= 0 {
		errs = append(errs, errors.New("projectile.interval must be positive"))
	}
	if c.Projectile.Radius <= 0 || c.Projectile.Speed <= 0 {
		errs = append(errs, errors.New("projectile.radius and projectile.speed must be positive"))
	}
	if c.XP.OrbRadius <= 0 {
		errs = append(errs, errors.New("xp.orb_radius must be positive"))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be within [0, 1], got %v", c.Difficulty.InitialLevel))
	}
	if c.XP.Base <= 0 {
		errs = append(errs, errors.New("xp.base must be positive"))
	}
	if len(c.Enemies) == 0 {
		errs = append(errs, errors.New("at least one enemy template is required"))
	}
	seen := make(map[string]bool, len(c.Enemies))
	for i, def := range c.Enemies {
		if def.ID == "" {
			errs = append(errs, fmt.Errorf("enemies[%d]: empty id", i))
			continue
		}
		if seen[def.ID] {
			errs = append(errs, fmt.Errorf("enemies[%d]: duplicate id %q", i, def.ID))
		}
		seen[def.ID] = true
		if err := def.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("enemies[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
