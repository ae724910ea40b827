// internal/system/difficulty.go
package system

import (
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/utils"
)

// DifficultyManager считает параметры сложности по времени игры.
type DifficultyManager struct {
	cfg   config.DifficultyConfig
	spawn config.SpawnConfig
	level float64 // уровень на последнем Update
}

func NewDifficultyManager(cfg config.DifficultyConfig, spawn config.SpawnConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg, spawn: spawn}
	d.level = d.Level(0)
	return d
}

// Level возвращает уровень сложности (от initial_level до 1.0) для elapsed секунд игры.
func (d *DifficultyManager) Level(elapsed float64) float64 {
	initial := utils.Clamp(d.cfg.InitialLevel, 0, 1)
	if !d.cfg.Enabled {
		return initial
	}
	ramp := d.cfg.RampSeconds
	if ramp <= 0 {
		return 1
	}
	progress := utils.Clamp(elapsed/ramp, 0, 1)
	return initial + progress*(1-initial)
}

// SpawnInterval — период таймера спавна.
func (d *DifficultyManager) SpawnInterval(elapsed float64) float64 {
	return utils.Lerp(d.spawn.InitialInterval, d.spawn.MinInterval, d.Level(elapsed))
}

// SpeedMultiplier — множитель скорости жуков.
func (d *DifficultyManager) SpeedMultiplier(elapsed float64) float64 {
	return 1 + d.Level(elapsed)*d.cfg.SpeedMultiplier
}

// HealthMultiplier — множитель здоровья новых жуков.
func (d *DifficultyManager) HealthMultiplier(elapsed float64) float64 {
	return 1 + d.Level(elapsed)*d.cfg.HealthMultiplier
}

// Update запоминает текущий уровень, чтобы его можно было показать в UI.
func (d *DifficultyManager) Update(elapsed float64) {
	d.level = d.Level(elapsed)
}

// Current возвращает уровень, посчитанный на последнем Update.
func (d *DifficultyManager) Current() float64 {
	return d.level
}
