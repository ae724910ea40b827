// internal/system/visual_effect.go
package system

import (
	"go-bug-smashers/internal/entity"

	ark "github.com/mlange-42/ark/ecs"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Вспышки урона живут на сущности постоянно, гасим только таймер
	flashes := s.ecs.FlashFilter.Query()
	for flashes.Next() {
		flash := flashes.Get()
		if flash.Timer > 0 {
			flash.Timer -= deltaTime
			if flash.Timer < 0 {
				flash.Timer = 0
			}
		}
	}

	// Следы ударов удаляем после окончания анимации
	var finished []ark.Entity
	slashes := s.ecs.SlashFilter.Query()
	for slashes.Next() {
		_, slash := slashes.Get()
		slash.Timer += deltaTime
		if slash.Timer >= slash.Duration {
			finished = append(finished, slashes.Entity())
		}
	}
	s.ecs.DespawnAll(finished)
}
