// internal/system/utils.go
package system

import (
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/entity"

	ark "github.com/mlange-42/ark/ecs"
)

// ApplyDamage наносит урон сущности и включает вспышку урона.
// Возвращает true, если сущность после удара мертва.
func ApplyDamage(ecs *entity.ECS, id ark.Entity, damage float64) bool {
	if !ecs.World.Alive(id) || !ecs.Healths.Has(id) {
		return false
	}
	if damage < 0 {
		damage = 0
	}

	health := ecs.Healths.Get(id)
	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
	}

	if ecs.DamageFlashes.Has(id) {
		flash := ecs.DamageFlashes.Get(id)
		flash.Timer = config.DamageFlashDuration
		flash.Duration = config.DamageFlashDuration
	}
	return health.Value <= 0
}
