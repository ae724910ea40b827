// internal/system/movement.go
package system

import (
	"math"

	"go-bug-smashers/internal/entity"
)

// MovementSystem обновляет позиции сущностей
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	query := s.ecs.MoverFilter.Query()
	for query.Next() {
		pos, vel := query.Get()
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
	}
}

// SteeringSystem разворачивает всех жуков к башне. Жуки ненавидят башню.
type SteeringSystem struct {
	ecs        *entity.ECS
	difficulty *DifficultyManager
}

func NewSteeringSystem(ecs *entity.ECS, difficulty *DifficultyManager) *SteeringSystem {
	return &SteeringSystem{ecs: ecs, difficulty: difficulty}
}

func (s *SteeringSystem) Update(elapsed float64) {
	_, towerPos, _, _, ok := s.ecs.Tower()
	if !ok {
		return
	}
	target := *towerPos
	multiplier := s.difficulty.SpeedMultiplier(elapsed)

	query := s.ecs.EnemyFilter.Query()
	for query.Next() {
		pos, vel, _, _, enemy := query.Get()
		dx := target.X - pos.X
		dy := target.Y - pos.Y
		dist := math.Hypot(dx, dy)
		if dist < 1e-9 {
			vel.X, vel.Y = 0, 0
			continue
		}
		speed := enemy.Speed * multiplier
		vel.X = dx / dist * speed
		vel.Y = dy / dist * speed
	}
}
