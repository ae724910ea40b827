// internal/system/player_system.go
package system

import (
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"

	ark "github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// PlayerSystem отвечает за логику, связанную с игроком:
// сферы опыта, уровни и счётчик убийств.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
	cfg             config.XPConfig
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, cfg config.XPConfig, logger *zap.Logger) *PlayerSystem {
	ps := &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		cfg:             cfg,
	}
	eventDispatcher.SubscribeAll(ps, event.EnemySwatted, event.EnemyKilled)
	return ps
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySwatted, event.EnemyKilled:
		if player, ok := s.ecs.Player(); ok {
			player.Kills++
		}
	}
}

// Update старит сферы опыта и собирает те, которых коснулась мухобойка.
func (s *PlayerSystem) Update(deltaTime float64) {
	_, swPos, swCol, _, hasSwatter := s.ecs.Swatter()

	var expired []ark.Entity
	var collected []ark.Entity
	var values []int

	query := s.ecs.OrbFilter.Query()
	for query.Next() {
		pos, col, orb := query.Get()
		if hasSwatter && swCol.CollidesWith(*swPos, *col, *pos) {
			collected = append(collected, query.Entity())
			values = append(values, orb.Value)
			continue
		}
		orb.TTL -= deltaTime
		if orb.TTL <= 0 {
			expired = append(expired, query.Entity())
		}
	}

	s.ecs.DespawnAll(expired)
	s.ecs.DespawnAll(collected)
	// Каждая сфера начисляется отдельно: своё событие и свой звук
	for _, v := range values {
		s.AddXP(v)
	}
}

// AddXP начисляет опыт и проводит все положенные повышения уровня.
func (s *PlayerSystem) AddXP(amount int) {
	player, ok := s.ecs.Player()
	if !ok || amount <= 0 {
		return
	}

	player.CurrentXP += amount
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.XPCollected,
		Data: event.XPData{Amount: amount, Total: player.CurrentXP},
	})

	// Проверяем, не пора ли повышать уровень; крупная добыча может дать несколько уровней
	for player.CurrentXP >= player.XPToNextLevel {
		player.CurrentXP -= player.XPToNextLevel
		player.Level++
		player.XPToNextLevel = s.cfg.ForNextLevel(player.Level)

		s.syncEmitters(player.Level)
		s.logger.Info("level up", zap.Int("level", player.Level), zap.Int("next", player.XPToNextLevel))
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.LevelUp,
			Data: event.LevelUpData{Level: player.Level, XPToNextLevel: player.XPToNextLevel},
		})
	}
}

// syncEmitters даёт башне по снаряду за каждый уровень выше первого.
func (s *PlayerSystem) syncEmitters(level int) {
	query := s.ecs.EmitterFilter.Query()
	for query.Next() {
		_, emitter := query.Get()
		emitter.Amount = level - 1
	}
}
