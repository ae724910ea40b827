// internal/system/combat.go
package system

import (
	"go-bug-smashers/internal/component"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"

	ark "github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// TowerContactSystem обрабатывает жуков, доползших до башни.
type TowerContactSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
	destroyed       bool
}

func NewTowerContactSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *zap.Logger) *TowerContactSystem {
	return &TowerContactSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

type towerContact struct {
	entity ark.Entity
	defID  string
	x, y   float64
	damage float64
}

func (s *TowerContactSystem) Update() {
	towerID, towerPos, towerCol, _, ok := s.ecs.Tower()
	if !ok || s.destroyed {
		return
	}
	tPos, tCol := *towerPos, *towerCol

	// Сначала собираем, удаляем после итерации: мир заблокирован во время запроса.
	var contacts []towerContact
	query := s.ecs.EnemyFilter.Query()
	for query.Next() {
		pos, _, col, _, enemy := query.Get()
		if col.CollidesWith(*pos, tCol, tPos) {
			contacts = append(contacts, towerContact{
				entity: query.Entity(),
				defID:  enemy.DefID,
				x:      pos.X,
				y:      pos.Y,
				damage: enemy.Damage,
			})
		}
	}
	if len(contacts) == 0 {
		return
	}

	for _, c := range contacts {
		s.ecs.Despawn(c.entity)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyReachedTower,
			Data: event.EnemyData{Entity: c.entity, DefID: c.defID, X: c.x, Y: c.y},
		})

		ApplyDamage(s.ecs, towerID, c.damage)
		towerHealth := s.ecs.Healths.Get(towerID)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TowerDamaged,
			Data: event.TowerData{Damage: c.damage, Remaining: towerHealth.Value},
		})

		if towerHealth.Value <= 0 {
			towerHealth.Value = 0
			s.destroyed = true
			s.logger.Info("tower destroyed", zap.String("last_hit", c.defID))
			s.eventDispatcher.Dispatch(event.Event{Type: event.TowerDestroyed})
			return
		}
	}
}

// Destroyed сообщает, разрушена ли башня в этой сессии.
func (s *TowerContactSystem) Destroyed() bool {
	return s.destroyed
}

func (s *TowerContactSystem) Reset() {
	s.destroyed = false
}

// killEnemy удаляет убитого жука, роняет сферу опыта и сообщает о смерти.
// Вызывать только вне итерации запросов.
func killEnemy(ecs *entity.ECS, dispatcher *event.Dispatcher, xp config.XPConfig, id ark.Entity, eventType event.EventType) {
	if !ecs.World.Alive(id) {
		return
	}
	pos := *ecs.Positions.Get(id)
	enemy := *ecs.Enemies.Get(id)

	ecs.Despawn(id)
	if enemy.XP > 0 {
		ecs.SpawnOrb(pos.X, pos.Y, xp.OrbRadius, enemy.XP, xp.OrbTTL, component.Renderable{
			Color:  config.XPOrbColor,
			Radius: float32(xp.OrbRadius),
		})
	}
	dispatcher.Dispatch(event.Event{
		Type: eventType,
		Data: event.EnemyData{Entity: id, DefID: enemy.DefID, X: pos.X, Y: pos.Y, XP: enemy.XP},
	})
}
