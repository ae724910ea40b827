// internal/system/spawn.go
package system

import (
	"go-bug-smashers/internal/component"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/defs"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"
	"go-bug-smashers/internal/utils"

	"go.uber.org/zap"
)

// SpawnSystem по таймеру выпускает жуков на эллипсе вокруг башни.
type SpawnSystem struct {
	ecs             *entity.ECS
	library         *defs.Library
	difficulty      *DifficultyManager
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
	cfg             config.SpawnConfig

	spawnTimer float64
	spawned    int
}

func NewSpawnSystem(
	ecs *entity.ECS,
	library *defs.Library,
	difficulty *DifficultyManager,
	rng *utils.PRNGService,
	eventDispatcher *event.Dispatcher,
	cfg config.SpawnConfig,
	logger *zap.Logger,
) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		library:         library,
		difficulty:      difficulty,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		cfg:             cfg,
	}
}

func (s *SpawnSystem) Update(deltaTime, elapsed float64) {
	s.spawnTimer += deltaTime
	interval := s.difficulty.SpawnInterval(elapsed)
	if s.spawnTimer < interval {
		return
	}
	s.spawnTimer = 0

	if s.cfg.MaxEnemies > 0 && s.ecs.EnemyCount() >= s.cfg.MaxEnemies {
		return
	}

	_, towerPos, _, _, ok := s.ecs.Tower()
	if !ok {
		return
	}
	s.spawnEnemy(towerPos.X, towerPos.Y, elapsed)
}

// Spawned — сколько жуков выпущено за сессию.
func (s *SpawnSystem) Spawned() int {
	return s.spawned
}

func (s *SpawnSystem) Reset() {
	s.spawnTimer = 0
	s.spawned = 0
}

func (s *SpawnSystem) spawnEnemy(cx, cy, elapsed float64) {
	def, ok := s.rng.ChooseWeighted(s.library.Unlocked(elapsed))
	if !ok {
		def = s.library.Fallback()
	}
	if def.ID == "" {
		s.logger.Error("no enemy template available for spawn")
		return
	}

	x, y := utils.PointOnEllipse(cx, cy, s.cfg.RadiusX, s.cfg.RadiusY, s.rng.Angle())
	health := def.Health * s.difficulty.HealthMultiplier(elapsed)

	id := s.ecs.SpawnEnemy(x, y,
		component.Enemy{
			DefID:  def.ID,
			Damage: def.Damage,
			XP:     def.XP,
			Speed:  def.Speed,
		},
		health,
		def.Radius,
		component.Renderable{
			Color:     def.RGBA(),
			Radius:    float32(def.Radius),
			HasStroke: true,
		},
	)
	s.spawned++

	s.logger.Debug("enemy spawned",
		zap.String("def", def.ID),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Float64("health", health),
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{Entity: id, DefID: def.ID, X: x, Y: y, XP: def.XP},
	})
}
