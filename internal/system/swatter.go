// internal/system/swatter.go
package system

import (
	"go-bug-smashers/internal/component"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"

	ark "github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// PointerInput — состояние указателя за кадр. Заполняется слоем ввода.
type PointerInput struct {
	X, Y        float64
	Inside      bool // курсор внутри окна
	JustPressed bool // левая кнопка нажата в этом кадре
}

// SwatterSystem двигает мухобойку за курсором и бьёт жуков по клику.
type SwatterSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
	cfg             config.SwatterConfig
	xp              config.XPConfig
}

func NewSwatterSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, cfg config.SwatterConfig, xp config.XPConfig, logger *zap.Logger) *SwatterSystem {
	return &SwatterSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		cfg:             cfg,
		xp:              xp,
	}
}

func (s *SwatterSystem) Update(deltaTime float64, in PointerInput) {
	_, pos, col, sw, ok := s.ecs.Swatter()
	if !ok {
		return
	}
	if sw.Cooldown > 0 {
		sw.Cooldown -= deltaTime
	}
	if !in.Inside {
		return
	}

	sw.LastX = pos.X
	sw.FlipX = in.X-pos.X >= 0
	pos.X, pos.Y = in.X, in.Y

	if !in.JustPressed || sw.Cooldown > 0 {
		return
	}
	sw.Cooldown = s.cfg.Cooldown
	s.swat(*pos, *col)
}

func (s *SwatterSystem) swat(pos component.Position, col component.Collider) {
	var hits []ark.Entity
	query := s.ecs.EnemyFilter.Query()
	for query.Next() {
		ePos, _, eCol, _, _ := query.Get()
		if col.CollidesWith(pos, *eCol, *ePos) {
			hits = append(hits, query.Entity())
		}
	}

	s.ecs.SpawnSlash(pos.X, pos.Y, s.cfg.SlashDuration)

	if len(hits) == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.SwatMissed})
		return
	}

	killed := 0
	for _, id := range hits {
		if ApplyDamage(s.ecs, id, s.cfg.Damage) {
			killEnemy(s.ecs, s.eventDispatcher, s.xp, id, event.EnemySwatted)
			killed++
		}
	}
	s.logger.Debug("swat", zap.Int("hits", len(hits)), zap.Int("killed", killed))
}
