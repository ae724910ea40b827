// internal/system/state.go
package system

import (
	"go-bug-smashers/internal/component"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"

	"go.uber.org/zap"
)

// StateSystem переводит сессию в фазу окончания, когда башня разрушена.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *zap.Logger) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
	eventDispatcher.Subscribe(event.TowerDestroyed, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.TowerDestroyed {
		s.SwitchToOverPhase()
	}
}

func (s *StateSystem) SwitchToOverPhase() {
	if s.ecs.Phase == component.OverPhase {
		return
	}
	s.ecs.Phase = component.OverPhase
	s.logger.Info("session over", zap.Float64("game_time", s.ecs.GameTime))
}

func (s *StateSystem) SwitchToRunningPhase() {
	s.ecs.Phase = component.RunningPhase
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Phase
}
