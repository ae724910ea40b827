// internal/state/loading_state.go
package state

import (
	"fmt"

	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// LoadStep — один шаг загрузки. Ошибка шага переводит игру в Fail.
type LoadStep struct {
	Name string
	Run  func() error
}

// LoadingState выполняет шаги загрузки по одному за кадр.
type LoadingState struct {
	sm    *StateMachine
	ctx   *Context
	steps []LoadStep
	next  int
}

func NewLoadingState(sm *StateMachine, ctx *Context, steps []LoadStep) *LoadingState {
	return &LoadingState{sm: sm, ctx: ctx, steps: steps}
}

func (s *LoadingState) Enter() {
	s.next = 0
}

func (s *LoadingState) Update(deltaTime float64) {
	if s.next >= len(s.steps) {
		s.ctx.Logger.Info("loading finished")
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
		return
	}
	step := s.steps[s.next]
	if err := step.Run(); err != nil {
		err = fmt.Errorf("load %s: %w", step.Name, err)
		s.ctx.Logger.Error("loading failed", zap.Error(err))
		s.sm.SetState(NewFailState(s.sm, s.ctx, err))
		return
	}
	s.ctx.Logger.Debug("load step done", zap.String("step", step.Name))
	s.next++
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	label := "Loading..."
	if s.next < len(s.steps) {
		label = fmt.Sprintf("Loading %s...", s.steps[s.next].Name)
	}
	w, h := s.ctx.Config.Window.Width, s.ctx.Config.Window.Height
	ui.DrawCenteredText(screen, label, float64(w)/2, float64(h)/2, 2, config.TextLightColor)
}

func (s *LoadingState) Exit() {}
