// internal/state/pause_state.go
package state

import (
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сессию: время игры не идёт.
type PauseState struct {
	sm            *StateMachine
	ctx           *Context
	previousState *GameState
}

func NewPauseState(sm *StateMachine, ctx *Context, prev *GameState) *PauseState {
	return &PauseState{sm: sm, ctx: ctx, previousState: prev}
}

func (s *PauseState) Enter() {
	syncCursor(false)
	s.ctx.Logger.Info("state: paused")
}

func (s *PauseState) Update(deltaTime float64) {
	in := readPointer(s.ctx.Config.Window.Width, s.ctx.Config.Window.Height)
	if pausePressed() || (in.JustPressed && s.previousState.pauseButton.IsClicked(in.X, in.Y)) {
		s.previousState.pauseButton.TogglePause()
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	w, h := float32(s.ctx.Config.Window.Width), float32(s.ctx.Config.Window.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, config.PauseOverlay, false)
	ui.DrawCenteredText(screen, "PAUSED", float64(w)/2, float64(h)/2, 4, config.TextLightColor)
	ui.DrawCenteredText(screen, "P / Escape to resume", float64(w)/2, float64(h)/2+40, 1, config.TextLightColor)
	s.previousState.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {}
