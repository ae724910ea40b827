// internal/state/fail_state.go
package state

import (
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FailState показывает ошибку загрузки. Escape закрывает игру.
type FailState struct {
	sm  *StateMachine
	ctx *Context
	err error
}

func NewFailState(sm *StateMachine, ctx *Context, err error) *FailState {
	return &FailState{sm: sm, ctx: ctx, err: err}
}

func (s *FailState) Enter() {
	syncCursor(false)
}

func (s *FailState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.Quit()
	}
}

func (s *FailState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := float64(s.ctx.Config.Window.Width) / 2
	cy := float64(s.ctx.Config.Window.Height) / 2
	ui.DrawCenteredText(screen, "Failed to start", cx, cy-60, 4, config.GameOverColor)
	ui.DrawCenteredText(screen, s.err.Error(), cx, cy, 1, config.TextLightColor)
	ui.DrawCenteredText(screen, "Press Escape to quit", cx, cy+40, 1, config.TextLightColor)
}

func (s *FailState) Exit() {}
