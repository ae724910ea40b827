// internal/state/game_over_state.go
package state

import (
	"fmt"
	"time"

	game "go-bug-smashers/internal/app"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/storage"
	"go-bug-smashers/internal/ui"
	"go-bug-smashers/internal/utils"
	"go-bug-smashers/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// GameOverState показывает итог забега.
type GameOverState struct {
	sm       *StateMachine
	ctx      *Context
	game     *game.Game
	renderer *render.EntityRenderer
	result   game.Result
}

func NewGameOverState(sm *StateMachine, ctx *Context, g *game.Game) *GameOverState {
	return &GameOverState{
		sm:       sm,
		ctx:      ctx,
		game:     g,
		renderer: render.NewEntityRenderer(g.ECS, newPalette()),
	}
}

func (s *GameOverState) Enter() {
	syncCursor(false)
	s.result = s.game.Result()
	s.game.ClearGameplay()

	s.ctx.Sound.Detach(s.game.EventDispatcher)
	s.ctx.Sound.PlayGameOver()

	s.ctx.Logger.Info("run finished",
		zap.Float64("survived", s.result.SurvivedSeconds),
		zap.Int("kills", s.result.Kills),
		zap.Int("level", s.result.Level),
		zap.Int64("seed", s.result.Seed),
	)
	if s.ctx.Scores == nil {
		return
	}
	id, err := s.ctx.Scores.SaveRun(storage.Run{
		SurvivedSeconds: s.result.SurvivedSeconds,
		Kills:           s.result.Kills,
		Level:           s.result.Level,
		XP:              s.result.XP,
		Seed:            s.result.Seed,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		s.ctx.Logger.Error("cannot save run", zap.Error(err))
		return
	}
	s.ctx.Logger.Debug("run saved", zap.Int64("id", id))
}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || confirmPressed() {
		s.ctx.Sound.Stop()
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.renderer.DrawBackground(screen)
	cx := float64(s.ctx.Config.Window.Width) / 2
	cy := float64(s.ctx.Config.Window.Height) / 2

	ui.DrawCenteredText(screen, "Game Over", cx, cy-80, config.GameOverFontScale, config.GameOverColor)
	stats := fmt.Sprintf("Survived %s   Kills %d   Level %d",
		utils.FormatClock(s.result.SurvivedSeconds), s.result.Kills, s.result.Level)
	ui.DrawCenteredText(screen, stats, cx, cy+10, 2, config.TextLightColor)
	ui.DrawCenteredText(screen, "Click, Space or Enter to return to the menu", cx, cy+60, 1, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
