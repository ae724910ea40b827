// internal/state/game_state.go
package state

import (
	game "go-bug-smashers/internal/app"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/ui"
	"go-bug-smashers/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// GameState — состояние игры
type GameState struct {
	sm             *StateMachine
	ctx            *Context
	game           *game.Game
	renderer       *render.EntityRenderer
	healthBar      *ui.HealthBar
	levelIndicator *ui.PlayerLevelIndicator
	pauseButton    *ui.PauseButton
	started        bool
	inside         bool
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	g := game.NewGame(ctx.Config, ctx.Library, ctx.Logger, ctx.Seed)
	w := float32(ctx.Config.Window.Width)
	return &GameState{
		sm:             sm,
		ctx:            ctx,
		game:           g,
		renderer:       render.NewEntityRenderer(g.ECS, newPalette()),
		healthBar:      ui.NewHealthBar(w/2-120, 70, 240, 16),
		levelIndicator: ui.NewPlayerLevelIndicator(20, 20),
		pauseButton:    ui.NewPauseButton(w-40, 40, 12, config.ButtonColor, config.TowerColor),
	}
}

// Enter вызывается и при старте, и при возврате из паузы.
func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	if g.started {
		return
	}
	g.started = true
	g.ctx.Sound.Attach(g.game.EventDispatcher)
	g.ctx.Sound.PlayInGame()
	g.ctx.Logger.Info("state: in game", zap.Int64("seed", g.game.Rng.Seed()))
}

func (g *GameState) Update(deltaTime float64) {
	in := readPointer(g.ctx.Config.Window.Width, g.ctx.Config.Window.Height)
	g.inside = in.Inside
	syncCursor(in.Inside)

	// Клик по кнопке паузы не должен бить жуков
	if in.JustPressed && g.pauseButton.IsClicked(in.X, in.Y) {
		g.pause()
		return
	}
	if pausePressed() {
		g.pause()
		return
	}

	g.game.Update(deltaTime, in)

	if g.game.Over() {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, g.game))
	}
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g.ctx, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.DrawBackground(screen)
	g.renderer.Draw(screen, g.game.ECS.GameTime)
	g.drawHUD(screen)
	if g.inside {
		g.renderer.DrawSwatter(screen, config.SwatterSpriteSize)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	cx := float64(g.ctx.Config.Window.Width) / 2
	ui.DrawCenteredText(screen, g.game.TimerText(), cx, 36, config.TimerFontScale, config.TextLightColor)

	value, max := g.game.TowerHealth()
	g.healthBar.Draw(screen, value, max)

	player := g.game.Player()
	g.levelIndicator.Draw(screen, player.Level, player.CurrentXP, player.XPToNextLevel)
	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {}
