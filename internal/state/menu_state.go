// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"
	"go-bug-smashers/internal/storage"
	"go-bug-smashers/internal/system"
	"go-bug-smashers/internal/ui"
	"go-bug-smashers/internal/utils"
	"go-bug-smashers/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// MenuState — главное меню: кнопка старта и лучшие забеги.
type MenuState struct {
	sm          *StateMachine
	ctx         *Context
	startButton *ui.Button
	topRuns     []storage.Run

	// Мухобойка в меню живёт в своём маленьком мире
	ecs      *entity.ECS
	swatter  *system.SwatterSystem
	effects  *system.VisualEffectSystem
	renderer *render.EntityRenderer
	hovered  bool
	inside   bool
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	w, h := float32(ctx.Config.Window.Width), float32(ctx.Config.Window.Height)
	ecs := entity.NewECS()
	ecs.SpawnSwatter(float64(w)/2, float64(h)/2, ctx.Config.Swatter.Radius)
	return &MenuState{
		sm:          sm,
		ctx:         ctx,
		startButton: ui.NewButton(w/2-100, h/2-30, 200, 60, "START", config.ButtonColor, config.ButtonHoverColor, config.TextLightColor),
		ecs:         ecs,
		swatter:     system.NewSwatterSystem(ecs, event.NewDispatcher(), ctx.Config.Swatter, ctx.Config.XP, ctx.Logger),
		effects:     system.NewVisualEffectSystem(ecs),
		renderer:    render.NewEntityRenderer(ecs, newPalette()),
	}
}

func (m *MenuState) Enter() {
	m.topRuns = nil
	if m.ctx.Scores == nil {
		return
	}
	runs, err := m.ctx.Scores.TopRuns(config.TopScoresOnMenu)
	if err != nil {
		m.ctx.Logger.Warn("cannot load top runs", zap.Error(err))
		return
	}
	m.topRuns = runs
}

func (m *MenuState) Update(deltaTime float64) {
	in := readPointer(m.ctx.Config.Window.Width, m.ctx.Config.Window.Height)
	m.inside = in.Inside
	syncCursor(in.Inside)
	m.hovered = in.Inside && m.startButton.Contains(in.X, in.Y)

	m.swatter.Update(deltaTime, in)
	m.effects.Update(deltaTime)

	if (in.JustPressed && m.hovered) || confirmPressed() {
		m.startButton.Click()
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.renderer.DrawBackground(screen)
	cx := float64(m.ctx.Config.Window.Width) / 2
	h := float64(m.ctx.Config.Window.Height)

	ui.DrawCenteredText(screen, m.ctx.Config.Window.Title, cx, h/4, 5, config.TextLightColor)
	m.startButton.Draw(screen, m.hovered)
	ui.DrawCenteredText(screen, "Space / Enter to start", cx, h/2+55, 1, config.TextLightColor)

	if len(m.topRuns) > 0 {
		y := h/2 + 100
		ui.DrawCenteredText(screen, "BEST RUNS", cx, y, 2, config.TextLightColor)
		for i, run := range m.topRuns {
			y += 24
			line := fmt.Sprintf("%d. %s   kills %d   lv %d", i+1, utils.FormatClock(run.SurvivedSeconds), run.Kills, run.Level)
			ui.DrawCenteredText(screen, line, cx, y, 1.5, config.TextLightColor)
		}
	}

	m.renderer.Draw(screen, 0)
	if m.inside {
		m.renderer.DrawSwatter(screen, config.SwatterSpriteSize)
	}
}

func (m *MenuState) Exit() {}

func newPalette() render.Palette {
	return render.Palette{
		Background:  config.BackgroundColor,
		Grid:        config.GridColor,
		Tower:       config.TowerColor,
		Stroke:      config.TowerStrokeColor,
		Damage:      config.DamageColor,
		Swatter:     config.SwatterColor,
		SwatterMesh: config.SwatterMeshColor,
		Slash:       config.SlashColor,
		StrokeWidth: config.StrokeWidth,
	}
}
