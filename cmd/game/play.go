package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-bug-smashers/internal/audio"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/defs"
	"go-bug-smashers/internal/state"
	"go-bug-smashers/internal/storage"
	"go-bug-smashers/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE:  runPlay,
}

// AppGame связывает машину состояний с главным циклом Ebiten.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	library, err := defs.NewLibrary(cfg.Enemies)
	if err != nil {
		return fmt.Errorf("enemy definitions: %w", err)
	}

	sound := audio.NewSoundManager(cfg.Audio, logger)
	defer sound.Cleanup()

	ctx := &state.Context{
		Config:  cfg,
		Library: library,
		Logger:  logger,
		Sound:   sound,
		Seed:    flagSeed,
	}

	var store *storage.Store
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	steps := []state.LoadStep{
		{Name: "fonts", Run: ui.CheckFont},
		{Name: "audio", Run: func() error {
			// Без звукового устройства играем молча
			if err := sound.Initialize(); err != nil {
				logger.Warn("audio unavailable, continuing silently", zap.Error(err))
			}
			return nil
		}},
		{Name: "scores", Run: func() error {
			s, err := storage.Open(cfg.Storage.DBPath)
			if err != nil {
				return err
			}
			store = s
			ctx.Scores = s
			return nil
		}},
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewLoadingState(sm, ctx, steps))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.Window.Width,
		height:         cfg.Window.Height,
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	logger.Info("starting", zap.String("title", cfg.Window.Title), zap.Int64("seed", flagSeed))
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
