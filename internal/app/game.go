// internal/app/game.go
package app

import (
	"go-bug-smashers/internal/component"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/defs"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"
	"go-bug-smashers/internal/system"
	"go-bug-smashers/internal/utils"

	"go.uber.org/zap"
)

// Result — итог одного забега.
type Result struct {
	SurvivedSeconds float64
	Kills           int
	Level           int
	XP              int
	Seed            int64
}

// Game holds one game session: the world, the systems and the clock.
type Game struct {
	Config             *config.Config
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Timer              *system.GameTimer
	Difficulty         *system.DifficultyManager
	SpawnSystem        *system.SpawnSystem
	SteeringSystem     *system.SteeringSystem
	MovementSystem     *system.MovementSystem
	SwatterSystem      *system.SwatterSystem
	ProjectileSystem   *system.ProjectileSystem
	TowerContactSystem *system.TowerContactSystem
	PlayerSystem       *system.PlayerSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem

	logger *zap.Logger
}

// NewGame initializes a new game session. seed == 0 picks a time-based seed.
func NewGame(cfg *config.Config, library *defs.Library, logger *zap.Logger, seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	difficulty := system.NewDifficultyManager(cfg.Difficulty, cfg.Spawn)

	g := &Game{
		Config:          cfg,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Timer:           system.NewGameTimer(),
		Difficulty:      difficulty,
		logger:          logger,
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, library, difficulty, rng, eventDispatcher, cfg.Spawn, logger)
	g.SteeringSystem = system.NewSteeringSystem(ecs, difficulty)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.SwatterSystem = system.NewSwatterSystem(ecs, eventDispatcher, cfg.Swatter, cfg.XP, logger)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, cfg.Projectile, cfg.XP)
	g.TowerContactSystem = system.NewTowerContactSystem(ecs, eventDispatcher, logger)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher, cfg.XP, logger)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher, logger)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.LevelUp, event.TowerDamaged)

	g.placeTower()
	g.createSwatterEntity()
	g.createPlayerEntity()

	logger.Info("game session started", zap.Int64("seed", rng.Seed()))
	return g
}

// GameEventListener пишет в лог заметные события сессии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelUp:
		if data, ok := e.Data.(event.LevelUpData); ok {
			l.game.logger.Debug("player leveled up",
				zap.Int("level", data.Level),
				zap.String("time", l.game.TimerText()),
			)
		}
	case event.TowerDamaged:
		if data, ok := e.Data.(event.TowerData); ok {
			l.game.logger.Debug("tower damaged",
				zap.Float64("damage", data.Damage),
				zap.Float64("remaining", data.Remaining),
			)
		}
	}
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64, pointer system.PointerInput) {
	if g.Over() {
		return
	}
	dt := deltaTime
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt < 0 {
		dt = 0
	}

	g.Timer.Update(dt)
	elapsed := g.Timer.Elapsed()
	g.ECS.GameTime = elapsed

	g.Difficulty.Update(elapsed)
	g.SpawnSystem.Update(dt, elapsed)
	g.SteeringSystem.Update(elapsed)
	g.MovementSystem.Update(dt)
	g.SwatterSystem.Update(dt, pointer)
	g.ProjectileSystem.Update(dt)
	g.TowerContactSystem.Update()
	if g.Over() {
		return
	}
	g.PlayerSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
}

// Over reports whether the tower has been destroyed.
func (g *Game) Over() bool {
	return g.ECS.Phase == component.OverPhase
}

// TimerText returns the elapsed play time as "MM : SS".
func (g *Game) TimerText() string {
	return g.Timer.Text()
}

// Result собирает итог забега для экрана конца игры и таблицы рекордов.
func (g *Game) Result() Result {
	r := Result{
		SurvivedSeconds: g.Timer.Elapsed(),
		Seed:            g.Rng.Seed(),
	}
	if player, ok := g.ECS.Player(); ok {
		r.Kills = player.Kills
		r.Level = player.Level
		r.XP = player.CurrentXP
	}
	return r
}

// ClearGameplay убирает с поля всё, кроме мухобойки.
func (g *Game) ClearGameplay() {
	g.ECS.ClearGameplay()
}

// TowerHealth возвращает текущее и максимальное здоровье башни.
func (g *Game) TowerHealth() (float64, float64) {
	_, _, _, health, ok := g.ECS.Tower()
	if !ok {
		return 0, g.Config.Tower.Health
	}
	return health.Value, health.Max
}

// Player возвращает копию состояния игрока для UI.
func (g *Game) Player() component.PlayerStateComponent {
	if player, ok := g.ECS.Player(); ok {
		return *player
	}
	return component.PlayerStateComponent{Level: 1}
}

// --- Private Helper Functions ---

func (g *Game) center() (float64, float64) {
	return float64(g.Config.Window.Width) / 2, float64(g.Config.Window.Height) / 2
}

// placeTower ставит башню в центр экрана.
func (g *Game) placeTower() {
	x, y := g.center()
	p := g.Config.Projectile
	g.ECS.SpawnTower(x, y, g.Config.Tower.Radius, g.Config.Tower.Health, component.ProjectileEmitter{
		Amount:   0,
		Interval: p.Interval,
		Speed:    p.Speed,
		Damage:   p.Damage,
	})
}

func (g *Game) createSwatterEntity() {
	x, y := g.center()
	g.ECS.SpawnSwatter(x, y, g.Config.Swatter.Radius)
}

func (g *Game) createPlayerEntity() {
	g.ECS.SpawnPlayer(g.Config.XP.ForNextLevel(1))
}
