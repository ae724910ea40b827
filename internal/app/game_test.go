package app

import (
	"testing"

	"go-bug-smashers/internal/component"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/defs"
	"go-bug-smashers/internal/system"

	"go.uber.org/zap"
)

func newTestGame(t *testing.T, seed int64, mutate func(*config.Config)) *Game {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default() error: %v", err)
	}
	if mutate != nil {
		mutate(cfg)
	}
	lib, err := defs.NewLibrary(cfg.Enemies)
	if err != nil {
		t.Fatalf("NewLibrary() error: %v", err)
	}
	return NewGame(cfg, lib, zap.NewNop(), seed)
}

func TestNewGameSetsUpSession(t *testing.T) {
	g := newTestGame(t, 7, nil)

	_, pos, _, health, ok := g.ECS.Tower()
	if !ok {
		t.Fatal("tower not placed")
	}
	if pos.X != 640 || pos.Y != 360 || health.Value != g.Config.Tower.Health {
		t.Errorf("tower at %+v with %v hp", *pos, health.Value)
	}
	if _, _, _, _, ok := g.ECS.Swatter(); !ok {
		t.Error("swatter not created")
	}
	if p := g.Player(); p.Level != 1 || p.XPToNextLevel != g.Config.XP.ForNextLevel(1) {
		t.Errorf("player = %+v", p)
	}
	if g.TimerText() != "00 : 00" {
		t.Errorf("TimerText() = %q", g.TimerText())
	}
	if g.Rng.Seed() != 7 {
		t.Errorf("seed = %d, want 7", g.Rng.Seed())
	}
}

func TestUpdateClampsDeltaTime(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.Update(5, system.PointerInput{})
	if got := g.Timer.Elapsed(); got != config.MaxDeltaTime {
		t.Errorf("elapsed = %v, want %v", got, config.MaxDeltaTime)
	}
}

func TestEnemiesSpawnAndApproach(t *testing.T) {
	g := newTestGame(t, 3, nil)
	for i := 0; i < 120; i++ {
		g.Update(1.0/60, system.PointerInput{})
	}
	if g.ECS.EnemyCount() == 0 {
		t.Fatal("no enemies spawned after two seconds")
	}

	q := g.ECS.EnemyFilter.Query()
	for q.Next() {
		pos, vel, _, _, _ := q.Get()
		dx, dy := 640-pos.X, 360-pos.Y
		if dx*vel.X+dy*vel.Y <= 0 {
			t.Errorf("enemy at %+v is not heading to the tower (vel %+v)", *pos, *vel)
		}
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() (int, []component.Position) {
		g := newTestGame(t, 99, nil)
		for i := 0; i < 300; i++ {
			g.Update(1.0/60, system.PointerInput{})
		}
		var positions []component.Position
		q := g.ECS.EnemyFilter.Query()
		for q.Next() {
			pos, _, _, _, _ := q.Get()
			positions = append(positions, *pos)
		}
		return g.SpawnSystem.Spawned(), positions
	}

	n1, p1 := run()
	n2, p2 := run()
	if n1 != n2 || len(p1) != len(p2) {
		t.Fatalf("runs differ: %d/%d spawned, %d/%d alive", n1, n2, len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("enemy %d: %+v != %+v", i, p1[i], p2[i])
		}
	}
}

func TestGameOverWhenTowerFalls(t *testing.T) {
	g := newTestGame(t, 5, func(c *config.Config) { c.Tower.Health = 5 })
	g.ECS.SpawnEnemy(640, 360, component.Enemy{DefID: "BUG_ANT", Damage: 10}, 10, 8, component.Renderable{})

	g.Update(0.016, system.PointerInput{})

	if !g.Over() {
		t.Fatal("Over() = false after the tower lost all health")
	}
	if hp, _ := g.TowerHealth(); hp != 0 {
		t.Errorf("tower health = %v, want 0", hp)
	}

	before := g.Timer.Elapsed()
	g.Update(0.016, system.PointerInput{})
	if g.Timer.Elapsed() != before {
		t.Error("timer advanced after game over")
	}

	res := g.Result()
	if res.SurvivedSeconds != before || res.Level != 1 || res.Seed != 5 {
		t.Errorf("Result() = %+v", res)
	}

	g.ClearGameplay()
	if g.ECS.EnemyCount() != 0 {
		t.Error("enemies left after ClearGameplay")
	}
	if _, _, _, _, ok := g.ECS.Tower(); ok {
		t.Error("tower left after ClearGameplay")
	}
}

func TestSwatThroughUpdate(t *testing.T) {
	g := newTestGame(t, 11, nil)
	g.ECS.SpawnEnemy(100, 100, component.Enemy{DefID: "BUG_ANT", XP: 1, Speed: 0}, 50, 10, component.Renderable{})

	g.Update(0.016, system.PointerInput{X: 100, Y: 100, Inside: true, JustPressed: true})

	if res := g.Result(); res.Kills != 1 {
		t.Errorf("Kills = %d, want 1", res.Kills)
	}
	// Сфера падает под мухобойку и подбирается на том же кадре
	if p := g.Player(); p.CurrentXP != 1 {
		t.Errorf("CurrentXP = %d, want 1", p.CurrentXP)
	}
}
