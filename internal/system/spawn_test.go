package system

import (
	"math"
	"testing"

	"go-bug-smashers/internal/component"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/defs"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"
	"go-bug-smashers/internal/utils"

	"go.uber.org/zap"
)

var testAnt = defs.EnemyDefinition{ID: "BUG_ANT", Health: 100, Speed: 60, Radius: 12, Damage: 5, XP: 1, Weight: 1}

func newSpawnFixture(t *testing.T, spawnCfg config.SpawnConfig, diffCfg config.DifficultyConfig, list ...defs.EnemyDefinition) (*entity.ECS, *SpawnSystem, *recorder) {
	t.Helper()
	ecs := entity.NewECS()
	ecs.SpawnTower(640, 360, 16, 100, component.ProjectileEmitter{})
	dispatcher := event.NewDispatcher()
	rec := listenAll(dispatcher)
	difficulty := NewDifficultyManager(diffCfg, spawnCfg)
	s := NewSpawnSystem(ecs, testLibrary(t, list...), difficulty, utils.NewPRNGService(42), dispatcher, spawnCfg, zap.NewNop())
	return ecs, s, rec
}

func TestSpawnWaitsForInterval(t *testing.T) {
	spawnCfg := config.SpawnConfig{InitialInterval: 1, MinInterval: 1, RadiusX: 100, RadiusY: 50}
	ecs, s, rec := newSpawnFixture(t, spawnCfg, config.DifficultyConfig{}, testAnt)

	s.Update(0.5, 0.5)
	if n := ecs.EnemyCount(); n != 0 {
		t.Fatalf("spawned %d enemies before the interval elapsed", n)
	}

	s.Update(0.6, 1.1)
	if n := ecs.EnemyCount(); n != 1 {
		t.Fatalf("EnemyCount() = %d, want 1", n)
	}
	if rec.count(event.EnemySpawned) != 1 || s.Spawned() != 1 {
		t.Errorf("EnemySpawned events = %d, Spawned() = %d", rec.count(event.EnemySpawned), s.Spawned())
	}

	q := ecs.EnemyFilter.Query()
	for q.Next() {
		pos, _, col, health, enemy := q.Get()
		nx := (pos.X - 640) / 100
		ny := (pos.Y - 360) / 50
		if d := nx*nx + ny*ny; math.Abs(d-1) > 1e-9 {
			t.Errorf("spawn point (%v, %v) is not on the ellipse", pos.X, pos.Y)
		}
		if col.Radius != 12 || health.Value != 100 || enemy.DefID != "BUG_ANT" {
			t.Errorf("unexpected enemy: radius=%v health=%v def=%q", col.Radius, health.Value, enemy.DefID)
		}
	}
}

func TestSpawnRespectsMaxEnemies(t *testing.T) {
	spawnCfg := config.SpawnConfig{InitialInterval: 1, MinInterval: 1, RadiusX: 100, RadiusY: 100, MaxEnemies: 2}
	ecs, s, _ := newSpawnFixture(t, spawnCfg, config.DifficultyConfig{}, testAnt)

	for i := 0; i < 5; i++ {
		s.Update(1, float64(i))
	}
	if n := ecs.EnemyCount(); n != 2 {
		t.Errorf("EnemyCount() = %d, want 2", n)
	}
}

func TestSpawnOnlyUnlockedTemplates(t *testing.T) {
	late := defs.EnemyDefinition{ID: "BUG_LATE", Health: 10, Speed: 10, Radius: 5, Weight: 1000, UnlockAt: 100}
	spawnCfg := config.SpawnConfig{InitialInterval: 1, MinInterval: 1, RadiusX: 100, RadiusY: 100}
	ecs, s, _ := newSpawnFixture(t, spawnCfg, config.DifficultyConfig{}, testAnt, late)

	for i := 0; i < 20; i++ {
		s.Update(1, 10)
	}
	q := ecs.EnemyFilter.Query()
	for q.Next() {
		_, _, _, _, enemy := q.Get()
		if enemy.DefID != "BUG_ANT" {
			t.Errorf("spawned locked template %q", enemy.DefID)
		}
	}
}

func TestSpawnFallsBackToFirstTemplate(t *testing.T) {
	locked := defs.EnemyDefinition{ID: "BUG_LOCKED", Health: 10, Speed: 10, Radius: 5, Weight: 1, UnlockAt: 50}
	spawnCfg := config.SpawnConfig{InitialInterval: 1, MinInterval: 1, RadiusX: 100, RadiusY: 100}
	ecs, s, _ := newSpawnFixture(t, spawnCfg, config.DifficultyConfig{}, locked)

	s.Update(1, 0)
	if n := ecs.EnemyCount(); n != 1 {
		t.Fatalf("EnemyCount() = %d, want 1", n)
	}
}

func TestSpawnAppliesHealthMultiplier(t *testing.T) {
	spawnCfg := config.SpawnConfig{InitialInterval: 1, MinInterval: 1, RadiusX: 100, RadiusY: 100}
	diffCfg := config.DifficultyConfig{Enabled: true, InitialLevel: 1, RampSeconds: 10, HealthMultiplier: 1}
	ecs, s, _ := newSpawnFixture(t, spawnCfg, diffCfg, testAnt)

	s.Update(1, 0)
	q := ecs.EnemyFilter.Query()
	for q.Next() {
		_, _, _, health, _ := q.Get()
		if health.Value != 200 || health.Max != 200 {
			t.Errorf("health = %+v, want 200/200", *health)
		}
	}
}

func TestSpawnWithoutTower(t *testing.T) {
	spawnCfg := config.SpawnConfig{InitialInterval: 1, MinInterval: 1, RadiusX: 100, RadiusY: 100}
	ecs := entity.NewECS()
	difficulty := NewDifficultyManager(config.DifficultyConfig{}, spawnCfg)
	s := NewSpawnSystem(ecs, testLibrary(t, testAnt), difficulty, utils.NewPRNGService(1), event.NewDispatcher(), spawnCfg, zap.NewNop())

	s.Update(2, 0)
	if ecs.EnemyCount() != 0 {
		t.Error("enemy spawned without a tower")
	}
}
