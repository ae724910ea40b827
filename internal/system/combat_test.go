package system

import (
	"testing"

	"go-bug-smashers/internal/component"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"

	"go.uber.org/zap"
)

func newContactFixture(towerHealth float64) (*entity.ECS, *TowerContactSystem, *recorder) {
	ecs := entity.NewECS()
	ecs.SpawnTower(0, 0, 16, towerHealth, component.ProjectileEmitter{})
	dispatcher := event.NewDispatcher()
	rec := listenAll(dispatcher)
	NewStateSystem(ecs, dispatcher, zap.NewNop())
	return ecs, NewTowerContactSystem(ecs, dispatcher, zap.NewNop()), rec
}

func TestTowerContactTouchingCounts(t *testing.T) {
	ecs, s, rec := newContactFixture(100)
	// 16 + 4 == 20: круги касаются
	ecs.SpawnEnemy(20, 0, component.Enemy{DefID: "BUG_ANT", Damage: 5}, 10, 4, component.Renderable{})

	s.Update()

	towerID, _, _, health, _ := ecs.Tower()
	if health.Value != 95 {
		t.Errorf("tower health = %v, want 95", health.Value)
	}
	if ecs.EnemyCount() != 0 {
		t.Error("enemy was not despawned on contact")
	}
	if rec.count(event.EnemyReachedTower) != 1 || rec.count(event.TowerDamaged) != 1 {
		t.Errorf("events: reached=%d damaged=%d", rec.count(event.EnemyReachedTower), rec.count(event.TowerDamaged))
	}
	if !ecs.DamageFlashes.Get(towerID).Active() {
		t.Error("tower should flash after taking damage")
	}
}

func TestTowerContactIgnoresDistantEnemies(t *testing.T) {
	ecs, s, rec := newContactFixture(100)
	ecs.SpawnEnemy(30, 0, component.Enemy{Damage: 5}, 10, 4, component.Renderable{})

	s.Update()

	if ecs.EnemyCount() != 1 || len(rec.events) != 0 {
		t.Errorf("unexpected contact: enemies=%d events=%d", ecs.EnemyCount(), len(rec.events))
	}
}

func TestTowerDestroyedOnce(t *testing.T) {
	ecs, s, rec := newContactFixture(10)
	ecs.SpawnEnemy(5, 0, component.Enemy{Damage: 8}, 10, 4, component.Renderable{})
	ecs.SpawnEnemy(-5, 0, component.Enemy{Damage: 8}, 10, 4, component.Renderable{})

	s.Update()

	_, _, _, health, _ := ecs.Tower()
	if health.Value != 0 {
		t.Errorf("tower health = %v, want clamped 0", health.Value)
	}
	if !s.Destroyed() {
		t.Error("Destroyed() = false")
	}
	if ecs.Phase != component.OverPhase {
		t.Errorf("phase = %v, want over", ecs.Phase)
	}

	ecs.SpawnEnemy(0, 5, component.Enemy{Damage: 8}, 10, 4, component.Renderable{})
	s.Update()

	if n := rec.count(event.TowerDestroyed); n != 1 {
		t.Errorf("TowerDestroyed dispatched %d times, want 1", n)
	}
}

func TestApplyDamage(t *testing.T) {
	ecs := entity.NewECS()
	e := ecs.SpawnEnemy(0, 0, component.Enemy{}, 100, 5, component.Renderable{})

	if ApplyDamage(ecs, e, 40) {
		t.Error("enemy with 60 hp reported dead")
	}
	if !ApplyDamage(ecs, e, 80) {
		t.Error("enemy should be dead")
	}
	if v := ecs.Healths.Get(e).Value; v != 0 {
		t.Errorf("health = %v, want 0", v)
	}

	ecs.Despawn(e)
	if ApplyDamage(ecs, e, 10) {
		t.Error("ApplyDamage on a despawned entity reported a kill")
	}
}
