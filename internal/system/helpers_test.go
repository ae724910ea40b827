package system

import (
	"testing"

	"go-bug-smashers/internal/component"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/defs"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listenAll(d *event.Dispatcher) *recorder {
	r := &recorder{}
	d.SubscribeAll(r,
		event.EnemySpawned,
		event.EnemySwatted,
		event.EnemyKilled,
		event.EnemyReachedTower,
		event.TowerDamaged,
		event.TowerDestroyed,
		event.SwatMissed,
		event.XPCollected,
		event.LevelUp,
		event.ProjectileFired,
	)
	return r
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default() error: %v", err)
	}
	return cfg
}

func testLibrary(t *testing.T, list ...defs.EnemyDefinition) *defs.Library {
	t.Helper()
	lib, err := defs.NewLibrary(list)
	if err != nil {
		t.Fatalf("NewLibrary() error: %v", err)
	}
	return lib
}

func spawnTestEnemy(ecs *entity.ECS, x, y, radius, health float64, xp int) {
	ecs.SpawnEnemy(x, y,
		component.Enemy{DefID: "BUG_TEST", Damage: 5, XP: xp, Speed: 50},
		health, radius,
		component.Renderable{Radius: float32(radius)},
	)
}

func countSlashes(ecs *entity.ECS) int {
	n := 0
	q := ecs.SlashFilter.Query()
	for q.Next() {
		n++
	}
	return n
}

func approx(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
