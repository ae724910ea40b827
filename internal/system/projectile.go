// internal/system/projectile.go
package system

import (
	"math"

	"go-bug-smashers/internal/component"
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/entity"
	"go-bug-smashers/internal/event"

	ark "github.com/mlange-42/ark/ecs"
)

// ProjectileSystem стреляет залпами из башни и ведёт снаряды до попадания.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	cfg             config.ProjectileConfig
	xp              config.XPConfig
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, cfg config.ProjectileConfig, xp config.XPConfig) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
		xp:              xp,
	}
}

type volley struct {
	x, y   float64
	amount int
	speed  float64
	damage float64
}

type enemySnapshot struct {
	entity ark.Entity
	pos    component.Position
	col    component.Collider
	health float64
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	enemies := s.snapshotEnemies()
	// Сначала летят уже выпущенные снаряды, новый залп стартует со следующего кадра
	s.fly(deltaTime, enemies)
	s.fire(deltaTime, enemies)
}

func (s *ProjectileSystem) snapshotEnemies() []enemySnapshot {
	var out []enemySnapshot
	query := s.ecs.EnemyFilter.Query()
	for query.Next() {
		pos, _, col, health, _ := query.Get()
		out = append(out, enemySnapshot{entity: query.Entity(), pos: *pos, col: *col, health: health.Value})
	}
	return out
}

func (s *ProjectileSystem) fire(deltaTime float64, enemies []enemySnapshot) {
	var volleys []volley
	query := s.ecs.EmitterFilter.Query()
	for query.Next() {
		pos, emitter := query.Get()
		if emitter.Interval <= 0 {
			continue
		}
		emitter.Timer += deltaTime
		if emitter.Timer < emitter.Interval {
			continue
		}
		emitter.Timer = 0
		if emitter.Amount <= 0 {
			continue
		}
		volleys = append(volleys, volley{x: pos.X, y: pos.Y, amount: emitter.Amount, speed: emitter.Speed, damage: emitter.Damage})
	}

	for _, v := range volleys {
		target, ok := nearestEnemy(v.x, v.y, enemies)
		if !ok {
			continue
		}
		base := math.Atan2(target.Y-v.y, target.X-v.x)
		for i := 0; i < v.amount; i++ {
			angle := spreadAngle(base, s.cfg.Spread, i, v.amount)
			s.ecs.SpawnProjectile(v.x, v.y,
				math.Cos(angle)*v.speed, math.Sin(angle)*v.speed,
				s.cfg.Radius,
				component.Projectile{Damage: v.damage, TTL: s.cfg.TTL},
				component.Renderable{Color: config.ProjectileColor, Radius: float32(s.cfg.Radius)},
			)
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.VolleyData{Count: v.amount}})
	}
}

type projectileHit struct {
	projectile ark.Entity
	enemy      ark.Entity
	hit        bool // false — снаряд просто истёк
	damage     float64
}

func (s *ProjectileSystem) fly(deltaTime float64, enemies []enemySnapshot) {
	var hits []projectileHit
	query := s.ecs.ProjectileFilter.Query()
	for query.Next() {
		pos, _, col, proj := query.Get()
		proj.TTL -= deltaTime
		if proj.TTL <= 0 {
			hits = append(hits, projectileHit{projectile: query.Entity()})
			continue
		}
		for i := range enemies {
			e := &enemies[i]
			if e.health <= 0 || !col.CollidesWith(*pos, e.col, e.pos) {
				continue
			}
			e.health -= proj.Damage
			hits = append(hits, projectileHit{projectile: query.Entity(), enemy: e.entity, hit: true, damage: proj.Damage})
			break
		}
	}

	for _, h := range hits {
		s.ecs.Despawn(h.projectile)
		if !h.hit {
			continue
		}
		if ApplyDamage(s.ecs, h.enemy, h.damage) {
			killEnemy(s.ecs, s.eventDispatcher, s.xp, h.enemy, event.EnemyKilled)
		}
	}
}

func nearestEnemy(x, y float64, enemies []enemySnapshot) (component.Position, bool) {
	best := math.MaxFloat64
	var target component.Position
	found := false
	for _, e := range enemies {
		if e.health <= 0 {
			continue
		}
		d := math.Hypot(e.pos.X-x, e.pos.Y-y)
		if d < best {
			best = d
			target = e.pos
			found = true
		}
	}
	return target, found
}

// spreadAngle раскладывает n снарядов равномерно по сектору spread вокруг base.
func spreadAngle(base, spread float64, i, n int) float64 {
	if n <= 1 {
		return base
	}
	return base - spread/2 + spread*float64(i)/float64(n-1)
}
