// internal/entity/ecs.go
package entity

import (
	"go-bug-smashers/internal/component"

	ark "github.com/mlange-42/ark/ecs"
)

// ECS хранит мир ark и типизированные мапперы компонентов.
// Структурные изменения (создание и удаление сущностей) нельзя делать
// во время итерации запроса: мир в это время заблокирован.
type ECS struct {
	World    *ark.World
	GameTime float64
	Phase    component.Phase

	Positions     *ark.Map[component.Position]
	Velocities    *ark.Map[component.Velocity]
	Colliders     *ark.Map[component.Collider]
	Healths       *ark.Map[component.Health]
	Enemies       *ark.Map[component.Enemy]
	Towers        *ark.Map[component.Tower]
	Swatters      *ark.Map[component.Swatter]
	Experiences   *ark.Map[component.Experience]
	Projectiles   *ark.Map[component.Projectile]
	Emitters      *ark.Map[component.ProjectileEmitter]
	Renderables   *ark.Map[component.Renderable]
	DamageFlashes *ark.Map[component.DamageFlash]
	Slashes       *ark.Map[component.Slash]
	PlayerState   *ark.Map[component.PlayerStateComponent]

	enemyMapper *ark.Map7[
		component.Position,
		component.Velocity,
		component.Collider,
		component.Health,
		component.Enemy,
		component.Renderable,
		component.DamageFlash,
	]
	towerMapper *ark.Map6[
		component.Position,
		component.Collider,
		component.Health,
		component.Tower,
		component.ProjectileEmitter,
		component.DamageFlash,
	]
	swatterMapper    *ark.Map3[component.Position, component.Collider, component.Swatter]
	orbMapper        *ark.Map4[component.Position, component.Collider, component.Experience, component.Renderable]
	projectileMapper *ark.Map5[component.Position, component.Velocity, component.Collider, component.Projectile, component.Renderable]
	slashMapper      *ark.Map2[component.Position, component.Slash]

	// Фильтры для систем
	EnemyFilter      *ark.Filter5[component.Position, component.Velocity, component.Collider, component.Health, component.Enemy]
	TowerFilter      *ark.Filter4[component.Position, component.Collider, component.Health, component.Tower]
	EmitterFilter    *ark.Filter2[component.Position, component.ProjectileEmitter]
	SwatterFilter    *ark.Filter3[component.Position, component.Collider, component.Swatter]
	OrbFilter        *ark.Filter3[component.Position, component.Collider, component.Experience]
	ProjectileFilter *ark.Filter4[component.Position, component.Velocity, component.Collider, component.Projectile]
	MoverFilter      *ark.Filter2[component.Position, component.Velocity]
	RenderFilter     *ark.Filter2[component.Position, component.Renderable]
	FlashFilter      *ark.Filter1[component.DamageFlash]
	SlashFilter      *ark.Filter2[component.Position, component.Slash]
	PlayerFilter     *ark.Filter1[component.PlayerStateComponent]
}

func NewECS() *ECS {
	world := ark.NewWorld()
	return &ECS{
		World: world,
		Phase: component.RunningPhase,

		Positions:     ark.NewMap[component.Position](world),
		Velocities:    ark.NewMap[component.Velocity](world),
		Colliders:     ark.NewMap[component.Collider](world),
		Healths:       ark.NewMap[component.Health](world),
		Enemies:       ark.NewMap[component.Enemy](world),
		Towers:        ark.NewMap[component.Tower](world),
		Swatters:      ark.NewMap[component.Swatter](world),
		Experiences:   ark.NewMap[component.Experience](world),
		Projectiles:   ark.NewMap[component.Projectile](world),
		Emitters:      ark.NewMap[component.ProjectileEmitter](world),
		Renderables:   ark.NewMap[component.Renderable](world),
		DamageFlashes: ark.NewMap[component.DamageFlash](world),
		Slashes:       ark.NewMap[component.Slash](world),
		PlayerState:   ark.NewMap[component.PlayerStateComponent](world),

		enemyMapper: ark.NewMap7[
			component.Position,
			component.Velocity,
			component.Collider,
			component.Health,
			component.Enemy,
			component.Renderable,
			component.DamageFlash,
		](world),
		towerMapper: ark.NewMap6[
			component.Position,
			component.Collider,
			component.Health,
			component.Tower,
			component.ProjectileEmitter,
			component.DamageFlash,
		](world),
		swatterMapper:    ark.NewMap3[component.Position, component.Collider, component.Swatter](world),
		orbMapper:        ark.NewMap4[component.Position, component.Collider, component.Experience, component.Renderable](world),
		projectileMapper: ark.NewMap5[component.Position, component.Velocity, component.Collider, component.Projectile, component.Renderable](world),
		slashMapper:      ark.NewMap2[component.Position, component.Slash](world),

		EnemyFilter:      ark.NewFilter5[component.Position, component.Velocity, component.Collider, component.Health, component.Enemy](world),
		TowerFilter:      ark.NewFilter4[component.Position, component.Collider, component.Health, component.Tower](world),
		EmitterFilter:    ark.NewFilter2[component.Position, component.ProjectileEmitter](world),
		SwatterFilter:    ark.NewFilter3[component.Position, component.Collider, component.Swatter](world),
		OrbFilter:        ark.NewFilter3[component.Position, component.Collider, component.Experience](world),
		ProjectileFilter: ark.NewFilter4[component.Position, component.Velocity, component.Collider, component.Projectile](world),
		MoverFilter:      ark.NewFilter2[component.Position, component.Velocity](world),
		RenderFilter:     ark.NewFilter2[component.Position, component.Renderable](world),
		FlashFilter:      ark.NewFilter1[component.DamageFlash](world),
		SlashFilter:      ark.NewFilter2[component.Position, component.Slash](world),
		PlayerFilter:     ark.NewFilter1[component.PlayerStateComponent](world),
	}
}

// SpawnEnemy создаёт жука в точке (x, y).
func (ecs *ECS) SpawnEnemy(x, y float64, enemy component.Enemy, health float64, radius float64, render component.Renderable) ark.Entity {
	return ecs.enemyMapper.NewEntity(
		&component.Position{X: x, Y: y},
		&component.Velocity{},
		&component.Collider{Radius: radius},
		&component.Health{Value: health, Max: health},
		&enemy,
		&render,
		&component.DamageFlash{},
	)
}

// SpawnTower создаёт башню. Башня всегда одна.
func (ecs *ECS) SpawnTower(x, y, radius, health float64, emitter component.ProjectileEmitter) ark.Entity {
	return ecs.towerMapper.NewEntity(
		&component.Position{X: x, Y: y},
		&component.Collider{Radius: radius},
		&component.Health{Value: health, Max: health},
		&component.Tower{Name: "tower"},
		&emitter,
		&component.DamageFlash{},
	)
}

// SpawnSwatter создаёт мухобойку.
func (ecs *ECS) SpawnSwatter(x, y, radius float64) ark.Entity {
	return ecs.swatterMapper.NewEntity(
		&component.Position{X: x, Y: y},
		&component.Collider{Radius: radius},
		&component.Swatter{LastX: x},
	)
}

// SpawnOrb создаёт сферу опыта.
func (ecs *ECS) SpawnOrb(x, y, radius float64, value int, ttl float64, render component.Renderable) ark.Entity {
	return ecs.orbMapper.NewEntity(
		&component.Position{X: x, Y: y},
		&component.Collider{Radius: radius},
		&component.Experience{Value: value, TTL: ttl},
		&render,
	)
}

// SpawnProjectile создаёт снаряд с заданной скоростью.
func (ecs *ECS) SpawnProjectile(x, y, vx, vy, radius float64, proj component.Projectile, render component.Renderable) ark.Entity {
	return ecs.projectileMapper.NewEntity(
		&component.Position{X: x, Y: y},
		&component.Velocity{X: vx, Y: vy},
		&component.Collider{Radius: radius},
		&proj,
		&render,
	)
}

// SpawnSlash создаёт след удара.
func (ecs *ECS) SpawnSlash(x, y, duration float64) ark.Entity {
	return ecs.slashMapper.NewEntity(
		&component.Position{X: x, Y: y},
		&component.Slash{Duration: duration},
	)
}

// SpawnPlayer создаёт сущность игрока с начальным уровнем.
func (ecs *ECS) SpawnPlayer(xpToNext int) ark.Entity {
	return ecs.PlayerState.NewEntity(&component.PlayerStateComponent{
		Level:         1,
		XPToNextLevel: xpToNext,
	})
}

// Despawn удаляет сущность, если она ещё жива.
func (ecs *ECS) Despawn(e ark.Entity) {
	if ecs.World.Alive(e) {
		ecs.World.RemoveEntity(e)
	}
}

// DespawnAll удаляет набор сущностей, собранный во время итерации.
func (ecs *ECS) DespawnAll(entities []ark.Entity) {
	for _, e := range entities {
		ecs.Despawn(e)
	}
}

// Tower возвращает башню, если она есть.
func (ecs *ECS) Tower() (ark.Entity, *component.Position, *component.Collider, *component.Health, bool) {
	query := ecs.TowerFilter.Query()
	for query.Next() {
		pos, col, health, _ := query.Get()
		e := query.Entity()
		query.Close()
		return e, pos, col, health, true
	}
	return ark.Entity{}, nil, nil, nil, false
}

// Swatter возвращает мухобойку, если она есть.
func (ecs *ECS) Swatter() (ark.Entity, *component.Position, *component.Collider, *component.Swatter, bool) {
	query := ecs.SwatterFilter.Query()
	for query.Next() {
		pos, col, sw := query.Get()
		e := query.Entity()
		query.Close()
		return e, pos, col, sw, true
	}
	return ark.Entity{}, nil, nil, nil, false
}

// Player возвращает состояние игрока, если оно есть.
func (ecs *ECS) Player() (*component.PlayerStateComponent, bool) {
	query := ecs.PlayerFilter.Query()
	for query.Next() {
		ps := query.Get()
		query.Close()
		return ps, true
	}
	return nil, false
}

// EnemyCount возвращает число живых жуков.
func (ecs *ECS) EnemyCount() int {
	n := 0
	query := ecs.EnemyFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// OrbCount возвращает число сфер опыта на поле.
func (ecs *ECS) OrbCount() int {
	n := 0
	query := ecs.OrbFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// ProjectileCount возвращает число летящих снарядов.
func (ecs *ECS) ProjectileCount() int {
	n := 0
	query := ecs.ProjectileFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// ClearEnemies удаляет всех жуков.
func (ecs *ECS) ClearEnemies() {
	var toRemove []ark.Entity
	query := ecs.EnemyFilter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	ecs.DespawnAll(toRemove)
}

// ClearGameplay удаляет всё, что не нужно на экране конца игры:
// жуков, башню, сферы, снаряды и эффекты. Мухобойка и игрок остаются.
func (ecs *ECS) ClearGameplay() {
	var toRemove []ark.Entity

	enemies := ecs.EnemyFilter.Query()
	for enemies.Next() {
		toRemove = append(toRemove, enemies.Entity())
	}
	towers := ecs.TowerFilter.Query()
	for towers.Next() {
		toRemove = append(toRemove, towers.Entity())
	}
	orbs := ecs.OrbFilter.Query()
	for orbs.Next() {
		toRemove = append(toRemove, orbs.Entity())
	}
	projectiles := ecs.ProjectileFilter.Query()
	for projectiles.Next() {
		toRemove = append(toRemove, projectiles.Entity())
	}
	slashes := ecs.SlashFilter.Query()
	for slashes.Next() {
		toRemove = append(toRemove, slashes.Entity())
	}

	ecs.DespawnAll(toRemove)
}
