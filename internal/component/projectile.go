// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд.
type Projectile struct {
	Damage float64
	TTL    float64 // Сколько секунд снаряду осталось жить
}
