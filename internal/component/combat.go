package component

import "math"

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Alive reports whether the entity still has health left.
func (h *Health) Alive() bool {
	return h.Value > 0
}

// Collider — круглый коллайдер. Только круги: это игра с джема.
type Collider struct {
	Radius float64
}

// CollidesWith проверяет пересечение двух кругов. Касание тоже считается.
func (c Collider) CollidesWith(pos Position, other Collider, otherPos Position) bool {
	dx := otherPos.X - pos.X
	dy := otherPos.Y - pos.Y
	r := c.Radius + other.Radius
	return dx*dx+dy*dy <= r*r
}

// Distance returns the distance between two positions.
func Distance(a, b Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
