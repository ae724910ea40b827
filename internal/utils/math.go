// internal/utils/math.go
package utils

import (
	"fmt"
	"math"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// PointOnEllipse возвращает точку на эллипсе с центром (cx, cy).
func PointOnEllipse(cx, cy, rx, ry, angle float64) (float64, float64) {
	return cx + math.Cos(angle)*rx, cy + math.Sin(angle)*ry
}

// FormatClock форматирует секунды как "MM : SS".
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d : %02d", total/60, total%60)
}
