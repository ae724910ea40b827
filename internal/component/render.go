// internal/component/render.go
package component

import "image/color"

// Renderable — круг, которым рисуются жуки, сферы опыта и снаряды.
// Башня и мухобойка рисуются отдельно и этого компонента не имеют.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool // белая обводка вокруг круга
}
