// pkg/render/entity_renderer.go
package render

import (
	"math"

	"go-bug-smashers/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gridStep = 40

// EntityRenderer рисует сущности мира
type EntityRenderer struct {
	ecs     *entity.ECS
	palette Palette
}

func NewEntityRenderer(ecs *entity.ECS, palette Palette) *EntityRenderer {
	return &EntityRenderer{ecs: ecs, palette: palette}
}

// DrawBackground заливает фон и рисует сетку.
func (r *EntityRenderer) DrawBackground(screen *ebiten.Image) {
	screen.Fill(r.palette.Background)
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	for x := float32(0); x < w; x += gridStep {
		vector.StrokeLine(screen, x, 0, x, h, 1, r.palette.Grid, false)
	}
	for y := float32(0); y < h; y += gridStep {
		vector.StrokeLine(screen, 0, y, w, y, 1, r.palette.Grid, false)
	}
}

// Draw рисует башню, сферы, жуков, снаряды и следы ударов.
func (r *EntityRenderer) Draw(screen *ebiten.Image, gameTime float64) {
	r.drawTower(screen)
	r.drawRenderables(screen, gameTime)
	r.drawSlashes(screen)
}

func (r *EntityRenderer) drawTower(screen *ebiten.Image) {
	query := r.ecs.TowerFilter.Query()
	for query.Next() {
		pos, col, _, _ := query.Get()
		e := query.Entity()
		clr := r.palette.Tower
		if r.ecs.DamageFlashes.Has(e) && r.ecs.DamageFlashes.Get(e).Active() {
			clr = r.palette.Damage
		}
		x, y, radius := float32(pos.X), float32(pos.Y), float32(col.Radius)
		vector.DrawFilledCircle(screen, x, y, radius+r.palette.StrokeWidth, r.palette.Stroke, true)
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
		vector.DrawFilledCircle(screen, x, y, radius*0.45, DarkenColor(clr), true)
	}
}

func (r *EntityRenderer) drawRenderables(screen *ebiten.Image, gameTime float64) {
	query := r.ecs.RenderFilter.Query()
	for query.Next() {
		pos, render := query.Get()
		e := query.Entity()
		clr := render.Color
		if r.ecs.DamageFlashes.Has(e) && r.ecs.DamageFlashes.Get(e).Active() {
			clr = r.palette.Damage
		}
		radius := render.Radius
		// Сферы опыта пульсируют
		if r.ecs.Experiences.Has(e) {
			radius *= float32(1 + 0.15*math.Sin(gameTime*2*math.Pi))
		}
		x, y := float32(pos.X), float32(pos.Y)
		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, radius+r.palette.StrokeWidth, r.palette.Stroke, true)
		}
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	}
}

func (r *EntityRenderer) drawSlashes(screen *ebiten.Image) {
	query := r.ecs.SlashFilter.Query()
	for query.Next() {
		pos, slash := query.Get()
		p := slash.Progress()
		clr := FadeColor(r.palette.Slash, 1-p)
		radius := float32(10 + 30*p)
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), radius, 3, clr, true)
	}
}

// DrawSwatter рисует мухобойку; flip разворачивает рукоять вправо.
func (r *EntityRenderer) DrawSwatter(screen *ebiten.Image, size float32) {
	query := r.ecs.SwatterFilter.Query()
	for query.Next() {
		pos, _, sw := query.Get()
		x, y := float32(pos.X), float32(pos.Y)
		half := size / 2
		dir := float32(-1)
		if sw.FlipX {
			dir = 1
		}
		// Рукоять
		vector.StrokeLine(screen, x, y, x+dir*size, y+size, 4, r.palette.Swatter, true)
		// Сетка
		vector.DrawFilledRect(screen, x-half, y-half, size, size, r.palette.SwatterMesh, true)
		vector.StrokeRect(screen, x-half, y-half, size, size, 2, r.palette.Swatter, true)
		for i := float32(1); i < 4; i++ {
			off := -half + i*size/4
			vector.StrokeLine(screen, x+off, y-half, x+off, y+half, 1, r.palette.Swatter, false)
			vector.StrokeLine(screen, x-half, y+off, x+half, y+off, 1, r.palette.Swatter, false)
		}
	}
}
