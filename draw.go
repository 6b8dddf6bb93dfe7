package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/game"
)

var backgrounds = map[string]color.RGBA{
	"city":        colornames.Midnightblue,
	"desert":      colornames.Sandybrown,
	"icemountain": colornames.Lightsteelblue,
	"scifi":       colornames.Darkslategray,
}

func sideColor(s component.Side) color.RGBA {
	switch s {
	case component.SideBlue:
		return colornames.Royalblue
	case component.SideRed:
		return colornames.Crimson
	default:
		return colornames.White
	}
}

func spriteColor(r game.Renderable) color.Color {
	var c color.RGBA
	switch r.Kind {
	case component.SpritePlayer, component.SpriteBullet, component.SpriteBuckshot:
		c = sideColor(r.Side)
	case component.SpriteBlock:
		c = colornames.Dimgray
	case component.SpritePortal:
		c = colornames.Mediumpurple
		if r.Highlight {
			c = colornames.Violet
		}
	case component.SpriteLaser:
		c = colornames.Gold
	case component.SpriteGrenade:
		c = colornames.Darkolivegreen
	case component.SpriteExplosion:
		c = colornames.Orange
		c.A = 160
	case component.SpriteItem:
		c = itemColor(component.ItemKind(r.Variant))
	case component.SpriteHazard:
		c = colornames.Slategray
	case component.SpriteBeam:
		c = colornames.Red
		c.A = 200
	default:
		c = colornames.Magenta
	}
	return c
}

func itemColor(k component.ItemKind) color.RGBA {
	switch k {
	case component.ItemHeal:
		return colornames.Limegreen
	case component.ItemGrenade:
		return colornames.Olive
	case component.ItemLaser:
		return colornames.Yellow
	default:
		return colornames.White
	}
}

// drawArena paints the background, every renderable as a box and the
// death-timer darkening on top.
func drawArena(screen *ebiten.Image, g *game.Game) {
	bg, ok := backgrounds[g.Stages()[g.Stage()].Background]
	if !ok {
		bg = colornames.Black
	}
	screen.Fill(bg)

	for _, r := range g.Renderables() {
		drawBox(screen, r)
	}

	if d := g.Screen().DarkenFactor; d > 0 {
		b := screen.Bounds()
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: uint8(200 * d)}, false)
	}
}

// drawBox draws r centred on its position. Rotated boxes are drawn as a
// thick line along their long axis.
func drawBox(screen *ebiten.Image, r game.Renderable) {
	w, h := math.Abs(r.Scale.X), math.Abs(r.Scale.Y)
	clr := spriteColor(r)
	if math.Abs(r.Angle) < 1e-9 {
		vector.FillRect(screen, float32(r.Position.X-w/2), float32(r.Position.Y-h/2), float32(w), float32(h), clr, false)
		return
	}
	cos, sin := math.Cos(r.Angle), math.Sin(r.Angle)
	dx, dy := cos*w/2, sin*w/2
	vector.StrokeLine(screen,
		float32(r.Position.X-dx), float32(r.Position.Y-dy),
		float32(r.Position.X+dx), float32(r.Position.Y+dy),
		float32(h), clr, true)
}
