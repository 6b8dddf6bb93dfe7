package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

// binding maps one side's keys to an Intent. Moves are held keys; the rest
// fire on the frame the key goes down.
type binding struct {
	side                        component.Side
	left, right, jump           ebiten.Key
	primary, secondary, useItem ebiten.Key
}

var bindings = []binding{
	{
		side: component.SideBlue,
		left: ebiten.KeyA, right: ebiten.KeyD, jump: ebiten.KeyW,
		primary: ebiten.KeyF, secondary: ebiten.KeyG, useItem: ebiten.KeyE,
	},
	{
		side: component.SideRed,
		left: ebiten.KeyArrowLeft, right: ebiten.KeyArrowRight, jump: ebiten.KeyArrowUp,
		primary: ebiten.KeyPeriod, secondary: ebiten.KeySlash, useItem: ebiten.KeyComma,
	},
}

func (b binding) read() component.Intent {
	return component.Intent{
		MoveLeft:      ebiten.IsKeyPressed(b.left),
		MoveRight:     ebiten.IsKeyPressed(b.right),
		Jump:          inpututil.IsKeyJustPressed(b.jump),
		FirePrimary:   inpututil.IsKeyJustPressed(b.primary),
		FireSecondary: inpututil.IsKeyJustPressed(b.secondary),
		UseItem:       inpututil.IsKeyJustPressed(b.useItem),
	}
}

var stageKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

// stageKeyPressed reports the stage index whose number key went down.
func stageKeyPressed() (int, bool) {
	for i, k := range stageKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i, true
		}
	}
	return 0, false
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}
