package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/config"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/system"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/game"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/levels"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

// app adapts the simulation to ebiten: keyboard in, rectangles out.
type app struct {
	game    *game.Game
	cfg     *config.Config
	logger  *zap.Logger
	watcher *prefabs.Watcher

	last     time.Time
	paused   bool
	banner   string
	bannerMS float64
}

func newApp(g *game.Game, cfg *config.Config, logger *zap.Logger) *app {
	a := &app{game: g, cfg: cfg, logger: logger}
	g.Subscribe(a.onEvent)
	return a
}

func (a *app) Update() error {
	now := time.Now()
	elapsed := 1000.0 / float64(ebiten.TPS())
	if !a.last.IsZero() {
		elapsed = float64(now.Sub(a.last)) / float64(time.Millisecond)
	}
	a.last = now

	a.pollWatcher()
	if i, ok := stageKeyPressed(); ok {
		if err := a.game.SelectStage(i); err != nil {
			a.logger.Warn("select stage", zap.Int("index", i), zap.Error(err))
		}
	}
	if pausePressed() {
		a.paused = !a.paused
	}
	if a.paused {
		return nil
	}

	for _, b := range bindings {
		a.game.SetIntent(b.side, b.read())
	}
	a.game.Step(elapsed)
	a.bannerMS -= elapsed
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	drawArena(screen, a.game)

	m := a.game.Match()
	lines := []string{
		fmt.Sprintf("stage %d/%d %s", a.game.Stage()+1, len(a.game.Stages()), a.game.Stages()[a.game.Stage()].Name),
		fmt.Sprintf("blue %d  red %d  rounds left %d", m.Wins[component.SideBlue.Index()], m.Wins[component.SideRed.Index()], m.RoundsRemaining),
	}
	for _, side := range []component.Side{component.SideBlue, component.SideRed} {
		if e, ok := a.game.Player(side); ok {
			lines = append(lines, playerLine(a.game.World(), e, side))
		}
	}
	if m.Practice {
		lines = append(lines, "practice")
	}
	if a.paused {
		lines = append(lines, "paused (P)")
	}
	if a.bannerMS > 0 {
		lines = append(lines, a.banner)
	}
	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

func (a *app) onEvent(ev ecs.Event) {
	switch d := ev.Data.(type) {
	case system.RoundEnded:
		a.announce(fmt.Sprintf("%s takes the round", d.Winner))
	case system.MatchEnded:
		if d.Winner == component.SideNone {
			a.announce("match drawn")
		} else {
			a.announce(fmt.Sprintf("%s wins the match", d.Winner))
		}
	}
}

func (a *app) announce(msg string) {
	a.banner = msg
	a.bannerMS = 3000
	a.logger.Info(msg)
}

// pollWatcher applies pending file changes without blocking the frame.
func (a *app) pollWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			a.reload(name)
		case err, ok := <-a.watcher.Errors:
			if ok {
				a.logger.Warn("watch", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (a *app) reload(name string) {
	if sameDir(name, a.cfg.Content.StagesDir) {
		stages, err := levels.Load(a.cfg.Content.StagesDir)
		if err == nil {
			err = a.game.ReloadStages(stages)
		}
		if err != nil {
			a.logger.Warn("reload stages", zap.String("file", name), zap.Error(err))
			return
		}
		a.logger.Info("stages reloaded", zap.String("file", name))
		return
	}
	t, err := prefabs.LoadTuning()
	if err != nil {
		a.logger.Warn("reload tuning", zap.String("file", name), zap.Error(err))
		return
	}
	a.game.ReloadTuning(t)
	a.logger.Info("tuning reloaded", zap.String("file", name))
}

func sameDir(file, dir string) bool {
	if dir == "" {
		return false
	}
	a, err1 := filepath.Abs(filepath.Dir(file))
	b, err2 := filepath.Abs(dir)
	return err1 == nil && err2 == nil && a == b
}

func playerLine(w *ecs.World, e ecs.Entity, side component.Side) string {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return ""
	}
	line := fmt.Sprintf("%s hp %d/%d", side, p.Health, p.MaxHealth)
	if wp, ok := ecs.Get(w, e, component.WeaponsComponent.Kind()); ok {
		line += fmt.Sprintf("  pistol %d/%d  shotgun %d/%d", wp.Primary.Ammo, wp.Primary.MaxAmmo, wp.Secondary.Ammo, wp.Secondary.MaxAmmo)
	}
	if kinds := p.Items.Items(); len(kinds) > 0 {
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		line += "  items " + strings.Join(names, ",")
	}
	return line
}
