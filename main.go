package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/config"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/game"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/levels"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/record"
)

func main() {
	configPath := flag.String("config", "arena.toml", "path to the TOML config")
	stage := flag.Int("stage", -1, "stage index to start on (overrides config)")
	watch := flag.Bool("watch", false, "reload tuning and stages when their files change")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *stage >= 0 {
		cfg.Simulation.Stage = *stage
	}
	if *watch {
		cfg.Content.Watch = true
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	prefabs.Dir = cfg.Content.PrefabsDir
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		logger.Fatal("load tuning", zap.Error(err))
	}
	stages, err := levels.Load(cfg.Content.StagesDir)
	if err != nil {
		logger.Fatal("load stages", zap.Error(err))
	}

	g, err := game.New(game.Options{
		Tuning:     tuning,
		Stages:     stages,
		Stage:      cfg.Simulation.Stage,
		Rounds:     cfg.Match.Rounds,
		Seed:       cfg.Simulation.Seed,
		MaxStepMS:  cfg.Simulation.MaxStepMS,
		MaxFrameMS: cfg.Simulation.MaxFrameMS,
		Recorder:   record.NewStore(cfg.Match.RecordsPath, cfg.Match.RecordsKeep),
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}

	app := newApp(g, cfg, logger)
	if cfg.Content.Watch {
		w, err := prefabs.NewWatcher(watchDirs(cfg)...)
		if err != nil {
			logger.Warn("file watching disabled", zap.Error(err))
		} else {
			defer w.Close()
			app.watcher = w
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}

func watchDirs(cfg *config.Config) []string {
	var dirs []string
	for _, d := range []string{cfg.Content.PrefabsDir, cfg.Content.StagesDir} {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
