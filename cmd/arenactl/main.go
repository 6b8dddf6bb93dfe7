// Command arenactl checks content and runs headless matches without a window.
//
//	arenactl validate [-stages dir] [-prefabs dir]
//	arenactl records [-file match_records.txt]
//	arenactl sim [-stage n] [-seconds s] [-seed n] [-fire ms]
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/config"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/system"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/game"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/levels"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/record"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	logger, err := config.NewLogger(config.LoggingConfig{Level: os.Getenv("ARENA_LOG"), Format: "console"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch os.Args[1] {
	case "validate":
		err = validate(os.Args[2:], logger)
	case "records":
		err = records(os.Args[2:])
	case "sim":
		err = simulate(os.Args[2:], logger)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error(os.Args[1], zap.Error(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: arenactl validate|records|sim [flags]")
}

func validate(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	stagesDir := fs.String("stages", "levels", "stage directory")
	prefabsDir := fs.String("prefabs", "prefabs", "tuning directory")
	_ = fs.Parse(args)

	prefabs.Dir = *prefabsDir
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}
	if tuning.Hazard.InRangeScript != "" {
		if _, err := system.CompileRangeScript(tuning.Hazard.InRangeScript); err != nil {
			return fmt.Errorf("hazard in_range_script: %w", err)
		}
	}
	table, err := levels.Load(*stagesDir)
	if err != nil {
		return err
	}
	if err := table.Validate(tuning.Arena.Width, tuning.Arena.Height); err != nil {
		return err
	}
	for i, st := range table {
		logger.Info("stage ok",
			zap.Int("index", i),
			zap.String("name", st.Name),
			zap.Int("platforms", len(st.Platforms)),
			zap.Int("portal_pairs", len(st.Portals)),
			zap.Bool("hazard", st.Hazard),
			zap.Bool("practice", st.Practice),
		)
	}
	return nil
}

func records(args []string) error {
	fs := flag.NewFlagSet("records", flag.ExitOnError)
	file := fs.String("file", "match_records.txt", "records file")
	_ = fs.Parse(args)

	sums, err := record.NewStore(*file, record.DefaultKeep).Load()
	if err != nil {
		return err
	}
	if len(sums) == 0 {
		fmt.Println("no matches recorded")
		return nil
	}
	for i, s := range sums {
		winner := "draw"
		switch {
		case s.BlueLost < s.RedLost:
			winner = "blue"
		case s.RedLost < s.BlueLost:
			winner = "red"
		}
		fmt.Printf("%2d  blue lost %d  red lost %d  %s\n", i+1, s.BlueLost, s.RedLost, winner)
	}
	return nil
}

// simulate runs a match where both players stand still and fire their
// pistols on a fixed cadence.
func simulate(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	stage := fs.Int("stage", 0, "stage index")
	seconds := fs.Float64("seconds", 60, "simulated time")
	seed := fs.Int64("seed", 1, "random seed")
	fireMS := fs.Float64("fire", 500, "pistol cadence in ms, 0 disables")
	_ = fs.Parse(args)

	g, err := game.New(game.Options{Stage: *stage, Seed: *seed, Logger: logger})
	if err != nil {
		return err
	}
	counts := map[ecs.EventType]int{}
	g.Subscribe(func(ev ecs.Event) {
		counts[ev.Type]++
		if d, ok := ev.Data.(system.MatchEnded); ok {
			logger.Info("match ended", zap.Stringer("winner", d.Winner), zap.Ints("wins", d.Wins[:]))
		}
	})

	const frame = 1000.0 / 60
	var sinceFire float64
	for t := 0.0; t < *seconds*1000; t += frame {
		sinceFire += frame
		fire := *fireMS > 0 && sinceFire >= *fireMS
		if fire {
			sinceFire = 0
		}
		for _, side := range []component.Side{component.SideBlue, component.SideRed} {
			g.SetIntent(side, component.Intent{FirePrimary: fire})
		}
		g.Step(frame)
	}

	m := g.Match()
	fmt.Printf("stage %s  blue %d  red %d  rounds left %d\n",
		g.Stages()[g.Stage()].Name, m.Wins[component.SideBlue.Index()], m.Wins[component.SideRed.Index()], m.RoundsRemaining)
	for _, t := range []ecs.EventType{
		system.EventWeaponFired, system.EventDamageApplied, system.EventItemPickedUp,
		system.EventTeleported, system.EventHazardFired, system.EventRoundEnded, system.EventMatchEnded,
	} {
		fmt.Printf("  %-16s %d\n", t, counts[t])
	}
	return nil
}
