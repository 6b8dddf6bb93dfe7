package system

import (
	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/entity"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

var itemKinds = []component.ItemKind{component.ItemHeal, component.ItemGrenade, component.ItemLaser}

// ItemSpawnSystem places pickups. Fixed mode refills each spawn point after
// its respawn delay; random mode drops a random item on a free point at
// random intervals. A point never holds more than one item.
type ItemSpawnSystem struct {
	tuning *prefabs.Tuning
	logger *zap.Logger
}

func NewItemSpawnSystem(tuning *prefabs.Tuning, logger *zap.Logger) *ItemSpawnSystem {
	if tuning == nil {
		tuning = prefabs.DefaultTuning()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemSpawnSystem{tuning: tuning, logger: logger}
}

func (s *ItemSpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaMS()

	ecs.ForEach(w, component.ItemSpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.ItemSpawner) {
		switch sp.Mode {
		case component.SpawnFixed:
			for i := range sp.Points {
				pt := &sp.Points[i]
				if pt.Occupied {
					continue
				}
				if pt.RespawnMS > 0 {
					pt.RespawnMS -= dt
					if pt.RespawnMS > 0 {
						continue
					}
				}
				kind := pt.Kind
				if kind == 0 {
					kind = itemKinds[w.Rand().Intn(len(itemKinds))]
				}
				s.place(w, sp, i, kind)
			}

		case component.SpawnRandom:
			sp.TimerMS -= dt
			if sp.TimerMS > 0 {
				return
			}
			sp.TimerMS = sp.MinMS
			if sp.MaxMS > sp.MinMS {
				sp.TimerMS += w.Rand().Float64() * (sp.MaxMS - sp.MinMS)
			}
			var free []int
			for i := range sp.Points {
				if !sp.Points[i].Occupied {
					free = append(free, i)
				}
			}
			if len(free) == 0 {
				return
			}
			i := free[w.Rand().Intn(len(free))]
			s.place(w, sp, i, itemKinds[w.Rand().Intn(len(itemKinds))])
		}
	})
}

func (s *ItemSpawnSystem) place(w *ecs.World, sp *component.ItemSpawner, i int, kind component.ItemKind) {
	pt := &sp.Points[i]
	if _, err := entity.NewItem(w, s.tuning, kind, pt.Position, i); err != nil {
		s.logger.Error("spawn item", zap.Int("point", i), zap.Error(err))
		return
	}
	pt.Occupied = true
	pt.RespawnMS = 0
}
