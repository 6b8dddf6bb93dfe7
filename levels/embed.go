package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

//go:embed *.yaml
var LevelsFS embed.FS

var ErrInvalidStage = errors.New("levels: invalid stage")

// Stage describes one arena layout. Coordinates are centers in world units
// with y growing downward.
type Stage struct {
	Name       string       `yaml:"name"`
	Background string       `yaml:"background"`
	Practice   bool         `yaml:"practice"`
	Hazard     bool         `yaml:"hazard"`
	ItemMode   string       `yaml:"item_mode"`
	Ground     Rect         `yaml:"ground"`
	Platforms  []Platform   `yaml:"platforms"`
	Portals    []PortalPair `yaml:"portals"`
	ItemSpawns []ItemSpawn  `yaml:"item_spawns"`
	Spawns     Spawns       `yaml:"spawns"`
}

type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Platform struct {
	Rect   `yaml:",inline"`
	Moving string  `yaml:"moving"`
	Speed  float64 `yaml:"speed"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

type PortalPair struct {
	A Point `yaml:"a"`
	B Point `yaml:"b"`
}

type ItemSpawn struct {
	Point `yaml:",inline"`
	Kind  string `yaml:"kind"`
}

type Spawns struct {
	Blue Point `yaml:"blue"`
	Red  Point `yaml:"red"`
}

// Table is the ordered set of selectable stages.
type Table []Stage

// SpawnMode returns the item spawn mode of the stage.
func (s *Stage) SpawnMode() component.SpawnMode {
	if s.ItemMode == "random" {
		return component.SpawnRandom
	}
	return component.SpawnFixed
}

// Validate checks the stage against the arena size.
func (s *Stage) Validate(width, height float64) error {
	if s.Ground.W <= 0 || s.Ground.H <= 0 {
		return fmt.Errorf("%w: %q ground has no area", ErrInvalidStage, s.Name)
	}
	for i, p := range s.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: %q platform %d has no area", ErrInvalidStage, s.Name, i)
		}
		mode, ok := component.ParseMoveMode(p.Moving)
		if !ok {
			return fmt.Errorf("%w: %q platform %d has unknown moving mode %q", ErrInvalidStage, s.Name, i, p.Moving)
		}
		if mode != component.Stationary && p.Max != 0 && p.Min >= p.Max {
			return fmt.Errorf("%w: %q platform %d bounds [%v, %v]", ErrInvalidStage, s.Name, i, p.Min, p.Max)
		}
	}
	for i, sp := range s.ItemSpawns {
		if sp.Kind == "" || sp.Kind == "random" {
			continue
		}
		if _, ok := component.ParseItemKind(sp.Kind); !ok {
			return fmt.Errorf("%w: %q item spawn %d has unknown kind %q", ErrInvalidStage, s.Name, i, sp.Kind)
		}
	}
	switch s.ItemMode {
	case "", "fixed", "random":
	default:
		return fmt.Errorf("%w: %q item mode %q", ErrInvalidStage, s.Name, s.ItemMode)
	}
	for _, pt := range []Point{s.Spawns.Blue, s.Spawns.Red} {
		if pt.X < 0 || pt.X > width || pt.Y < 0 || pt.Y > height {
			return fmt.Errorf("%w: %q spawn (%v, %v) outside arena", ErrInvalidStage, s.Name, pt.X, pt.Y)
		}
	}
	return nil
}

// Validate checks every stage in the table.
func (t Table) Validate(width, height float64) error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty stage table", ErrInvalidStage)
	}
	for i := range t {
		if err := t[i].Validate(width, height); err != nil {
			return err
		}
	}
	return nil
}

func ParseStage(data []byte) (*Stage, error) {
	var st Stage
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("unmarshal stage: %w", err)
	}
	return &st, nil
}

// LoadStageFromFS reads one stage document from fsys.
func LoadStageFromFS(fsys fs.FS, name string) (*Stage, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read stage: %w", err)
	}
	st, err := ParseStage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return st, nil
}

// LoadTable loads every *.yaml stage in fsys, ordered by file name.
func LoadTable(fsys fs.FS) (Table, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob stages: %w", err)
	}
	sort.Strings(names)
	table := make(Table, 0, len(names))
	for _, name := range names {
		st, err := LoadStageFromFS(fsys, name)
		if err != nil {
			return nil, err
		}
		if st.Name == "" {
			st.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		}
		table = append(table, *st)
	}
	return table, nil
}

// Load returns the stages in dir when it holds any, otherwise the embedded set.
func Load(dir string) (Table, error) {
	if dir != "" {
		if matches, _ := filepath.Glob(filepath.Join(dir, "*.yaml")); len(matches) > 0 {
			return LoadTable(os.DirFS(dir))
		}
	}
	return LoadTable(LevelsFS)
}
