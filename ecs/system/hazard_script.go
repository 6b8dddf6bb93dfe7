package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
)

// RangeScript is a tengo expression deciding whether the hazard may attack.
// It sees distance, max_range, cooldown_ms, hazard_x, hazard_y, target_x and
// target_y, and the math module as math. Variables the expression never
// binds are skipped.
type RangeScript struct {
	source   string
	compiled *tengo.Compiled
}

var rangeScriptVars = []string{"distance", "max_range", "cooldown_ms", "hazard_x", "hazard_y", "target_x", "target_y"}

func CompileRangeScript(expr string) (*RangeScript, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("range script: empty expression")
	}
	src := "math := import(\"math\")\n__result := (" + expr + ")\n"
	script := tengo.NewScript([]byte(src))
	for _, name := range rangeScriptVars {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("range script: add %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("range script: compile: %w", err)
	}
	return &RangeScript{source: expr, compiled: compiled}, nil
}

func (r *RangeScript) Source() string {
	if r == nil {
		return ""
	}
	return r.source
}

// Eval runs the expression for one hazard/target pair.
func (r *RangeScript) Eval(distance, rng, cooldownMS float64, hazard, target cp.Vector) (bool, error) {
	if r == nil || r.compiled == nil {
		return false, fmt.Errorf("range script: not compiled")
	}
	c := r.compiled.Clone()
	values := map[string]float64{
		"distance":    distance,
		"max_range":   rng,
		"cooldown_ms": cooldownMS,
		"hazard_x":    hazard.X,
		"hazard_y":    hazard.Y,
		"target_x":    target.X,
		"target_y":    target.Y,
	}
	for name, v := range values {
		if !c.IsDefined(name) {
			continue
		}
		if err := c.Set(name, v); err != nil {
			return false, fmt.Errorf("range script: set %s: %w", name, err)
		}
	}
	if err := c.Run(); err != nil {
		return false, fmt.Errorf("range script: run: %w", err)
	}
	res := c.Get("__result")
	if res == nil {
		return false, fmt.Errorf("range script: no result")
	}
	switch v := res.Value().(type) {
	case bool:
		return v, nil
	default:
		return false, fmt.Errorf("range script: result %v is %s, want bool", v, res.ValueType())
	}
}
