package snake

import (
	"strconv"

	"gridsnake/internal/core"
)

// Parameters exposes the game configuration for HUD panels and tooling.
func (g *Game) Parameters() core.ParameterSnapshot {
	c := g.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				floatParam("step", "Step interval (s)", c.StepInterval),
			},
		},
		{
			Name: "Start",
			Params: []core.Parameter{
				cellParam("start", "Head", c.Start),
				cellParam("apple", "Apple", c.AppleStart),
				int64Param("seed", "Seed", c.Seed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func cellParam(key, label string, value core.Cell) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeCell,
		Value: value.String(),
	}
}
