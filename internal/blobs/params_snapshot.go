package blobs

import (
	"strconv"

	"blobsplit/internal/core"
)

// Parameters describes the fixed tier table and session state for display.
func (s *Session) Parameters() core.ParameterSnapshot {
	tiers := make([]core.Parameter, 0, 2*TierCount)
	for t := MinTier; t <= MaxTier; t++ {
		suffix := strconv.Itoa(int(t))
		tiers = append(tiers,
			floatParam("radius_"+suffix, "Tier "+suffix+" radius", t.Radius()),
			stringParam("color_"+suffix, "Tier "+suffix+" color", t.Color()),
		)
	}
	groups := []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				floatParam("w", "Width", s.bounds.W),
				floatParam("h", "Height", s.bounds.H),
				intParam("score", "Score", s.score),
				intParam("circles", "Circles", len(s.circles)),
				stringParam("state", "State", s.state.String()),
			},
		},
		{
			Name:    "Tiers",
			Params:  tiers,
			Summary: "Tier 0 is the largest; two tier-0 circles touching ends the game.",
		},
		{
			Name: "Split",
			Params: []core.Parameter{
				intParam("split_count", "Split count", SplitCount),
				floatParam("split_offset", "Split offset", SplitOffset),
				floatParam("velocity_range", "Velocity range", VelocityRange),
			},
		},
		{
			Name: "Scoring",
			Params: []core.Parameter{
				intParam("pop_score", "Pop score", PopScore),
				intParam("merge_score_base", "Merge score base", MergeScoreBase),
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

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
