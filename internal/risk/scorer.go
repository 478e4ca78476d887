package risk

// The formula is evaluated in tenths of a point so that the 0.7 green-space
// weight stays exact and .5 boundaries round up deterministically. Terms are
// whole numbers of tenths, so float64 is exact for any realistic input and
// cannot overflow for extreme ones.
const (
	referenceGreen       = 20 // green ratio with no adjustment
	greenWeightTenths    = 7  // -0.7 per point above the reference
	floodWeightTenths    = 30 // +3 per flood point
	infraWeightTenths    = 20 // +2 per missing infrastructure point
	maxInfrastructure    = 10
	scenarioAdjustTenths = 50 // +/-5 for merkez / yesil
	defaultBaseScore     = 50
)

var densityBase = map[string]int{
	DensityLow:      20,
	DensityMedium:   40,
	DensityHigh:     65,
	DensityVeryHigh: 80,
}

// BaseScore returns the starting score for a density class; unknown classes
// get a neutral 50.
func BaseScore(density string) int {
	if base, ok := densityBase[density]; ok {
		return base
	}
	return defaultBaseScore
}

// Score computes the risk assessment for in.
func Score(in Input) Assessment {
	raw := RawTenths(in)

	// Clamp, then round half up. Bounds are whole points so the order of
	// the two steps does not matter.
	if raw < MinScore*10 {
		raw = MinScore * 10
	}
	if raw > MaxScore*10 {
		raw = MaxScore * 10
	}
	score := (int(raw) + 5) / 10

	level := LevelFor(score)
	return Assessment{
		Score:       score,
		Level:       level,
		Explanation: level.Explanation(),
	}
}

// RawTenths returns the unclamped weighted sum in tenths of a point.
func RawTenths(in Input) float64 {
	tenths := float64(BaseScore(in.PopulationDensity) * 10)
	tenths -= (float64(in.GreenRatio) - referenceGreen) * greenWeightTenths
	tenths += float64(in.FloodRisk) * floodWeightTenths
	tenths += (maxInfrastructure - float64(in.InfrastructureScore)) * infraWeightTenths

	switch in.Scenario {
	case "merkez":
		tenths += scenarioAdjustTenths
	case "yesil":
		tenths -= scenarioAdjustTenths
	}

	return tenths
}
