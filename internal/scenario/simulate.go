package scenario

import (
	"strconv"
	"strings"
)

// Green-space simulation levels, as shown on the presentation chip.
const (
	SimLevelHigh       = "Yüksek Risk"
	SimLevelLow        = "Düşük Risk"
	SimLevelDecreasing = "Azalan Risk"
	SimLevelNeutral    = "Orta"
)

// Thresholds on (target - current) green percentage points.
const (
	simHighDiff       = -3
	simLowDiff        = 8
	simDecreasingDiff = 3
)

// Simulation compares a target green-space share against a scenario's
// current share.
type Simulation struct {
	Scenario     string `json:"scenario"`
	CurrentGreen int    `json:"current_green"`
	TargetGreen  int    `json:"target_green"`
	Difference   int    `json:"difference"`
	Level        string `json:"level"`
	Effect       string `json:"effect"`
}

// SimulateGreen evaluates moving key's green-space share to target percent.
// The current share comes from the analysis record's display ratio.
func (c *Catalog) SimulateGreen(key string, target int) Simulation {
	current, _ := ParsePercent(c.lookup(key).Analysis.GreenRatio)
	diff := target - current

	sim := Simulation{
		Scenario:     key,
		CurrentGreen: current,
		TargetGreen:  target,
		Difference:   diff,
		Level:        SimLevelNeutral,
		Effect:       "Mevcut duruma göre önemli değişiklik beklenmiyor.",
	}

	switch {
	case diff <= simHighDiff:
		sim.Level = SimLevelHigh
		sim.Effect = "Yeşil alan azaltılırsa ısı adası etkisi ve çevresel riskler artacaktır."
	case diff >= simLowDiff:
		sim.Level = SimLevelLow
		sim.Effect = "Yeşil alan ciddi oranda artırılırsa ısı adası etkisi azalır, hava kalitesi ve yaşam konforu artar."
	case diff >= simDecreasingDiff:
		sim.Level = SimLevelDecreasing
		sim.Effect = "Yeşil alan bir miktar artırılırsa çevresel koşullar ve sosyal yaşam kademeli olarak iyileşir."
	}

	return sim
}

// ParsePercent reads display ratios such as "%8" or "18%".
func ParsePercent(s string) (int, bool) {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "%"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
