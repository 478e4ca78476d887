// Package risk implements the demo urban risk score.
//
// Five inputs (scenario, green-space ratio, population density, flood risk and
// infrastructure quality) are combined by a fixed weighted sum, clamped to
// [0, 100] and bucketed into three tiers. Scores are pure and deterministic;
// out-of-range inputs skew the sum but never fail.
package risk

// Level is the risk tier of a score.
type Level string

const (
	LevelLow    Level = "Low Risk"
	LevelMedium Level = "Medium Risk"
	LevelHigh   Level = "High Risk"
)

// Tier thresholds on the rounded score.
const (
	MediumThreshold = 35
	HighThreshold   = 70
)

// Score bounds.
const (
	MinScore = 0
	MaxScore = 100
)

// Population density classes accepted by the scorer.
const (
	DensityLow      = "dusuk"
	DensityMedium   = "orta"
	DensityHigh     = "yuksek"
	DensityVeryHigh = "cok_yuksek"
)

// Input carries the caller-supplied factors.
type Input struct {
	Scenario            string `json:"scenario"`
	GreenRatio          int    `json:"green_ratio"`          // 0-100
	PopulationDensity   string `json:"population_density"`   // dusuk, orta, yuksek, cok_yuksek
	FloodRisk           int    `json:"flood_risk"`           // 0-10
	InfrastructureScore int    `json:"infrastructure_score"` // 0-10, 10 is best
}

// Assessment is the result of scoring one Input. It is never stored.
type Assessment struct {
	Score       int    `json:"score"`
	Level       Level  `json:"level"`
	Explanation string `json:"explanation"`
}

var explanations = map[Level]string{
	LevelLow: "Bölge genel olarak düşük risk seviyesinde görünüyor. " +
		"Yeşil alan oranı ve altyapı koşulları kabul edilebilir düzeyde.",
	LevelMedium: "Bölgede dikkat edilmesi gereken bazı riskler var. " +
		"Yeşil alan artırımı ve altyapı güçlendirmesi ile risk azaltılabilir.",
	LevelHigh: "Bölge yüksek risk grubunda. Nüfus yoğunluğu, sel riski veya altyapı " +
		"kaynaklı ciddi sorunlar oluşabilir, öncelikli müdahale önerilir.",
}

// Explanation returns the fixed explanation paragraph for a tier.
func (l Level) Explanation() string {
	return explanations[l]
}

// LevelFor classifies a clamped score.
func LevelFor(score int) Level {
	switch {
	case score < MediumThreshold:
		return LevelLow
	case score < HighThreshold:
		return LevelMedium
	default:
		return LevelHigh
	}
}
