// Package scenario holds the canned analysis and prediction content for the
// three preset planning regions.
//
// The catalog is compiled into the binary (catalog.yaml) and is immutable once
// loaded. Lookups are total: an unknown key resolves to the default region.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Key identifies a scenario region.
type Key string

const (
	Merkez  Key = "merkez"  // dense city centre
	Gelisen Key = "gelisen" // developing district
	Yesil   Key = "yesil"   // green-dominant district
)

// String implements fmt.Stringer.
func (k Key) String() string { return string(k) }

var ErrInvalidCatalog = errors.New("invalid scenario catalog")

// Analysis is the "analyze" view of a scenario.
type Analysis struct {
	GreenRatio        string   `json:"yesil_alan_orani" yaml:"yesil_alan_orani"`
	PopulationDensity string   `json:"nufus_yogunlugu" yaml:"nufus_yogunlugu"`
	Risks             []string `json:"risk_tespit" yaml:"risk_tespit"`
	Recommendation    string   `json:"oneri" yaml:"oneri"`
}

// Prediction is the "predict" view of a scenario.
type Prediction struct {
	HousingNeed2030       string `json:"konut_ihtiyaci_2030" yaml:"konut_ihtiyaci_2030"`
	TransportLoadIncrease string `json:"ulasim_yuk_artisi" yaml:"ulasim_yuk_artisi"`
	Recommendation        string `json:"oneri" yaml:"oneri"`
}

// Region is the map geometry used by the presentation frontend.
type Region struct {
	Key    Key         `json:"key" yaml:"-"`
	Label  string      `json:"label" yaml:"label"`
	Color  string      `json:"color" yaml:"color"`
	Center []float64   `json:"center" yaml:"center"`
	Area   [][]float64 `json:"area" yaml:"area"`
}

// Scenario bundles everything the catalog knows about one region.
type Scenario struct {
	Region     `yaml:",inline"`
	Heat       []HeatPoint `json:"heat" yaml:"heat"`
	Analysis   Analysis    `json:"analysis" yaml:"analysis"`
	Prediction Prediction  `json:"prediction" yaml:"prediction"`
}

// Catalog is an immutable, ordered set of scenarios with a fallback key.
type Catalog struct {
	fallback Key
	order    []Key
	entries  map[Key]*Scenario
}

type catalogDocument struct {
	Default   string    `yaml:"default"`
	Scenarios yaml.Node `yaml:"scenarios"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Load(embeddedCatalog)
	if err != nil {
		panic("scenario: embedded catalog: " + err.Error())
	}
	return c
}

// Load parses a catalog document. Scenario order follows the document.
func Load(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if doc.Scenarios.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: scenarios must be a mapping", ErrInvalidCatalog)
	}

	c := &Catalog{
		fallback: Key(doc.Default),
		entries:  make(map[Key]*Scenario),
	}

	nodes := doc.Scenarios.Content
	for i := 0; i+1 < len(nodes); i += 2 {
		key := Key(nodes[i].Value)
		var s Scenario
		if err := nodes[i+1].Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: scenario %q: %v", ErrInvalidCatalog, key, err)
		}
		s.Key = key
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("%w: scenario %q: %v", ErrInvalidCatalog, key, err)
		}
		if _, dup := c.entries[key]; dup {
			return nil, fmt.Errorf("%w: duplicate scenario %q", ErrInvalidCatalog, key)
		}
		c.entries[key] = &s
		c.order = append(c.order, key)
	}

	if _, ok := c.entries[c.fallback]; !ok {
		return nil, fmt.Errorf("%w: default scenario %q not defined", ErrInvalidCatalog, c.fallback)
	}
	return c, nil
}

func (s *Scenario) validate() error {
	if len(s.Center) != 2 {
		return errors.New("center must be [lat, lng]")
	}
	for _, p := range s.Area {
		if len(p) != 2 {
			return errors.New("area points must be [lat, lng]")
		}
	}
	if s.Analysis.GreenRatio == "" {
		return errors.New("analysis.yesil_alan_orani is required")
	}
	return nil
}

// Fallback returns the key unknown lookups resolve to.
func (c *Catalog) Fallback() Key { return c.fallback }

// Keys returns scenario keys in catalog order.
func (c *Catalog) Keys() []Key {
	out := make([]Key, len(c.order))
	copy(out, c.order)
	return out
}

// Resolve maps any string to a known key. ok is false when the fallback was used.
func (c *Catalog) Resolve(key string) (resolved Key, ok bool) {
	if _, found := c.entries[Key(key)]; found {
		return Key(key), true
	}
	return c.fallback, false
}

// Analysis returns the analysis record for key, falling back to the default.
func (c *Catalog) Analysis(key string) Analysis {
	a := c.lookup(key).Analysis
	a.Risks = append([]string(nil), a.Risks...)
	return a
}

// Prediction returns the prediction record for key, falling back to the default.
func (c *Catalog) Prediction(key string) Prediction {
	return c.lookup(key).Prediction
}

// Heat returns the heat-map points for key, falling back to the default.
func (c *Catalog) Heat(key string) []HeatPoint {
	return append([]HeatPoint(nil), c.lookup(key).Heat...)
}

// Regions returns the map geometry of every scenario in catalog order.
func (c *Catalog) Regions() []Region {
	out := make([]Region, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.entries[k].Region)
	}
	return out
}

// Scenario returns a copy of the full entry for key, falling back to the default.
func (c *Catalog) Scenario(key string) Scenario {
	s := *c.lookup(key)
	s.Heat = append([]HeatPoint(nil), s.Heat...)
	s.Analysis.Risks = append([]string(nil), s.Analysis.Risks...)
	return s
}

func (c *Catalog) lookup(key string) *Scenario {
	resolved, _ := c.Resolve(key)
	return c.entries[resolved]
}
