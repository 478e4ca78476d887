package scenario

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// HeatPoint is a weighted map point. It serialises as [lat, lng, intensity],
// the shape leaflet.heat consumes.
type HeatPoint struct {
	Lat       float64
	Lng       float64
	Intensity float64
}

// MarshalJSON implements json.Marshaler.
func (p HeatPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.Lat, p.Lng, p.Intensity})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *HeatPoint) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return p.set(v)
}

// MarshalYAML implements yaml.Marshaler.
func (p HeatPoint) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{p.Lat, p.Lng, p.Intensity} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!float",
			Value: fmt.Sprintf("%g", v),
		})
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *HeatPoint) UnmarshalYAML(node *yaml.Node) error {
	var v []float64
	if err := node.Decode(&v); err != nil {
		return err
	}
	return p.set(v)
}

func (p *HeatPoint) set(v []float64) error {
	if len(v) != 3 {
		return fmt.Errorf("heat point must be [lat, lng, intensity], got %d values", len(v))
	}
	p.Lat, p.Lng, p.Intensity = v[0], v[1], v[2]
	return nil
}
