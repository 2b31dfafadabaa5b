// Package fabric plans leaf-spine network fabrics for accelerator fleets:
// given spine and leaf switch capabilities and an oversubscription ratio, it
// derives the maximum radix (number of leaf switches a spine can serve) and
// the number of compute nodes each leaf can support.
package fabric

import (
	"fmt"
	"sort"
)

// SpineSpec describes a modular spine switch.
type SpineSpec struct {
	// LineCards is the number of installed line cards.
	LineCards int `yaml:"lineCards" json:"lineCards"`

	// PortsPerCard is the number of ports per line card.
	PortsPerCard int `yaml:"portsPerCard" json:"portsPerCard"`

	// PortSpeedGbps is the speed of each spine port in Gbps.
	PortSpeedGbps float64 `yaml:"portSpeedGbps" json:"portSpeedGbps"`
}

// Ports returns the total number of usable spine ports.
func (s SpineSpec) Ports() int {
	return s.LineCards * s.PortsPerCard
}

// Validate checks the spine fields for usable values.
func (s SpineSpec) Validate() error {
	if s.LineCards <= 0 || s.PortsPerCard <= 0 {
		return fmt.Errorf("spine must have positive line cards and ports per card, got %d x %d", s.LineCards, s.PortsPerCard)
	}
	if s.PortSpeedGbps <= 0 {
		return fmt.Errorf("spine port speed must be positive, got %v", s.PortSpeedGbps)
	}
	return nil
}

// LeafSpec describes a fixed-configuration leaf switch.
type LeafSpec struct {
	// Ports is the total port count of the leaf.
	Ports int `yaml:"ports" json:"ports"`

	// PortSpeedGbps is the speed of each leaf port in Gbps.
	PortSpeedGbps float64 `yaml:"portSpeedGbps" json:"portSpeedGbps"`

	// BandwidthGbps is the total switching throughput of the leaf.
	BandwidthGbps float64 `yaml:"bandwidthGbps" json:"bandwidthGbps"`
}

// Validate checks the leaf fields for usable values.
func (l LeafSpec) Validate() error {
	if l.Ports <= 0 {
		return fmt.Errorf("leaf must have a positive port count, got %d", l.Ports)
	}
	if l.PortSpeedGbps <= 0 || l.BandwidthGbps <= 0 {
		return fmt.Errorf("leaf port speed and bandwidth must be positive, got %v and %v", l.PortSpeedGbps, l.BandwidthGbps)
	}
	return nil
}

// Oversubscription is a leaf downlink-to-uplink capacity ratio.
type Oversubscription struct {
	// Label is the human-readable ratio (e.g. "2:1").
	Label string

	// UplinkDivisor divides the base uplink port count.
	UplinkDivisor int
}

// builtinSpines are Arista 7800-series spine configurations.
var builtinSpines = map[string]SpineSpec{
	"7804": {LineCards: 4, PortsPerCard: 36, PortSpeedGbps: 800},
	"7808": {LineCards: 8, PortsPerCard: 36, PortSpeedGbps: 800},
	"7812": {LineCards: 12, PortsPerCard: 36, PortSpeedGbps: 800},
	"7816": {LineCards: 16, PortsPerCard: 36, PortSpeedGbps: 800},
}

// builtinLeaves are Arista 7060X-series leaf configurations.
var builtinLeaves = map[string]LeafSpec{
	"7060X5": {Ports: 64, PortSpeedGbps: 400, BandwidthGbps: 25600},
	"7060X6": {Ports: 64, PortSpeedGbps: 800, BandwidthGbps: 51200},
}

// DefaultOversubscriptions are the ratios evaluated by Plan.
var DefaultOversubscriptions = []Oversubscription{
	{Label: "1:1", UplinkDivisor: 1},
	{Label: "2:1", UplinkDivisor: 2},
	{Label: "4:1", UplinkDivisor: 4},
}

// BaseUplinkPorts is the number of leaf ports reserved for spine uplinks at
// a 1:1 oversubscription ratio.
const BaseUplinkPorts = 8

// MaxRadix returns the theoretical maximum radix of a leaf-spine network:
// the number of leaf switches the spine can serve given the uplink ports
// consumed per leaf.
func MaxRadix(spinePorts, leafUplinkPorts int) (int, error) {
	if spinePorts <= 0 {
		return 0, fmt.Errorf("spine ports must be positive, got %d", spinePorts)
	}
	if leafUplinkPorts <= 0 {
		return 0, fmt.Errorf("leaf uplink ports must be positive, got %d", leafUplinkPorts)
	}
	return spinePorts / leafUplinkPorts, nil
}

// NodesPerLeaf returns the number of compute nodes each leaf can support
// after subtracting uplink bandwidth from its total throughput.
func NodesPerLeaf(leafBandwidthGbps, nodeBandwidthGbps, uplinkBandwidthGbps float64) (int, error) {
	if nodeBandwidthGbps <= 0 {
		return 0, fmt.Errorf("node bandwidth must be positive, got %v", nodeBandwidthGbps)
	}
	if uplinkBandwidthGbps < 0 {
		return 0, fmt.Errorf("uplink bandwidth must be non-negative, got %v", uplinkBandwidthGbps)
	}
	available := leafBandwidthGbps - uplinkBandwidthGbps
	if available < 0 {
		return 0, fmt.Errorf("uplink bandwidth %v exceeds leaf bandwidth %v", uplinkBandwidthGbps, leafBandwidthGbps)
	}
	return int(available / nodeBandwidthGbps), nil
}

// PlanRow is one fabric design point: a spine/leaf pairing at a given
// oversubscription ratio.
type PlanRow struct {
	Leaf             string
	Spine            string
	Uplinks          int
	WorkloadPorts    int
	Oversubscription string
	MaxRadix         int
	NodesPerLeaf     int
}

// Planner evaluates fabric design points over a set of spine and leaf
// switch specs.
type Planner struct {
	spines            map[string]SpineSpec
	leaves            map[string]LeafSpec
	nodeBandwidthGbps float64
}

// NewPlanner creates a Planner over the built-in Arista spine and leaf
// configurations.
func NewPlanner(nodeBandwidthGbps float64) (*Planner, error) {
	if nodeBandwidthGbps <= 0 {
		return nil, fmt.Errorf("node bandwidth must be positive, got %v", nodeBandwidthGbps)
	}
	return &Planner{
		spines:            builtinSpines,
		leaves:            builtinLeaves,
		nodeBandwidthGbps: nodeBandwidthGbps,
	}, nil
}

// Plan evaluates every spine/leaf pairing at the default oversubscription
// ratios. Rows are ordered by spine model, then leaf model, then ratio.
func (p *Planner) Plan() ([]PlanRow, error) {
	spineNames := sortedKeys(p.spines)
	leafNames := sortedKeys(p.leaves)

	var rows []PlanRow
	for _, spineName := range spineNames {
		spine := p.spines[spineName]
		if err := spine.Validate(); err != nil {
			return nil, err
		}
		for _, leafName := range leafNames {
			leaf := p.leaves[leafName]
			if err := leaf.Validate(); err != nil {
				return nil, err
			}
			for _, ratio := range DefaultOversubscriptions {
				row, err := p.planOne(spineName, spine, leafName, leaf, ratio)
				if err != nil {
					return nil, err
				}
				rows = append(rows, row)
			}
		}
	}
	return rows, nil
}

// planOne evaluates a single design point.
func (p *Planner) planOne(spineName string, spine SpineSpec, leafName string, leaf LeafSpec, ratio Oversubscription) (PlanRow, error) {
	uplinks := BaseUplinkPorts / ratio.UplinkDivisor
	radix, err := MaxRadix(spine.Ports(), uplinks)
	if err != nil {
		return PlanRow{}, err
	}
	uplinkBandwidth := float64(uplinks) * spine.PortSpeedGbps
	nodes, err := NodesPerLeaf(leaf.BandwidthGbps, p.nodeBandwidthGbps, uplinkBandwidth)
	if err != nil {
		return PlanRow{}, err
	}
	return PlanRow{
		Leaf:             leafName,
		Spine:            spineName,
		Uplinks:          uplinks,
		WorkloadPorts:    leaf.Ports - uplinks,
		Oversubscription: ratio.Label,
		MaxRadix:         radix,
		NodesPerLeaf:     nodes,
	}, nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
