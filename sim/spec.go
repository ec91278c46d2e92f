package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExperimentSpec is the YAML experiment configuration consumed by the CLI.
// Loaded via LoadExperimentSpec(path). Flags set explicitly on the command
// line take precedence over file values; that merge lives in cmd.
type ExperimentSpec struct {
	Seed             int64     `yaml:"seed"`
	Days             int       `yaml:"days"`
	InitialInventory int       `yaml:"initial_inventory"`
	ReorderPoint     int       `yaml:"reorder_point"`
	OrderQuantity    int       `yaml:"order_quantity"`
	LeadTime         int       `yaml:"lead_time"`
	MeanDemand       float64   `yaml:"mean_demand"`
	Scenarios        bool      `yaml:"scenarios,omitempty"`
	DemandOffsets    []float64 `yaml:"demand_offsets,omitempty"`
}

// Policy returns the policy parameters carried by the spec.
func (s *ExperimentSpec) Policy() Policy {
	return Policy{
		Horizon:          s.Days,
		InitialInventory: s.InitialInventory,
		ReorderPoint:     s.ReorderPoint,
		OrderQuantity:    s.OrderQuantity,
		LeadTime:         s.LeadTime,
		MeanDemand:       s.MeanDemand,
	}
}

// LoadExperimentSpec reads, parses, and validates a YAML experiment file.
// Unknown fields are rejected so typos fail loudly instead of silently
// falling back to defaults.
func LoadExperimentSpec(path string) (*ExperimentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment spec: %w", err)
	}

	var spec ExperimentSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing experiment spec: %w", err)
	}

	if err := spec.Policy().Validate(); err != nil {
		return nil, fmt.Errorf("experiment spec %s: %w", path, err)
	}
	return &spec, nil
}
