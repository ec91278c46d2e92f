package sim

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DefaultDemandOffsets are the demand-mean perturbations used when a sweep
// is requested without explicit offsets.
var DefaultDemandOffsets = []float64{-3, 0, 3}

// ScenarioLabel formats the comparison tag for a candidate demand mean,
// e.g. "Demand=9" or "Demand=10.5".
func ScenarioLabel(mean float64) string {
	return "Demand=" + strconv.FormatFloat(mean, 'f', -1, 64)
}

// Sweep runs the base policy once per demand offset and labels each run for
// comparison. Candidate means are base.MeanDemand + offset, clamped to 0
// (negative means are invalid for a count-generating process). Runs are
// returned in offset order; each scenario draws from its own RNG subsystem.
func Sweep(base Policy, offsets []float64, rng *PartitionedRNG) ([]*SimulationRun, error) {
	if len(offsets) == 0 {
		offsets = DefaultDemandOffsets
	}

	runs := make([]*SimulationRun, 0, len(offsets))
	for i, d := range offsets {
		p := base
		p.MeanDemand = base.MeanDemand + d
		if p.MeanDemand < 0 {
			logrus.Warnf("scenario %d: candidate demand mean %.2f clamped to 0", i, p.MeanDemand)
			p.MeanDemand = 0
		}

		src := NewPoissonSource(p.MeanDemand, rng.ForSubsystem(SubsystemScenario(i)))
		run, err := Simulate(p, src)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", ScenarioLabel(p.MeanDemand), err)
		}
		run.Scenario = ScenarioLabel(p.MeanDemand)
		runs = append(runs, run)
	}
	return runs, nil
}
