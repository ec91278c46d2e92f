package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sim "github.com/sqsim/sqsim/sim"
)

func makeTestSpec() *sim.ExperimentSpec {
	return &sim.ExperimentSpec{
		Seed:             7,
		Days:             90,
		InitialInventory: 200,
		ReorderPoint:     40,
		OrderQuantity:    150,
		LeadTime:         4,
		MeanDemand:       9.5,
		Scenarios:        true,
		DemandOffsets:    []float64{-2, 0, 2},
	}
}

// resetFlags restores the flag variables to their registered defaults after
// a test mutates them.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		seed, days, initialInventory = 42, 60, 120
		reorderPoint, orderQuantity, leadTime = 50, 100, 3
		meanDemand = 12
		scenarios = false
		demandOffsets = []float64{-3, 0, 3}
	})
}

func TestApplySpec_FileFillsUnsetFlags(t *testing.T) {
	// GIVEN no flags changed on the command line
	resetFlags(t)

	// WHEN the experiment spec is applied
	applySpec(makeTestSpec(), func(string) bool { return false })

	// THEN every value comes from the file
	assert.Equal(t, int64(7), seed)
	assert.Equal(t, 90, days)
	assert.Equal(t, 200, initialInventory)
	assert.Equal(t, 40, reorderPoint)
	assert.Equal(t, 150, orderQuantity)
	assert.Equal(t, 4, leadTime)
	assert.Equal(t, 9.5, meanDemand)
	assert.True(t, scenarios)
	assert.Equal(t, []float64{-2, 0, 2}, demandOffsets)
}

func TestApplySpec_ExplicitFlagsWin(t *testing.T) {
	// GIVEN --days and --mean-demand set explicitly on the command line
	resetFlags(t)
	days = 30
	meanDemand = 20
	explicit := map[string]bool{"days": true, "mean-demand": true}

	// WHEN the experiment spec is applied
	applySpec(makeTestSpec(), func(name string) bool { return explicit[name] })

	// THEN the explicit flags keep their values; the rest come from the file
	assert.Equal(t, 30, days)
	assert.Equal(t, 20.0, meanDemand)
	assert.Equal(t, int64(7), seed)
	assert.Equal(t, 150, orderQuantity)
}

func TestApplySpec_EmptyOffsetsInFileKeepDefault(t *testing.T) {
	resetFlags(t)
	spec := makeTestSpec()
	spec.DemandOffsets = nil

	applySpec(spec, func(string) bool { return false })

	assert.Equal(t, []float64{-3, 0, 3}, demandOffsets)
}

func TestDefaults_ProduceValidPolicy(t *testing.T) {
	// The registered flag defaults mirror the reference tool and must pass
	// engine validation as-is.
	resetFlags(t)
	p := sim.Policy{
		Horizon:          days,
		InitialInventory: initialInventory,
		ReorderPoint:     reorderPoint,
		OrderQuantity:    orderQuantity,
		LeadTime:         leadTime,
		MeanDemand:       meanDemand,
	}
	assert.NoError(t, p.Validate())
}
