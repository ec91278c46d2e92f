package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssess_ThresholdTable(t *testing.T) {
	tests := []struct {
		name    string
		summary RunSummary
		want    []string
	}{
		{
			name:    "no shortfall, moderate reordering",
			summary: RunSummary{Horizon: 60, TotalShortfall: 0, ReorderDays: 10},
			want:    []string{"No shortfall occurred: the (s, Q) policy is conservative."},
		},
		{
			name:    "low shortfall",
			summary: RunSummary{Horizon: 60, TotalShortfall: 5, ReorderDays: 10},
			want:    []string{"Shortfall is low: a small adjustment to Q may be enough."},
		},
		{
			name:    "shortfall at the significant threshold",
			summary: RunSummary{Horizon: 60, TotalShortfall: 10, ReorderDays: 10},
			want:    []string{"Shortfall is significant: consider raising s or Q."},
		},
		{
			name:    "heavy shortfall and heavy reordering",
			summary: RunSummary{Horizon: 60, TotalShortfall: 80, ReorderDays: 30},
			want: []string{
				"Shortfall is significant: consider raising s or Q.",
				"Orders trigger on too many days: s is too low.",
			},
		},
		{
			name:    "order never triggers",
			summary: RunSummary{Horizon: 60, TotalShortfall: 0, ReorderDays: 0},
			want: []string{
				"No shortfall occurred: the (s, Q) policy is conservative.",
				"An order never triggers: s is too high.",
			},
		},
		{
			name:    "reorder days exactly at 40 percent draws no reorder conclusion",
			summary: RunSummary{Horizon: 60, TotalShortfall: 0, ReorderDays: 24},
			want:    []string{"No shortfall occurred: the (s, Q) policy is conservative."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Assess(tt.summary))
		})
	}
}

func TestAssess_AlwaysProducesShortfallConclusion(t *testing.T) {
	// The shortfall rule group partitions all non-negative totals, so every
	// summary yields at least one conclusion.
	for _, shortfall := range []int{0, 1, 9, 10, 11, 1000} {
		s := RunSummary{Horizon: 60, TotalShortfall: shortfall, ReorderDays: 5}
		if len(Assess(s)) == 0 {
			t.Errorf("TotalShortfall=%d produced no conclusions", shortfall)
		}
	}
}
