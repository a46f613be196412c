package v1

import (
	"testing"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

func TestConversionRate(t *testing.T) {
	tests := []struct {
		name     string
		outcomes map[string]int64
		want     float64
	}{
		{"no outcomes", map[string]int64{}, 0},
		{"only pending", map[string]int64{types.OUTCOME_STATUS_PENDING: 7}, 0},
		{"all paid", map[string]int64{types.OUTCOME_STATUS_PAID: 4}, 1},
		{
			"mixed",
			map[string]int64{
				types.OUTCOME_STATUS_PENDING:   10,
				types.OUTCOME_STATUS_PAID:      3,
				types.OUTCOME_STATUS_RESPONDED: 2,
				types.OUTCOME_STATUS_GHOSTED:   1,
			},
			0.5,
		},
		{
			"no paid among resolved",
			map[string]int64{
				types.OUTCOME_STATUS_RESPONDED: 2,
				types.OUTCOME_STATUS_GHOSTED:   2,
			},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConversionRate(tt.outcomes); got != tt.want {
				t.Errorf("ConversionRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActivationRate(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		pending int64
		want    float64
	}{
		{"no clients", 0, 0, 0},
		{"all pending", 4, 4, 0},
		{"all activated", 4, 0, 1},
		{"half activated", 10, 5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActivationRate(tt.total, tt.pending); got != tt.want {
				t.Errorf("ActivationRate(%d, %d) = %v, want %v", tt.total, tt.pending, got, tt.want)
			}
		})
	}
}
