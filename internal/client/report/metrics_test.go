package report

import (
	"testing"

	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/model"

	"github.com/stretchr/testify/require"
)

func TestComputeMetrics(t *testing.T) {
	cases := []struct {
		name    string
		summary *dto.Summary
		want    Metrics
	}{
		{
			name:    "nil summary",
			summary: nil,
			want:    Metrics{},
		},
		{
			name:    "empty database",
			summary: &dto.Summary{StatusStats: []dto.StatusStat{}},
			want:    Metrics{},
		},
		{
			name: "two active one completed",
			summary: &dto.Summary{
				Summary: dto.Counts{Trials: 3, Participants: 4, Activities: 6},
				StatusStats: []dto.StatusStat{
					{Status: model.TrialActive, Count: 2},
					{Status: model.TrialCompleted, Count: 1},
				},
			},
			want: Metrics{CompletionRate: 33.3, AvgActivities: 1.5, ActiveTrials: 2},
		},
		{
			name: "no completed bucket",
			summary: &dto.Summary{
				Summary:     dto.Counts{Trials: 2, Participants: 3, Activities: 1},
				StatusStats: []dto.StatusStat{{Status: model.TrialPending, Count: 2}},
			},
			want: Metrics{CompletionRate: 0, AvgActivities: 0.3, ActiveTrials: 0},
		},
		{
			name: "activities without participants",
			summary: &dto.Summary{
				Summary:     dto.Counts{Trials: 1, Participants: 0, Activities: 5},
				StatusStats: []dto.StatusStat{{Status: model.TrialCompleted, Count: 1}},
			},
			want: Metrics{CompletionRate: 100, AvgActivities: 0, ActiveTrials: 0},
		},
		{
			name: "rounding",
			summary: &dto.Summary{
				Summary:     dto.Counts{Trials: 6, Participants: 3, Activities: 2},
				StatusStats: []dto.StatusStat{{Status: model.TrialCompleted, Count: 4}},
			},
			want: Metrics{CompletionRate: 66.7, AvgActivities: 0.7},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeMetrics(tc.summary)
			require.Equal(t, tc.want, got)
			require.GreaterOrEqual(t, got.CompletionRate, 0.0)
			require.LessOrEqual(t, got.CompletionRate, 100.0)
		})
	}
}
