package report

import (
	"math"

	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/model"
)

// Metrics 由汇总数据派生的指标，每次拉取后重新计算
type Metrics struct {
	CompletionRate float64 `json:"completion_rate"` // 百分比，保留一位小数
	AvgActivities  float64 `json:"avg_activities"`  // 每个受试者的平均活动数，保留一位小数
	ActiveTrials   int64   `json:"active_trials"`
}

func ComputeMetrics(s *dto.Summary) Metrics {
	if s == nil {
		return Metrics{}
	}
	var m Metrics
	if total := s.Summary.Trials; total > 0 {
		m.CompletionRate = round1(float64(s.StatusCount(model.TrialCompleted)) / float64(total) * 100)
	}
	if participants := s.Summary.Participants; participants > 0 {
		m.AvgActivities = round1(float64(s.Summary.Activities) / float64(participants))
	}
	m.ActiveTrials = s.StatusCount(model.TrialActive)
	return m
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
