package dto

import "clinical-trial-system/internal/model"

// Counts 三张主表的行数
type Counts struct {
	Trials       int64 `json:"trials"`
	Participants int64 `json:"participants"`
	Activities   int64 `json:"activities"`
}

type StatusStat struct {
	Status model.TrialStatus `json:"status" gorm:"column:status"`
	Count  int64             `json:"count" gorm:"column:count"`
}

// Summary GET /reports/summary 的响应。StatusStats 只包含实际出现过的状态
type Summary struct {
	Summary     Counts       `json:"summary"`
	StatusStats []StatusStat `json:"statusStats"`
}

// StatusCount 返回某状态的试验数，不存在时为 0
func (s *Summary) StatusCount(status model.TrialStatus) int64 {
	for _, st := range s.StatusStats {
		if st.Status == status {
			return st.Count
		}
	}
	return 0
}

// Participation 每个试验一行，没有受试者的试验计数为 0
type Participation struct {
	TrialName        string `json:"trial_name" gorm:"column:trial_name"`
	ParticipantCount int64  `json:"participant_count" gorm:"column:participant_count"`
}

// ParticipantRow 受试者行附带所属试验名称
type ParticipantRow struct {
	model.Participant
	TrialName string `json:"trial_name" gorm:"column:trial_name" excel:"trial_name"`
}

// ActivityRow 活动行附带受试者名称与试验名称
type ActivityRow struct {
	model.Activity
	ParticipantName string `json:"participant_name" gorm:"column:participant_name" excel:"participant_name"`
	TrialName       string `json:"trial_name" gorm:"column:trial_name" excel:"trial_name"`
}

// Snapshot GET /reports/export 的响应，只包含父记录存在的受试者与活动
type Snapshot struct {
	Trials       []model.Trial    `json:"trials"`
	Participants []ParticipantRow `json:"participants"`
	Activities   []ActivityRow    `json:"activities"`
}

// ArchiveResult 导出归档结果
type ArchiveResult struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}
