package model

import "time"

type TrialStatus string

const (
	TrialActive    TrialStatus = "active"
	TrialCompleted TrialStatus = "completed"
	TrialPending   TrialStatus = "pending"
)

func (s TrialStatus) Valid() bool {
	switch s {
	case TrialActive, TrialCompleted, TrialPending:
		return true
	}
	return false
}

// Trial 临床试验，状态没有强制的流转顺序
type Trial struct {
	ID          uint        `gorm:"primaryKey" json:"id" excel:"id"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name" excel:"name"`
	Description string      `gorm:"type:text" json:"description" excel:"description"`
	Status      TrialStatus `gorm:"type:varchar(20);default:pending;index" json:"status" excel:"status"`
	StartDate   Date        `json:"start_date" excel:"start_date"`
	EndDate     Date        `json:"end_date" excel:"end_date"`
	CreatedAt   time.Time   `json:"created_at" excel:"created_at"`
}
