package model

import "time"

type ParticipantStatus string

const (
	ParticipantEnrolled  ParticipantStatus = "enrolled"
	ParticipantWithdrawn ParticipantStatus = "withdrawn"
	ParticipantCompleted ParticipantStatus = "completed"
)

func (s ParticipantStatus) Valid() bool {
	switch s {
	case ParticipantEnrolled, ParticipantWithdrawn, ParticipantCompleted:
		return true
	}
	return false
}

// Participant 受试者，只属于一个试验。trial_id 不设外键约束，
// 试验被删除后该行仍保留，但不会出现在任何基于 JOIN 的视图中
type Participant struct {
	ID              uint              `gorm:"primaryKey" json:"id" excel:"id"`
	ParticipantName string            `gorm:"type:varchar(255);not null" json:"participant_name" excel:"participant_name"`
	TrialID         *uint             `gorm:"index" json:"trial_id" excel:"trial_id"`
	EnrollmentDate  Date              `json:"enrollment_date" excel:"enrollment_date"`
	Status          ParticipantStatus `gorm:"type:varchar(20);default:enrolled" json:"status" excel:"status"`
	CreatedAt       time.Time         `json:"created_at" excel:"created_at"`
}
