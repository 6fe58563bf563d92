package model

import "time"

// Activity 受试者的一条临床记录
type Activity struct {
	ID            uint      `gorm:"primaryKey" json:"id" excel:"id"`
	ParticipantID *uint     `gorm:"index" json:"participant_id" excel:"participant_id"`
	ActivityType  string    `gorm:"type:varchar(255)" json:"activity_type" excel:"activity_type"`
	ActivityDate  time.Time `gorm:"autoCreateTime" json:"activity_date" excel:"activity_date"` // 缺省为创建时间
	Notes         string    `gorm:"type:text" json:"notes" excel:"notes"`
}
