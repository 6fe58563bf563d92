package model

import "time"

type Role string

const (
	RoleParticipant  Role = "participant"
	RoleInvestigator Role = "investigator"
	RoleAdmin        Role = "admin"
)

// Level 角色等级，用于鉴权中间件比较
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleInvestigator:
		return 1
	case RoleParticipant:
		return 0
	}
	return -1
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      Role      `gorm:"type:varchar(20);default:participant;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AutoMigrateModels 需要建表的模型
var AutoMigrateModels = []any{
	&User{},
	&Trial{},
	&Participant{},
	&Activity{},
}
