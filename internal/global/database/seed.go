package database

import (
	"math/rand/v2"
	"time"

	"clinical-trial-system/internal/model"
	"clinical-trial-system/tools"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed 清空业务数据并写入演示数据，root 管理员的密码为 root
func Seed(db *gorm.DB) error {
	hashed, err := tools.PasswordEncrypt("root")
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []any{&model.Activity{}, &model.Participant{}, &model.Trial{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("username <> ?", "root").Delete(&model.User{}).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.User{
			Username: "root",
			Password: hashed,
			Role:     model.RoleAdmin,
		}).Error; err != nil {
			return err
		}

		trials := []model.Trial{
			{Name: "Vaccine Phase 3", Description: "Testing efficacy in large population", Status: model.TrialActive,
				StartDate: model.NewDate(2025, time.January, 1), EndDate: model.NewDate(2026, time.January, 1)},
			{Name: "Heart Study A", Description: "Cardiovascular health monitoring", Status: model.TrialPending,
				StartDate: model.NewDate(2025, time.June, 1), EndDate: model.NewDate(2027, time.June, 1)},
			{Name: "Eye Care Beta", Description: "New lens technology trial", Status: model.TrialCompleted,
				StartDate: model.NewDate(2024, time.January, 1), EndDate: model.NewDate(2024, time.December, 31)},
		}
		if err := tx.Create(&trials).Error; err != nil {
			return err
		}

		for _, name := range []string{"John Doe", "Jane Smith", "Alice Johnson", "Bob Brown", "Charlie Davis"} {
			trialID := trials[rand.IntN(len(trials))].ID
			p := model.Participant{
				ParticipantName: name,
				TrialID:         &trialID,
				EnrollmentDate:  model.NewDate(2025, time.January, 15),
				Status:          model.ParticipantEnrolled,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			if err := tx.Create(&model.Activity{
				ParticipantID: &p.ID,
				ActivityType:  "Initial Screening",
				Notes:         "Participant met all entry criteria.",
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
