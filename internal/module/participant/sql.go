package participant

import (
	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/model"

	"gorm.io/gorm"
)

// listParticipants 内连接试验表，试验已删除的受试者不会出现
func listParticipants(db *gorm.DB) ([]dto.ParticipantRow, error) {
	rows := make([]dto.ParticipantRow, 0)
	err := db.Table("participants p").
		Select("p.*, t.name AS trial_name").
		Joins("JOIN trials t ON p.trial_id = t.id").
		Order("p.created_at DESC").Order("p.id DESC").
		Scan(&rows).Error
	return rows, err
}

func trialExists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&model.Trial{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func participantExists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&model.Participant{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func updateParticipant(db *gorm.DB, id uint, req *UpdateReq) error {
	fields := map[string]any{
		"participant_name": req.ParticipantName,
		"trial_id":         req.TrialID,
		"enrollment_date":  req.EnrollmentDate,
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}
	return db.Model(&model.Participant{}).Where("id = ?", id).Updates(fields).Error
}

// deleteParticipant 先删除该受试者的活动记录，再删除受试者本身
func deleteParticipant(db *gorm.DB, id uint) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("participant_id = ?", id).Delete(&model.Activity{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Participant{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func listActivities(db *gorm.DB, participantID uint) ([]model.Activity, error) {
	activities := make([]model.Activity, 0)
	err := db.Where("participant_id = ?", participantID).
		Order("activity_date DESC").Order("id DESC").
		Find(&activities).Error
	return activities, err
}
