package trial

import (
	"clinical-trial-system/internal/model"

	"gorm.io/gorm"
)

func listTrials(db *gorm.DB) ([]model.Trial, error) {
	trials := make([]model.Trial, 0)
	err := db.Order("created_at DESC").Order("id DESC").Find(&trials).Error
	return trials, err
}

func getTrial(db *gorm.DB, id uint) (*model.Trial, error) {
	var trial model.Trial
	if err := db.First(&trial, id).Error; err != nil {
		return nil, err
	}
	return &trial, nil
}

// updateTrial 整体覆盖可编辑字段，status 为空时保持原值
func updateTrial(db *gorm.DB, id uint, req *TrialReq) error {
	fields := map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}
	return db.Model(&model.Trial{}).Where("id = ?", id).Updates(fields).Error
}

// deleteTrial 不级联删除受试者，受试者成为孤儿记录
func deleteTrial(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&model.Trial{}, id)
	return result.RowsAffected, result.Error
}
