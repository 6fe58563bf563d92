package report

import (
	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/model"

	"gorm.io/gorm"
)

const (
	statusStatsSql = `
	SELECT status, COUNT(*) AS count
	FROM trials
	GROUP BY status
	ORDER BY status`

	// 左连接：没有受试者的试验也返回一行，计数为 0
	participationSql = `
	SELECT t.name AS trial_name, COUNT(p.id) AS participant_count
	FROM trials t
	LEFT JOIN participants p ON p.trial_id = t.id
	GROUP BY t.id, t.name
	ORDER BY t.id`

	// 内连接：试验不存在的受试者不导出
	exportParticipantsSql = `
	SELECT p.*, t.name AS trial_name
	FROM participants p
	JOIN trials t ON p.trial_id = t.id
	ORDER BY p.id`

	exportActivitiesSql = `
	SELECT a.*, p.participant_name, t.name AS trial_name
	FROM activities a
	JOIN participants p ON a.participant_id = p.id
	JOIN trials t ON p.trial_id = t.id
	ORDER BY a.id`
)

// 以下查询依次执行，不在同一事务内，并发写入时各部分之间可能不一致

func summary(db *gorm.DB) (*dto.Summary, error) {
	result := &dto.Summary{StatusStats: make([]dto.StatusStat, 0)}
	counts := []struct {
		model any
		dest  *int64
	}{
		{&model.Trial{}, &result.Summary.Trials},
		{&model.Participant{}, &result.Summary.Participants},
		{&model.Activity{}, &result.Summary.Activities},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	if err := db.Raw(statusStatsSql).Scan(&result.StatusStats).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func participation(db *gorm.DB) ([]dto.Participation, error) {
	rows := make([]dto.Participation, 0)
	if err := db.Raw(participationSql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func snapshot(db *gorm.DB) (*dto.Snapshot, error) {
	s := &dto.Snapshot{
		Trials:       make([]model.Trial, 0),
		Participants: make([]dto.ParticipantRow, 0),
		Activities:   make([]dto.ActivityRow, 0),
	}
	if err := db.Order("id").Find(&s.Trials).Error; err != nil {
		return nil, err
	}
	if err := db.Raw(exportParticipantsSql).Scan(&s.Participants).Error; err != nil {
		return nil, err
	}
	if err := db.Raw(exportActivitiesSql).Scan(&s.Activities).Error; err != nil {
		return nil, err
	}
	return s, nil
}
