package participant

import (
	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/global/database"
	"clinical-trial-system/internal/global/logger"
	"clinical-trial-system/internal/global/response"
	"clinical-trial-system/internal/global/sentry/tracing"
	"clinical-trial-system/internal/model"

	"github.com/gin-gonic/gin"
)

type EnrollReq struct {
	ParticipantName string     `json:"participant_name" binding:"required,max=255"`
	TrialID         uint       `json:"trial_id" binding:"required"`
	EnrollmentDate  model.Date `json:"enrollment_date"`
}

// UpdateReq 整体覆盖受试者信息，status 为空时保持原值
type UpdateReq struct {
	ParticipantName string                  `json:"participant_name" binding:"required,max=255"`
	TrialID         uint                    `json:"trial_id" binding:"required"`
	EnrollmentDate  model.Date              `json:"enrollment_date"`
	Status          model.ParticipantStatus `json:"status" binding:"omitempty,oneof=enrolled withdrawn completed"`
}

type ActivityReq struct {
	ParticipantID uint   `json:"participant_id" binding:"required"`
	ActivityType  string `json:"activity_type" binding:"required,max=255"`
	Notes         string `json:"notes"`
}

func ListParticipants(c *gin.Context) {
	rows, err := listParticipants(database.DB.WithContext(tracing.ContextWithSpan(c)))
	if err != nil {
		logger.WithContext(log, c).Error("查询受试者列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, rows)
}

func Enroll(c *gin.Context) {
	var req EnrollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}

	db := database.DB.WithContext(tracing.ContextWithSpan(c))
	ok, err := trialExists(db, req.TrialID)
	if err != nil {
		logger.WithContext(log, c).Error("查询试验失败", "error", err, "trial_id", req.TrialID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !ok {
		response.Fail(c, response.ErrNotFound.WithTips("Trial not found"))
		return
	}

	p := model.Participant{
		ParticipantName: req.ParticipantName,
		TrialID:         &req.TrialID,
		EnrollmentDate:  req.EnrollmentDate,
		Status:          model.ParticipantEnrolled,
	}
	if err := db.Create(&p).Error; err != nil {
		logger.WithContext(log, c).Error("登记受试者失败", "error", err, "trial_id", req.TrialID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	logger.WithContext(log, c).Info("受试者登记成功", "id", p.ID, "trial_id", req.TrialID)
	response.Created(c, dto.CreatedID{ID: p.ID})
}

func UpdateParticipant(c *gin.Context) {
	var uri dto.IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}
	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}

	db := database.DB.WithContext(tracing.ContextWithSpan(c))
	ok, err := participantExists(db, uri.ID)
	if err != nil {
		logger.WithContext(log, c).Error("查询受试者失败", "error", err, "id", uri.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !ok {
		response.Fail(c, response.ErrNotFound.WithTips("Participant not found"))
		return
	}
	if err := updateParticipant(db, uri.ID, &req); err != nil {
		logger.WithContext(log, c).Error("更新受试者失败", "error", err, "id", uri.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	logger.WithContext(log, c).Info("受试者信息已更新", "id", uri.ID, "status", req.Status)
	response.Message(c, "Participant profiling updated.")
}

func DeleteParticipant(c *gin.Context) {
	var uri dto.IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}

	affected, err := deleteParticipant(database.DB.WithContext(tracing.ContextWithSpan(c)), uri.ID)
	if err != nil {
		logger.WithContext(log, c).Error("删除受试者失败", "error", err, "id", uri.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if affected == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("Participant not found"))
		return
	}

	logger.WithContext(log, c).Info("受试者及其活动记录已删除", "id", uri.ID)
	response.Message(c, "Participant record and associated logs purged.")
}

func AddActivity(c *gin.Context) {
	var req ActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}

	db := database.DB.WithContext(tracing.ContextWithSpan(c))
	ok, err := participantExists(db, req.ParticipantID)
	if err != nil {
		logger.WithContext(log, c).Error("查询受试者失败", "error", err, "participant_id", req.ParticipantID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !ok {
		response.Fail(c, response.ErrNotFound.WithTips("Participant not found"))
		return
	}

	activity := model.Activity{
		ParticipantID: &req.ParticipantID,
		ActivityType:  req.ActivityType,
		Notes:         req.Notes,
	}
	if err := db.Create(&activity).Error; err != nil {
		logger.WithContext(log, c).Error("记录活动失败", "error", err, "participant_id", req.ParticipantID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	logger.WithContext(log, c).Info("活动记录成功", "id", activity.ID, "type", activity.ActivityType)
	response.Created(c, dto.CreatedID{ID: activity.ID})
}

func ListActivities(c *gin.Context) {
	var uri dto.IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}

	activities, err := listActivities(database.DB.WithContext(tracing.ContextWithSpan(c)), uri.ID)
	if err != nil {
		logger.WithContext(log, c).Error("查询活动记录失败", "error", err, "participant_id", uri.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, activities)
}
