package trial

import (
	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/global/database"
	"clinical-trial-system/internal/global/logger"
	"clinical-trial-system/internal/global/response"
	"clinical-trial-system/internal/global/sentry/tracing"
	"clinical-trial-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// TrialReq 创建与更新试验的请求体
type TrialReq struct {
	Name        string            `json:"name" binding:"required,max=255"`
	Description string            `json:"description"`
	Status      model.TrialStatus `json:"status" binding:"omitempty,oneof=active completed pending"`
	StartDate   model.Date        `json:"start_date"`
	EndDate     model.Date        `json:"end_date"`
}

func ListTrials(c *gin.Context) {
	trials, err := listTrials(database.DB.WithContext(tracing.ContextWithSpan(c)))
	if err != nil {
		logger.WithContext(log, c).Error("查询试验列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, trials)
}

func GetTrial(c *gin.Context) {
	var uri dto.IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}

	trial, err := getTrial(database.DB.WithContext(tracing.ContextWithSpan(c)), uri.ID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("Trial not found"))
		return
	case err != nil:
		logger.WithContext(log, c).Error("查询试验失败", "error", err, "id", uri.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, trial)
}

func CreateTrial(c *gin.Context) {
	var req TrialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}
	if req.Status == "" {
		req.Status = model.TrialPending
	}

	trial := model.Trial{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := database.DB.WithContext(tracing.ContextWithSpan(c)).Create(&trial).Error; err != nil {
		logger.WithContext(log, c).Error("创建试验失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	logger.WithContext(log, c).Info("试验创建成功", "id", trial.ID, "name", trial.Name)
	response.Created(c, trial)
}

func UpdateTrial(c *gin.Context) {
	var uri dto.IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}
	var req TrialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}

	db := database.DB.WithContext(tracing.ContextWithSpan(c))
	if _, err := getTrial(db, uri.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("Trial not found"))
			return
		}
		logger.WithContext(log, c).Error("查询试验失败", "error", err, "id", uri.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if err := updateTrial(db, uri.ID, &req); err != nil {
		logger.WithContext(log, c).Error("更新试验失败", "error", err, "id", uri.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	logger.WithContext(log, c).Info("试验更新成功", "id", uri.ID, "status", req.Status)
	response.Message(c, "Trial updated")
}

func DeleteTrial(c *gin.Context) {
	var uri dto.IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.InvalidRequest(err))
		return
	}

	affected, err := deleteTrial(database.DB.WithContext(tracing.ContextWithSpan(c)), uri.ID)
	if err != nil {
		logger.WithContext(log, c).Error("删除试验失败", "error", err, "id", uri.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if affected == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("Trial not found"))
		return
	}

	logger.WithContext(log, c).Info("试验已删除", "id", uri.ID)
	response.Message(c, "Trial deleted")
}
