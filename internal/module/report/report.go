package report

import (
	"time"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/global/archive"
	"clinical-trial-system/internal/global/database"
	"clinical-trial-system/internal/global/logger"
	"clinical-trial-system/internal/global/response"
	"clinical-trial-system/internal/global/sentry/tracing"
	"clinical-trial-system/internal/workbook"
	"clinical-trial-system/tools"

	"github.com/gin-gonic/gin"
)

// Summary 三张表的总数与按状态分组的试验数
func Summary(c *gin.Context) {
	result, err := summary(database.DB.WithContext(tracing.ContextWithSpan(c)))
	if err != nil {
		logger.WithContext(log, c).Error("统计汇总失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, result)
}

// Participation 每个试验的受试者人数
func Participation(c *gin.Context) {
	rows, err := participation(database.DB.WithContext(tracing.ContextWithSpan(c)))
	if err != nil {
		logger.WithContext(log, c).Error("统计参与人数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, rows)
}

// Export 全量关系快照
func Export(c *gin.Context) {
	s, err := snapshot(database.DB.WithContext(tracing.ContextWithSpan(c)))
	if err != nil {
		logger.WithContext(log, c).Error("导出快照失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, s)
}

// buildWorkbook 读取一次快照并生成 xlsx，任一步失败都不返回数据
func buildWorkbook(c *gin.Context) (string, []byte, bool) {
	s, err := snapshot(database.DB.WithContext(tracing.ContextWithSpan(c)))
	if err != nil {
		logger.WithContext(log, c).Error("导出快照失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return "", nil, false
	}

	span := tracing.StartSpan(c, "report.workbook", "build xlsx")
	data, err := workbook.Bytes(s)
	tracing.Finish(span)
	if err != nil {
		logger.WithContext(log, c).Error("生成工作簿失败", "error", err)
		response.Fail(c, response.ErrExport.WithOrigin(err))
		return "", nil, false
	}

	filename := workbook.Filename(config.Get().Product, time.Now())
	logger.WithContext(log, c).Info("工作簿生成成功",
		"filename", filename,
		"trials", len(s.Trials),
		"participants", len(s.Participants),
		"activities", len(s.Activities),
		"bytes", len(data))
	return filename, data, true
}

// ExportXlsx 以附件形式下载工作簿
func ExportXlsx(c *gin.Context) {
	filename, data, ok := buildWorkbook(c)
	if !ok {
		return
	}
	tools.SendAttachment(c, filename, tools.ExcelContentType, data)
}

// Archive 生成工作簿并保存到导出归档，返回下载链接
func Archive(c *gin.Context) {
	if archive.Default == nil {
		response.Fail(c, response.ErrExport.WithTips("Export archive is not configured"))
		return
	}
	filename, data, ok := buildWorkbook(c)
	if !ok {
		return
	}

	span := tracing.StartSpan(c, "report.archive", filename)
	result, err := archive.Default.Put(tracing.ContextWithSpan(c), filename, tools.ExcelContentType, data)
	tracing.Finish(span)
	if err != nil {
		logger.WithContext(log, c).Error("保存导出归档失败", "error", err, "filename", filename)
		response.Fail(c, response.ErrExport.WithOrigin(err))
		return
	}

	logger.WithContext(log, c).Info("导出归档成功", "key", result.Key)
	response.Success(c, result)
}
