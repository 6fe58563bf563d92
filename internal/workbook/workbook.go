// Package workbook 把导出快照转换成三个 sheet 的 Excel 工作簿
package workbook

import (
	"bytes"
	"fmt"
	"time"

	"clinical-trial-system/internal/dto"
	"clinical-trial-system/tools"

	"github.com/xuri/excelize/v2"
)

const (
	SheetTrials       = "Trials Registry"
	SheetParticipants = "Subject Registry"
	SheetActivities   = "Clinical Activities"
)

// Sheets 工作簿中 sheet 的固定顺序
var Sheets = []string{SheetTrials, SheetParticipants, SheetActivities}

// Filename 导出文件名，同一天重复导出会得到相同的文件名
func Filename(product string, now time.Time) string {
	return fmt.Sprintf("%s_GlobalReport_%s.xlsx", product, now.Format("2006-01-02"))
}

// Build 由一份快照生成完整工作簿；任一 sheet 失败都不会返回半成品
func Build(s *dto.Snapshot) (*excelize.File, error) {
	if s == nil {
		return nil, fmt.Errorf("快照为空")
	}
	f := excelize.NewFile()

	sets := []struct {
		sheet string
		data  interface{}
	}{
		{SheetTrials, s.Trials},
		{SheetParticipants, s.Participants},
		{SheetActivities, s.Activities},
	}
	for _, set := range sets {
		if err := tools.ExportToExcel(f, set.sheet, set.data); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("写入 %s 失败: %w", set.sheet, err)
		}
	}

	// 去掉 excelize 默认创建的 Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, err
	}
	idx, err := f.GetSheetIndex(SheetTrials)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)
	return f, nil
}

// Bytes 生成工作簿并序列化为 xlsx 字节
func Bytes(s *dto.Snapshot) ([]byte, error) {
	f, err := Build(s)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
