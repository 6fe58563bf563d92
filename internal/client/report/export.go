package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"clinical-trial-system/internal/workbook"

	"github.com/natefinch/atomic"
)

// ExportWorkbook 拉取一次快照，在 dir 下生成 <product>_GlobalReport_<日期>.xlsx。
// 任一步失败都不会留下文件
func (c *Client) ExportWorkbook(ctx context.Context, dir, product string, now time.Time) (string, error) {
	s, err := c.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	data, err := workbook.Bytes(s)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	target := filepath.Join(dir, workbook.Filename(product, now))
	if err := atomic.WriteFile(target, bytes.NewReader(data)); err != nil {
		return "", err
	}
	return target, nil
}
