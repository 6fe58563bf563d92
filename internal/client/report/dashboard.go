package report

import (
	"context"
	"sync"

	"clinical-trial-system/internal/dto"

	"golang.org/x/sync/errgroup"
)

// View 一次成功加载后的报表页面数据
type View struct {
	Summary       dto.Summary
	Participation []dto.Participation
	Metrics       Metrics
}

// Dashboard 报表页面状态。失败的加载不会覆盖上一次成功的数据
type Dashboard struct {
	client *Client

	mu   sync.RWMutex
	view *View
}

func NewDashboard(client *Client) *Dashboard {
	return &Dashboard{client: client}
}

// Load 并发拉取汇总与参与人数，两者都成功才更新页面。
// ctx 被取消（页面已关闭）时丢弃迟到的结果
func (d *Dashboard) Load(ctx context.Context) error {
	var (
		summary       *dto.Summary
		participation []dto.Participation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = d.client.Summary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		participation, err = d.client.Participation(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	view := &View{
		Summary:       *summary,
		Participation: participation,
		Metrics:       ComputeMetrics(summary),
	}
	d.mu.Lock()
	d.view = view
	d.mu.Unlock()
	return nil
}

// View 返回最近一次成功加载的数据，尚未加载时为 nil
func (d *Dashboard) View() *View {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.view
}
