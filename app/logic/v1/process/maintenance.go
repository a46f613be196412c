package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/register"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/safe"
)

func init() {
	register.RegisterFunc[*Process](ProcessKey{}, func(p *Process) {
		spec := p.Core().Cfg().Journey.SnapshotCron
		if spec == "" {
			spec = "0 4 * * *"
		}

		p.Cron().AddFunc(spec, func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// 多实例部署时只允许一个实例执行夜间维护
			locked, err := p.Core().TryLock(ctx, "journey:maintenance")
			if err != nil {
				slog.Error("Failed to acquire maintenance lock", slog.String("error", err.Error()))
				return
			}
			if !locked {
				slog.Info("Maintenance already running elsewhere, skipped")
				return
			}

			safe.RunWithLog(func() {
				refreshAnalyticsOverview(p.Core())
			}, "process.refreshAnalyticsOverview")
			safe.RunWithLog(func() {
				cleanupExpiredData(p.Core())
			}, "process.cleanupExpiredData")
		})

		slog.Info("Journey maintenance scheduler registered", slog.String("spec", spec))
	})
}

// refreshAnalyticsOverview 夜间预热分析缓存，避免后台首屏慢查询
func refreshAnalyticsOverview(c *core.Core) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*5)
	defer cancel()

	ctx = context.WithValue(ctx, v1.APPID_KEY, c.DefaultAppid())

	if err := v1.NewAnalyticsLogic(ctx, c).RefreshOverview(); err != nil {
		slog.Error("Failed to refresh analytics overview", slog.String("error", err.Error()))
		return
	}
	slog.Info("Analytics overview refreshed")
}

// cleanupExpiredData 清理过期的 access token 与超出保留期的行为事件
func cleanupExpiredData(c *core.Core) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*5)
	defer cancel()

	if err := c.Store().AccessTokenStore().DeleteExpired(ctx, time.Now().Unix()); err != nil {
		slog.Error("Failed to delete expired access tokens", slog.String("error", err.Error()))
	}

	retention := c.Cfg().Journey.EventRetentionDays
	if retention <= 0 {
		return
	}

	before := time.Now().AddDate(0, 0, -retention).Unix()
	if err := c.Store().JourneyEventStore().DeleteBefore(ctx, before); err != nil {
		slog.Error("Failed to clean journey events", slog.String("error", err.Error()))
		return
	}
	slog.Info("Journey events cleaned", slog.Int("retention_days", retention))
}
