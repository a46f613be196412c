package v1

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/i18n"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

type AnalyticsLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewAnalyticsLogic(ctx context.Context, core *core.Core) *AnalyticsLogic {
	l := &AnalyticsLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}

	return l
}

type AnalyticsOverview struct {
	TotalClients   int64                     `json:"total_clients"`
	PendingClients int64                     `json:"pending_clients"`
	Activated      int64                     `json:"activated"`
	ActivationRate float64                   `json:"activation_rate"`
	Outcomes       map[string]int64          `json:"outcomes"`
	ConversionRate float64                   `json:"conversion_rate"`
	Events         []types.JourneyEventCount `json:"events"`
	GeneratedAt    int64                     `json:"generated_at"`
}

const overviewCacheKey = "analytics:overview"

func (l *AnalyticsLogic) overviewCacheTTL() time.Duration {
	ttl := l.core.Cfg().Journey.AnalyticsCacheTTL
	if ttl <= 0 {
		ttl = 300
	}
	return time.Duration(ttl) * time.Second
}

// Overview 聚合客户数、结果分布与转化率，结果缓存一段时间
func (l *AnalyticsLogic) Overview() (*AnalyticsOverview, error) {
	if cached, err := l.core.Plugins.Cache().Get(l.ctx, overviewCacheKey); err == nil && cached != "" {
		var res AnalyticsOverview
		if err = json.Unmarshal([]byte(cached), &res); err == nil {
			return &res, nil
		}
	}

	res, err := l.buildOverview()
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(res); err == nil {
		if err = l.core.Plugins.Cache().SetEx(l.ctx, overviewCacheKey, string(raw), l.overviewCacheTTL()); err != nil {
			slog.Warn("Failed to cache analytics overview", slog.String("error", err.Error()))
		}
	}

	return res, nil
}

// ConversionRate 转化率 = 已付费客户 / 已有明确结果的客户，
// pending 不计入分母
func ConversionRate(outcomes map[string]int64) float64 {
	var resolved int64
	for status, total := range outcomes {
		if status != types.OUTCOME_STATUS_PENDING {
			resolved += total
		}
	}
	if resolved == 0 {
		return 0
	}
	return float64(outcomes[types.OUTCOME_STATUS_PAID]) / float64(resolved)
}

// ActivationRate 已激活客户在全部客户中的占比
func ActivationRate(total, pending int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(total-pending) / float64(total)
}

func (l *AnalyticsLogic) buildOverview() (*AnalyticsOverview, error) {
	timer := l.core.Metrics().AnalyticsRefreshTimer()
	defer timer.ObserveDuration()

	appid, _ := InjectAppid(l.ctx)

	total, err := l.core.Store().ClientStore().Total(l.ctx, types.ListClientOptions{Appid: appid})
	if err != nil {
		return nil, errors.New("AnalyticsLogic.buildOverview.ClientStore.Total", i18n.ERROR_INTERNAL, err)
	}

	pending, err := l.core.Store().ClientStore().Total(l.ctx, types.ListClientOptions{Appid: appid, Status: types.CLIENT_STATUS_PENDING})
	if err != nil {
		return nil, errors.New("AnalyticsLogic.buildOverview.ClientStore.Total.pending", i18n.ERROR_INTERNAL, err)
	}

	outcomeCounts, err := l.core.Store().JourneyOutcomeStore().CountByStatus(l.ctx, appid)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AnalyticsLogic.buildOverview.JourneyOutcomeStore.CountByStatus", i18n.ERROR_INTERNAL, err)
	}

	events, err := l.core.Store().JourneyEventStore().CountByPageType(l.ctx, appid)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AnalyticsLogic.buildOverview.JourneyEventStore.CountByPageType", i18n.ERROR_INTERNAL, err)
	}

	outcomes := make(map[string]int64)
	for _, v := range outcomeCounts {
		outcomes[v.Status] = v.Total
	}

	conversionRate := ConversionRate(outcomes)
	activationRate := ActivationRate(total, pending)

	l.core.Metrics().SetClientsGauge(types.CLIENT_STATUS_PENDING, pending)
	l.core.Metrics().SetClientsGauge(types.CLIENT_STATUS_ACTIVATED, total-pending)

	return &AnalyticsOverview{
		TotalClients:   total,
		PendingClients: pending,
		Activated:      total - pending,
		ActivationRate: activationRate,
		Outcomes:       outcomes,
		ConversionRate: conversionRate,
		Events:         events,
		GeneratedAt:    time.Now().Unix(),
	}, nil
}

// RefreshOverview 重建并回填缓存，定时任务调用
func (l *AnalyticsLogic) RefreshOverview() error {
	res, err := l.buildOverview()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return errors.New("AnalyticsLogic.RefreshOverview.Marshal", i18n.ERROR_INTERNAL, err)
	}

	if err = l.core.Plugins.Cache().SetEx(l.ctx, overviewCacheKey, string(raw), l.overviewCacheTTL()); err != nil {
		return errors.New("AnalyticsLogic.RefreshOverview.Cache.SetEx", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// ListHypothesisOutcomes 返回带假设说明的内容版本与该客户当前结果的关联列表，
// 用于观察内容改动对转化的影响
func (l *AnalyticsLogic) ListHypothesisOutcomes(page, pageSize uint64) ([]types.HypothesisOutcome, error) {
	appid, _ := InjectAppid(l.ctx)

	list, err := l.core.Store().ContentVersionStore().ListHypothesisOutcomes(l.ctx, appid, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AnalyticsLogic.ListHypothesisOutcomes.ContentVersionStore.ListHypothesisOutcomes", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}
