package v1

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/i18n"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/queue"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

// ActivationLogic 处理客户侧的公开访问路径，不要求登录态
type ActivationLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewActivationLogic(ctx context.Context, core *core.Core) *ActivationLogic {
	l := &ActivationLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

// JourneyView 客户访问旅程页面时返回的视图
type JourneyView struct {
	Company      string            `json:"company"`
	Contact      string            `json:"contact"`
	ClientStatus string            `json:"client_status"`
	PageType     types.PageType    `json:"page_type"`
	PageOrder    int               `json:"page_order"`
	Title        string            `json:"title"`
	Content      types.PageContent `json:"content"`
	NextPageType types.PageType    `json:"next_page_type,omitempty"`
}

const journeyTokenCacheTTL = time.Minute * 10

func journeyTokenCacheKey(token string) string {
	return "journey:token:" + token
}

// resolveClient 通过访问码定位客户，格式非法或无记录统一返回 404，
// 避免暴露码空间的占用情况
func (l *ActivationLogic) resolveClient(token string) (*types.Client, error) {
	if !utils.ValidAccessCode(token) {
		return nil, errors.New("ActivationLogic.resolveClient.format", i18n.ERROR_CLIENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	cacheKey := journeyTokenCacheKey(token)
	if raw, err := l.core.Plugins.Cache().Get(l.ctx, cacheKey); err == nil && raw != "" {
		var cached types.Client
		if err = json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	appid := l.core.DefaultAppid()
	client, err := l.core.Store().ClientStore().GetByToken(l.ctx, appid, token)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ActivationLogic.resolveClient.ClientStore.GetByToken", i18n.ERROR_INTERNAL, err)
	}
	if client == nil {
		return nil, errors.New("ActivationLogic.resolveClient.nil", i18n.ERROR_CLIENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	if raw, err := json.Marshal(client); err == nil {
		if err = l.core.Plugins.Cache().SetEx(l.ctx, cacheKey, string(raw), journeyTokenCacheTTL); err != nil {
			slog.Error("Failed to cache journey token", slog.String("error", err.Error()))
		}
	}
	return client, nil
}

// recordEvent 行为事件优先走队列异步落库，队列不可用时同步写入
func (l *ActivationLogic) recordEvent(client *types.Client, pageType types.PageType, kind string) {
	l.core.Metrics().JourneyEventInc(string(pageType), kind)

	if q := l.core.Srv().JourneyQueue(); q != nil {
		err := q.EnqueueEvent(l.ctx, queue.JourneyEventTask{
			Appid:     client.Appid,
			ClientID:  client.ID,
			PageType:  string(pageType),
			Kind:      kind,
			CreatedAt: time.Now().Unix(),
		})
		if err == nil {
			return
		}
		slog.Error("Failed to enqueue journey event, fallback to store",
			slog.String("client_id", client.ID), slog.String("error", err.Error()))
	}

	if err := l.core.Store().JourneyEventStore().Create(l.ctx, types.JourneyEvent{
		Appid:     client.Appid,
		ClientID:  client.ID,
		PageType:  pageType,
		Kind:      kind,
		CreatedAt: time.Now().Unix(),
	}); err != nil {
		slog.Error("Failed to record journey event",
			slog.String("client_id", client.ID), slog.String("error", err.Error()))
	}
}

// ViewPage 客户通过访问码打开旅程页面
func (l *ActivationLogic) ViewPage(token, pageTypeStr string) (*JourneyView, error) {
	pageType := types.StringToPageType(pageTypeStr)
	if pageType == "" {
		return nil, errors.New("ActivationLogic.ViewPage.pageType", i18n.ERROR_CLIENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	client, err := l.resolveClient(token)
	if err != nil {
		return nil, err
	}

	page, err := l.core.Store().JourneyPageStore().Get(l.ctx, client.Appid, client.ID, pageType)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ActivationLogic.ViewPage.JourneyPageStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if page == nil {
		return nil, errors.New("ActivationLogic.ViewPage.page.nil", i18n.ERROR_JOURNEY_PAGE_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	l.recordEvent(client, pageType, types.JOURNEY_EVENT_VIEW)

	return &JourneyView{
		Company:      client.Company,
		Contact:      client.Contact,
		ClientStatus: client.Status,
		PageType:     page.PageType,
		PageOrder:    page.PageOrder,
		Title:        page.Title,
		Content:      page.Content,
		NextPageType: types.NextPageType(page.PageType),
	}, nil
}

type AcknowledgeResult struct {
	ClientStatus string         `json:"client_status"`
	NextPageType types.PageType `json:"next_page_type,omitempty"`
}

// AcknowledgePage 客户在页面上完成确认动作。
// 激活页的首次确认会把客户状态从 pending 置为 activated。
func (l *ActivationLogic) AcknowledgePage(token, pageTypeStr string) (*AcknowledgeResult, error) {
	pageType := types.StringToPageType(pageTypeStr)
	if pageType == "" {
		return nil, errors.New("ActivationLogic.AcknowledgePage.pageType", i18n.ERROR_CLIENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	client, err := l.resolveClient(token)
	if err != nil {
		return nil, err
	}

	if pageType == types.PAGE_TYPE_ACTIVATION && client.Status == types.CLIENT_STATUS_PENDING {
		if err = l.core.Store().ClientStore().UpdateStatus(l.ctx, client.Appid, client.ID, types.CLIENT_STATUS_ACTIVATED); err != nil {
			return nil, errors.New("ActivationLogic.AcknowledgePage.ClientStore.UpdateStatus", i18n.ERROR_INTERNAL, err)
		}
		client.Status = types.CLIENT_STATUS_ACTIVATED
		l.core.Plugins.Cache().Del(l.ctx, journeyTokenCacheKey(token))
	}

	l.recordEvent(client, pageType, types.JOURNEY_EVENT_ACKNOWLEDGE)

	return &AcknowledgeResult{
		ClientStatus: client.Status,
		NextPageType: types.NextPageType(pageType),
	}, nil
}
