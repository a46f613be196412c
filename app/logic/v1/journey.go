package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/i18n"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

type JourneyLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewJourneyLogic(ctx context.Context, core *core.Core) *JourneyLogic {
	l := &JourneyLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}

	return l
}

// ListPages 返回客户的四个旅程页面，按旅程顺序排列
func (l *JourneyLogic) ListPages(clientID string) ([]types.JourneyPage, error) {
	appid, _ := InjectAppid(l.ctx)

	client, err := l.core.Store().ClientStore().GetClient(l.ctx, appid, clientID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JourneyLogic.ListPages.ClientStore.GetClient", i18n.ERROR_INTERNAL, err)
	}
	if client == nil {
		return nil, errors.New("JourneyLogic.ListPages.client.nil", i18n.ERROR_CLIENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	list, err := l.core.Store().JourneyPageStore().ListByClient(l.ctx, appid, clientID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JourneyLogic.ListPages.JourneyPageStore.ListByClient", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

func (l *JourneyLogic) GetPage(clientID, pageTypeStr string) (*types.JourneyPage, error) {
	pageType := types.StringToPageType(pageTypeStr)
	if pageType == "" {
		return nil, errors.New("JourneyLogic.GetPage.pageType", i18n.ERROR_INVALID_PAGE_TYPE, nil).Code(http.StatusBadRequest)
	}

	appid, _ := InjectAppid(l.ctx)
	page, err := l.core.Store().JourneyPageStore().Get(l.ctx, appid, clientID, pageType)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JourneyLogic.GetPage.JourneyPageStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if page == nil {
		return nil, errors.New("JourneyLogic.GetPage.nil", i18n.ERROR_JOURNEY_PAGE_NOT_FOUND, nil).Code(http.StatusNotFound)
	}
	return page, nil
}

// ListEvents 返回客户侧的访问与确认事件，新事件在前
func (l *JourneyLogic) ListEvents(clientID string, page, pageSize uint64) ([]types.JourneyEvent, error) {
	appid, _ := InjectAppid(l.ctx)

	list, err := l.core.Store().JourneyEventStore().ListByClient(l.ctx, appid, clientID, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JourneyLogic.ListEvents.JourneyEventStore.ListByClient", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

type UpdatePageContentArgs struct {
	Title      string            `json:"title" binding:"required"`
	Content    types.PageContent `json:"content" binding:"required"`
	Hypothesis string            `json:"hypothesis"`
}

// UpdatePageContent 更新页面内容并生成新的内容版本，版本号单调递增，
// 旧版本保留为历史记录
func (l *JourneyLogic) UpdatePageContent(pageID string, args UpdatePageContentArgs) (*types.ContentVersion, error) {
	appid, _ := InjectAppid(l.ctx)

	page, err := l.core.Store().JourneyPageStore().GetByID(l.ctx, appid, pageID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JourneyLogic.UpdatePageContent.JourneyPageStore.GetByID", i18n.ERROR_INTERNAL, err)
	}
	if page == nil {
		return nil, errors.New("JourneyLogic.UpdatePageContent.page.nil", i18n.ERROR_JOURNEY_PAGE_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	var version types.ContentVersion
	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		maxVersion, err := l.core.Store().ContentVersionStore().MaxVersion(ctx, appid, pageID)
		if err != nil {
			return errors.New("JourneyLogic.UpdatePageContent.ContentVersionStore.MaxVersion", i18n.ERROR_INTERNAL, err)
		}

		if err = l.core.Store().ContentVersionStore().UnsetCurrent(ctx, appid, pageID); err != nil {
			return errors.New("JourneyLogic.UpdatePageContent.ContentVersionStore.UnsetCurrent", i18n.ERROR_INTERNAL, err)
		}

		version = types.ContentVersion{
			ID:         utils.GenRandomID(),
			Appid:      appid,
			ClientID:   page.ClientID,
			PageID:     pageID,
			Version:    maxVersion + 1,
			Title:      args.Title,
			Content:    args.Content,
			Hypothesis: args.Hypothesis,
			EditorID:   l.GetUserInfo().User,
			IsCurrent:  true,
			CreatedAt:  time.Now().Unix(),
		}
		if err = l.core.Store().ContentVersionStore().Create(ctx, version); err != nil {
			return errors.New("JourneyLogic.UpdatePageContent.ContentVersionStore.Create", i18n.ERROR_INTERNAL, err)
		}

		if err = l.core.Store().JourneyPageStore().UpdateContent(ctx, appid, pageID, args.Title, args.Content); err != nil {
			return errors.New("JourneyLogic.UpdatePageContent.JourneyPageStore.UpdateContent", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &version, nil
}
