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

type ContentVersionLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewContentVersionLogic(ctx context.Context, core *core.Core) *ContentVersionLogic {
	l := &ContentVersionLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}

	return l
}

type ContentVersionList struct {
	List  []types.ContentVersion `json:"list"`
	Total int64                  `json:"total"`
}

// ListVersions 返回页面的版本历史，新版本在前
func (l *ContentVersionLogic) ListVersions(pageID string, page, pageSize uint64) (*ContentVersionList, error) {
	appid, _ := InjectAppid(l.ctx)

	opts := types.ListContentVersionOptions{
		Appid:  appid,
		PageID: pageID,
	}

	list, err := l.core.Store().ContentVersionStore().List(l.ctx, opts, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ContentVersionLogic.ListVersions.ContentVersionStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().ContentVersionStore().Total(l.ctx, opts)
	if err != nil {
		return nil, errors.New("ContentVersionLogic.ListVersions.ContentVersionStore.Total", i18n.ERROR_INTERNAL, err)
	}

	return &ContentVersionList{
		List:  list,
		Total: total,
	}, nil
}

func (l *ContentVersionLogic) GetVersion(id string) (*types.ContentVersion, error) {
	appid, _ := InjectAppid(l.ctx)

	version, err := l.core.Store().ContentVersionStore().Get(l.ctx, appid, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ContentVersionLogic.GetVersion.ContentVersionStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if version == nil {
		return nil, errors.New("ContentVersionLogic.GetVersion.nil", i18n.ERROR_VERSION_NOT_FOUND, nil).Code(http.StatusNotFound)
	}
	return version, nil
}

// GetCurrentVersion 获取页面当前生效的版本
func (l *ContentVersionLogic) GetCurrentVersion(pageID string) (*types.ContentVersion, error) {
	appid, _ := InjectAppid(l.ctx)

	version, err := l.core.Store().ContentVersionStore().GetCurrent(l.ctx, appid, pageID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ContentVersionLogic.GetCurrentVersion.ContentVersionStore.GetCurrent", i18n.ERROR_INTERNAL, err)
	}
	if version == nil {
		return nil, errors.New("ContentVersionLogic.GetCurrentVersion.nil", i18n.ERROR_VERSION_NOT_FOUND, nil).Code(http.StatusNotFound)
	}
	return version, nil
}

// RestoreVersion 将历史版本的内容恢复为当前内容。
// 恢复不会改写历史，而是基于历史内容生成一个新的版本记录。
func (l *ContentVersionLogic) RestoreVersion(id string) (*types.ContentVersion, error) {
	appid, _ := InjectAppid(l.ctx)

	source, err := l.GetVersion(id)
	if err != nil {
		return nil, err
	}

	var restored types.ContentVersion
	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		maxVersion, err := l.core.Store().ContentVersionStore().MaxVersion(ctx, appid, source.PageID)
		if err != nil {
			return errors.New("ContentVersionLogic.RestoreVersion.ContentVersionStore.MaxVersion", i18n.ERROR_INTERNAL, err)
		}

		if err = l.core.Store().ContentVersionStore().UnsetCurrent(ctx, appid, source.PageID); err != nil {
			return errors.New("ContentVersionLogic.RestoreVersion.ContentVersionStore.UnsetCurrent", i18n.ERROR_INTERNAL, err)
		}

		restored = types.ContentVersion{
			ID:         utils.GenRandomID(),
			Appid:      appid,
			ClientID:   source.ClientID,
			PageID:     source.PageID,
			Version:    maxVersion + 1,
			Title:      source.Title,
			Content:    source.Content,
			Hypothesis: source.Hypothesis,
			EditorID:   l.GetUserInfo().User,
			IsCurrent:  true,
			CreatedAt:  time.Now().Unix(),
		}
		if err = l.core.Store().ContentVersionStore().Create(ctx, restored); err != nil {
			return errors.New("ContentVersionLogic.RestoreVersion.ContentVersionStore.Create", i18n.ERROR_INTERNAL, err)
		}

		if err = l.core.Store().JourneyPageStore().UpdateContent(ctx, appid, source.PageID, source.Title, source.Content); err != nil {
			return errors.New("ContentVersionLogic.RestoreVersion.JourneyPageStore.UpdateContent", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &restored, nil
}
