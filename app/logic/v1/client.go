package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/app/core/srv"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/i18n"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

type ClientLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewClientLogic(ctx context.Context, core *core.Core) *ClientLogic {
	l := &ClientLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}

	return l
}

// 访问码碰撞后的最大重试次数
const maxTokenRetries = 20

// genClientToken 生成未被占用的 G#### 访问码，随机碰撞多次后退化为顺序探测，
// 保证只要码空间还有剩余就一定能分配到
func (l *ClientLogic) genClientToken(appid string) (string, error) {
	total, err := l.core.Store().ClientStore().Total(l.ctx, types.ListClientOptions{Appid: appid})
	if err != nil {
		return "", errors.New("ClientLogic.genClientToken.ClientStore.Total", i18n.ERROR_INTERNAL, err)
	}
	if total >= utils.AccessCodeSpace {
		return "", errors.New("ClientLogic.genClientToken.exhausted", i18n.ERROR_TOKEN_EXHAUSTED, nil).Code(http.StatusConflict)
	}

	for i := 0; i < maxTokenRetries; i++ {
		token := utils.GenAccessCode()
		exist, err := l.core.Store().ClientStore().ExistToken(l.ctx, appid, token)
		if err != nil {
			return "", errors.New("ClientLogic.genClientToken.ClientStore.ExistToken", i18n.ERROR_INTERNAL, err)
		}
		if !exist {
			return token, nil
		}
		l.core.Metrics().TokenRetryInc()
	}

	tokens, err := l.core.Store().ClientStore().ListTokens(l.ctx, appid)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("ClientLogic.genClientToken.ClientStore.ListTokens", i18n.ERROR_INTERNAL, err)
	}

	used := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		used[t] = struct{}{}
	}
	if token := utils.FreeAccessCode(used); token != "" {
		return token, nil
	}

	return "", errors.New("ClientLogic.genClientToken.scan", i18n.ERROR_TOKEN_EXHAUSTED, nil).Code(http.StatusConflict)
}

type CreateClientArgs struct {
	Company    string `json:"company" binding:"required"`
	Contact    string `json:"contact" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Position   string `json:"position"`
	Salary     string `json:"salary"`
	Hypothesis string `json:"hypothesis"`
}

// CreateClient 创建客户档案，同时生成访问码并初始化四个旅程页面及其初始版本
func (l *ClientLogic) CreateClient(args CreateClientArgs) (*types.Client, error) {
	appid, _ := InjectAppid(l.ctx)

	token, err := l.genClientToken(appid)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	client := types.Client{
		ID:         utils.GenRandomID(),
		Appid:      appid,
		Company:    args.Company,
		Contact:    args.Contact,
		Email:      args.Email,
		Position:   args.Position,
		Salary:     args.Salary,
		Hypothesis: args.Hypothesis,
		Token:      token,
		Status:     types.CLIENT_STATUS_PENDING,
		Creator:    l.GetUserInfo().User,
		UpdatedAt:  now,
		CreatedAt:  now,
	}

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().ClientStore().Create(ctx, client); err != nil {
			return errors.New("ClientLogic.CreateClient.ClientStore.Create", i18n.ERROR_INTERNAL, err)
		}

		titles := GetContentByClientLanguage(l.ctx, types.DefaultPageTitles, types.DefaultPageTitlesCN)
		for _, pageType := range types.JourneyPageOrder {
			page := types.JourneyPage{
				ID:        utils.GenRandomID(),
				Appid:     appid,
				ClientID:  client.ID,
				PageType:  pageType,
				Title:     titles[pageType],
				Content:   types.DefaultPageContent(titles[pageType]),
				PageOrder: types.PageTypeOrder(pageType),
				UpdatedAt: now,
				CreatedAt: now,
			}
			if err := l.core.Store().JourneyPageStore().Create(ctx, page); err != nil {
				return errors.New("ClientLogic.CreateClient.JourneyPageStore.Create", i18n.ERROR_INTERNAL, err)
			}

			if err := l.core.Store().ContentVersionStore().Create(ctx, types.ContentVersion{
				ID:        utils.GenRandomID(),
				Appid:     appid,
				ClientID:  client.ID,
				PageID:    page.ID,
				Version:   1,
				Title:     page.Title,
				Content:   page.Content,
				EditorID:  l.GetUserInfo().User,
				IsCurrent: true,
				CreatedAt: now,
			}); err != nil {
				return errors.New("ClientLogic.CreateClient.ContentVersionStore.Create", i18n.ERROR_INTERNAL, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &client, nil
}

func (l *ClientLogic) GetClient(id string) (*types.Client, error) {
	appid, _ := InjectAppid(l.ctx)

	client, err := l.core.Store().ClientStore().GetClient(l.ctx, appid, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ClientLogic.GetClient.ClientStore.GetClient", i18n.ERROR_INTERNAL, err)
	}
	if client == nil {
		return nil, errors.New("ClientLogic.GetClient.nil", i18n.ERROR_CLIENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	return client, nil
}

func (l *ClientLogic) UpdateClient(id string, args types.UpdateClientArgs) error {
	client, err := l.GetClient(id)
	if err != nil {
		return err
	}

	appid, _ := InjectAppid(l.ctx)
	if err = l.Identification(l.lazyRolerFromClientID(appid, id), srv.PermissionEdit); err != nil {
		return err
	}

	if err = l.core.Store().ClientStore().Update(l.ctx, appid, id, args); err != nil {
		return errors.New("ClientLogic.UpdateClient.ClientStore.Update", i18n.ERROR_INTERNAL, err)
	}
	l.core.Plugins.Cache().Del(l.ctx, journeyTokenCacheKey(client.Token))
	return nil
}

// DeleteClient 删除客户及其全部旅程数据
func (l *ClientLogic) DeleteClient(id string) error {
	client, err := l.GetClient(id)
	if err != nil {
		return err
	}

	appid, _ := InjectAppid(l.ctx)
	if err = l.Identification(l.lazyRolerFromClientID(appid, id), srv.PermissionAdmin); err != nil {
		return err
	}

	defer l.core.Plugins.Cache().Del(l.ctx, journeyTokenCacheKey(client.Token))
	return l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().ContentVersionStore().DeleteByClient(ctx, appid, id); err != nil {
			return errors.New("ClientLogic.DeleteClient.ContentVersionStore.DeleteByClient", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().JourneyPageStore().DeleteByClient(ctx, appid, id); err != nil {
			return errors.New("ClientLogic.DeleteClient.JourneyPageStore.DeleteByClient", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().JourneyOutcomeStore().DeleteByClient(ctx, appid, id); err != nil {
			return errors.New("ClientLogic.DeleteClient.JourneyOutcomeStore.DeleteByClient", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().JourneyEventStore().DeleteByClient(ctx, appid, id); err != nil {
			return errors.New("ClientLogic.DeleteClient.JourneyEventStore.DeleteByClient", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().ClientStore().Delete(ctx, appid, id); err != nil {
			return errors.New("ClientLogic.DeleteClient.ClientStore.Delete", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}

type ClientList struct {
	List  []types.Client `json:"list"`
	Total int64          `json:"total"`
}

func (l *ClientLogic) ListClients(status, keywords string, page, pageSize uint64) (*ClientList, error) {
	appid, _ := InjectAppid(l.ctx)

	opts := types.ListClientOptions{
		Appid:    appid,
		Status:   status,
		Keywords: keywords,
	}

	list, err := l.core.Store().ClientStore().List(l.ctx, opts, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ClientLogic.ListClients.ClientStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().ClientStore().Total(l.ctx, opts)
	if err != nil {
		return nil, errors.New("ClientLogic.ListClients.ClientStore.Total", i18n.ERROR_INTERNAL, err)
	}

	return &ClientList{
		List:  list,
		Total: total,
	}, nil
}
