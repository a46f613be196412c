package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/register"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.JourneyPageStore = NewJourneyPageStore(provider)
	})
}

type JourneyPageStore struct {
	CommonFields
}

func NewJourneyPageStore(provider SqlProviderAchieve) *JourneyPageStore {
	repo := &JourneyPageStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNEY_PAGE)
	repo.SetAllColumns("id", "appid", "client_id", "page_type", "title", "content", "page_order", "updated_at", "created_at")
	return repo
}

// Create 创建旅程页面
func (s *JourneyPageStore) Create(ctx context.Context, data types.JourneyPage) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "appid", "client_id", "page_type", "title", "content", "page_order", "updated_at", "created_at").
		Values(data.ID, data.Appid, data.ClientID, data.PageType, data.Title, []byte(data.Content), data.PageOrder, data.UpdatedAt, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

// Get 按客户与页面类型获取页面，每个组合只有一条记录
func (s *JourneyPageStore) Get(ctx context.Context, appid, clientID string, pageType types.PageType) (*types.JourneyPage, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"appid": appid, "client_id": clientID, "page_type": pageType})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.JourneyPage
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *JourneyPageStore) GetByID(ctx context.Context, appid, id string) (*types.JourneyPage, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"appid": appid, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.JourneyPage
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListByClient 获取某客户的全部旅程页面，按旅程顺序排列
func (s *JourneyPageStore) ListByClient(ctx context.Context, appid, clientID string) ([]types.JourneyPage, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"appid": appid, "client_id": clientID}).OrderBy("page_order ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JourneyPage
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// UpdateContent 更新页面标题与内容
func (s *JourneyPageStore) UpdateContent(ctx context.Context, appid, id, title string, content types.PageContent) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"title":      title,
		"content":    []byte(content),
		"updated_at": time.Now().Unix(),
	}).Where(sq.Eq{"appid": appid, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
		return err
	}
	return nil
}

func (s *JourneyPageStore) DeleteByClient(ctx context.Context, appid, clientID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"appid": appid, "client_id": clientID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
