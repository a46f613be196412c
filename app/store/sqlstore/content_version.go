package sqlstore

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/register"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.ContentVersionStore = NewContentVersionStore(provider)
	})
}

type ContentVersionStore struct {
	CommonFields
}

func NewContentVersionStore(provider SqlProviderAchieve) *ContentVersionStore {
	repo := &ContentVersionStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_CONTENT_VERSION)
	repo.SetAllColumns("id", "appid", "client_id", "page_id", "version", "title", "content", "hypothesis", "editor_id", "is_current", "created_at")
	return repo
}

// Create 写入新的内容版本
func (s *ContentVersionStore) Create(ctx context.Context, data types.ContentVersion) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "appid", "client_id", "page_id", "version", "title", "content", "hypothesis", "editor_id", "is_current", "created_at").
		Values(data.ID, data.Appid, data.ClientID, data.PageID, data.Version, data.Title, []byte(data.Content), data.Hypothesis, data.EditorID, data.IsCurrent, data.CreatedAt)

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

func (s *ContentVersionStore) Get(ctx context.Context, appid, id string) (*types.ContentVersion, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"appid": appid, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.ContentVersion
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetCurrent 获取页面当前生效的版本
func (s *ContentVersionStore) GetCurrent(ctx context.Context, appid, pageID string) (*types.ContentVersion, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"appid": appid, "page_id": pageID, "is_current": true})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.ContentVersion
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// MaxVersion 获取页面当前最大的版本号，无版本时返回 0
func (s *ContentVersionStore) MaxVersion(ctx context.Context, appid, pageID string) (int64, error) {
	query := sq.Select("COALESCE(MAX(version), 0)").From(s.GetTable()).
		Where(sq.Eq{"appid": appid, "page_id": pageID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var max int64
	if err = s.GetReplica(ctx).Get(&max, queryString, args...); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return max, nil
}

// UnsetCurrent 取消页面当前生效版本的标记
func (s *ContentVersionStore) UnsetCurrent(ctx context.Context, appid, pageID string) error {
	query := sq.Update(s.GetTable()).Set("is_current", false).
		Where(sq.Eq{"appid": appid, "page_id": pageID, "is_current": true})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// List 分页获取版本列表，新版本在前
func (s *ContentVersionStore) List(ctx context.Context, opts types.ListContentVersionOptions, page, pageSize uint64) ([]types.ContentVersion, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("version DESC")
	opts.Apply(&query)

	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.ContentVersion
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ContentVersionStore) Total(ctx context.Context, opts types.ListContentVersionOptions) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())
	opts.Apply(&query)

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *ContentVersionStore) DeleteByClient(ctx context.Context, appid, clientID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"appid": appid, "client_id": clientID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListHypothesisOutcomes 关联查询内容修改假设与客户当前结果状态
func (s *ContentVersionStore) ListHypothesisOutcomes(ctx context.Context, appid string, page, pageSize uint64) ([]types.HypothesisOutcome, error) {
	query := sq.Select(
		"v.client_id", "c.company", "v.page_id", "p.page_type", "v.version", "v.hypothesis", "v.created_at",
		"COALESCE(o.status, '"+types.OUTCOME_STATUS_PENDING+"') AS outcome_status",
	).
		From(s.GetTable() + " v").
		Join(types.TABLE_CLIENT.Name() + " c ON c.id = v.client_id").
		Join(types.TABLE_JOURNEY_PAGE.Name() + " p ON p.id = v.page_id").
		LeftJoin(types.TABLE_JOURNEY_OUTCOME.Name() + " o ON o.client_id = v.client_id AND o.is_current = TRUE").
		Where(sq.Eq{"v.appid": appid}).
		Where(sq.NotEq{"v.hypothesis": ""}).
		OrderBy("v.created_at DESC")

	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.HypothesisOutcome
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
