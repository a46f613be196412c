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
		provider.stores.ClientStore = NewClientStore(provider)
	})
}

type ClientStore struct {
	CommonFields
}

func NewClientStore(provider SqlProviderAchieve) *ClientStore {
	repo := &ClientStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_CLIENT)
	repo.SetAllColumns("id", "appid", "company", "contact", "email", "position", "salary", "hypothesis", "token", "status", "creator", "updated_at", "created_at")
	return repo
}

// Create 创建新的客户记录
func (s *ClientStore) Create(ctx context.Context, data types.Client) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = time.Now().Unix()
	}
	if data.Status == "" {
		data.Status = types.CLIENT_STATUS_PENDING
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "appid", "company", "contact", "email", "position", "salary", "hypothesis", "token", "status", "creator", "updated_at", "created_at").
		Values(data.ID, data.Appid, data.Company, data.Contact, data.Email, data.Position, data.Salary, data.Hypothesis, data.Token, data.Status, data.Creator, data.UpdatedAt, data.CreatedAt)

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

// GetClient 根据ID获取客户记录
func (s *ClientStore) GetClient(ctx context.Context, appid, id string) (*types.Client, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"appid": appid, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Client
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetByToken 根据访问码获取客户记录
func (s *ClientStore) GetByToken(ctx context.Context, appid, token string) (*types.Client, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"appid": appid, "token": token})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Client
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update 更新客户档案
func (s *ClientStore) Update(ctx context.Context, appid, id string, data types.UpdateClientArgs) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"company":    data.Company,
		"contact":    data.Contact,
		"email":      data.Email,
		"position":   data.Position,
		"salary":     data.Salary,
		"hypothesis": data.Hypothesis,
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

func (s *ClientStore) UpdateStatus(ctx context.Context, appid, id, status string) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().Unix(),
	}).Where(sq.Eq{"appid": appid, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Delete 删除客户记录
func (s *ClientStore) Delete(ctx context.Context, appid, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"appid": appid, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// List 分页获取客户列表
func (s *ClientStore) List(ctx context.Context, opts types.ListClientOptions, page, pageSize uint64) ([]types.Client, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at DESC")
	opts.Apply(&query)

	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Client
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ClientStore) Total(ctx context.Context, opts types.ListClientOptions) (int64, error) {
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

func (s *ClientStore) ExistToken(ctx context.Context, appid, token string) (bool, error) {
	query := sq.Select("1").From(s.GetTable()).Where(sq.Eq{"appid": appid, "token": token}).Limit(1)

	queryString, args, err := query.ToSql()
	if err != nil {
		return false, ErrorSqlBuild(err)
	}

	var exist bool
	if err = s.GetReplica(ctx).Get(&exist, queryString, args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return exist, nil
}

// ListTokens 返回租户下全部已占用的访问码
func (s *ClientStore) ListTokens(ctx context.Context, appid string) ([]string, error) {
	query := sq.Select("token").From(s.GetTable()).Where(sq.Eq{"appid": appid})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []string
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
