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
		provider.stores.JourneyEventStore = NewJourneyEventStore(provider)
	})
}

type JourneyEventStore struct {
	CommonFields
}

func NewJourneyEventStore(provider SqlProviderAchieve) *JourneyEventStore {
	repo := &JourneyEventStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNEY_EVENT)
	repo.SetAllColumns("id", "appid", "client_id", "page_type", "kind", "created_at")
	return repo
}

// Create 事件落库，id 由数据库自增
func (s *JourneyEventStore) Create(ctx context.Context, data types.JourneyEvent) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("appid", "client_id", "page_type", "kind", "created_at").
		Values(data.Appid, data.ClientID, data.PageType, data.Kind, data.CreatedAt)

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

// ListByClient 分页获取客户的事件记录，新事件在前
func (s *JourneyEventStore) ListByClient(ctx context.Context, appid, clientID string, page, pageSize uint64) ([]types.JourneyEvent, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"appid": appid, "client_id": clientID}).OrderBy("created_at DESC", "id DESC")

	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JourneyEvent
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// CountByPageType 按页面和事件类型聚合
func (s *JourneyEventStore) CountByPageType(ctx context.Context, appid string) ([]types.JourneyEventCount, error) {
	query := sq.Select("page_type", "kind", "COUNT(*) AS total").From(s.GetTable()).
		Where(sq.Eq{"appid": appid}).GroupBy("page_type", "kind")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JourneyEventCount
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JourneyEventStore) DeleteByClient(ctx context.Context, appid, clientID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"appid": appid, "client_id": clientID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// DeleteBefore 清理历史事件，定时任务调用
func (s *JourneyEventStore) DeleteBefore(ctx context.Context, createdAt int64) error {
	query := sq.Delete(s.GetTable()).Where(sq.Lt{"created_at": createdAt})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
