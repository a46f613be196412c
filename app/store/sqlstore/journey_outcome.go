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
		provider.stores.JourneyOutcomeStore = NewJourneyOutcomeStore(provider)
	})
}

type JourneyOutcomeStore struct {
	CommonFields
}

func NewJourneyOutcomeStore(provider SqlProviderAchieve) *JourneyOutcomeStore {
	repo := &JourneyOutcomeStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNEY_OUTCOME)
	repo.SetAllColumns("id", "appid", "client_id", "status", "note", "recorder_id", "is_current", "recorded_at")
	return repo
}

// Create 写入结果记录
func (s *JourneyOutcomeStore) Create(ctx context.Context, data types.JourneyOutcome) error {
	if data.RecordedAt == 0 {
		data.RecordedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "appid", "client_id", "status", "note", "recorder_id", "is_current", "recorded_at").
		Values(data.ID, data.Appid, data.ClientID, data.Status, data.Note, data.RecorderID, data.IsCurrent, data.RecordedAt)

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

// GetCurrent 获取客户当前的结果记录
func (s *JourneyOutcomeStore) GetCurrent(ctx context.Context, appid, clientID string) (*types.JourneyOutcome, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"appid": appid, "client_id": clientID, "is_current": true})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.JourneyOutcome
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// ArchiveCurrent 将客户当前结果记录归档
func (s *JourneyOutcomeStore) ArchiveCurrent(ctx context.Context, appid, clientID string) error {
	query := sq.Update(s.GetTable()).Set("is_current", false).
		Where(sq.Eq{"appid": appid, "client_id": clientID, "is_current": true})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListByClient 获取客户全部结果历史，新记录在前
func (s *JourneyOutcomeStore) ListByClient(ctx context.Context, appid, clientID string) ([]types.JourneyOutcome, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"appid": appid, "client_id": clientID}).OrderBy("recorded_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JourneyOutcome
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// ListNotes 分页获取所有填写了备注的结果记录
func (s *JourneyOutcomeStore) ListNotes(ctx context.Context, appid string, page, pageSize uint64) ([]types.JourneyOutcome, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"appid": appid}).Where(sq.NotEq{"note": ""}).
		OrderBy("recorded_at DESC")

	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JourneyOutcome
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// CountByStatus 按状态聚合当前结果
func (s *JourneyOutcomeStore) CountByStatus(ctx context.Context, appid string) ([]types.OutcomeCount, error) {
	query := sq.Select("status", "COUNT(*) AS total").From(s.GetTable()).
		Where(sq.Eq{"appid": appid, "is_current": true}).GroupBy("status")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.OutcomeCount
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JourneyOutcomeStore) DeleteByClient(ctx context.Context, appid, clientID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"appid": appid, "client_id": clientID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
