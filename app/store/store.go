package store

import (
	"context"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/sqlstore"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

// ClientStore 客户档案
type ClientStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Client) error
	GetClient(ctx context.Context, appid, id string) (*types.Client, error)
	GetByToken(ctx context.Context, appid, token string) (*types.Client, error)
	Update(ctx context.Context, appid, id string, data types.UpdateClientArgs) error
	UpdateStatus(ctx context.Context, appid, id, status string) error
	Delete(ctx context.Context, appid, id string) error
	List(ctx context.Context, opts types.ListClientOptions, page, pageSize uint64) ([]types.Client, error)
	Total(ctx context.Context, opts types.ListClientOptions) (int64, error)
	ExistToken(ctx context.Context, appid, token string) (bool, error)
	ListTokens(ctx context.Context, appid string) ([]string, error)
}

// JourneyPageStore 旅程页面，每个客户固定四条记录
type JourneyPageStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.JourneyPage) error
	Get(ctx context.Context, appid, clientID string, pageType types.PageType) (*types.JourneyPage, error)
	GetByID(ctx context.Context, appid, id string) (*types.JourneyPage, error)
	ListByClient(ctx context.Context, appid, clientID string) ([]types.JourneyPage, error)
	UpdateContent(ctx context.Context, appid, id, title string, content types.PageContent) error
	DeleteByClient(ctx context.Context, appid, clientID string) error
}

// ContentVersionStore 页面内容版本
type ContentVersionStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.ContentVersion) error
	Get(ctx context.Context, appid, id string) (*types.ContentVersion, error)
	GetCurrent(ctx context.Context, appid, pageID string) (*types.ContentVersion, error)
	MaxVersion(ctx context.Context, appid, pageID string) (int64, error)
	UnsetCurrent(ctx context.Context, appid, pageID string) error
	List(ctx context.Context, opts types.ListContentVersionOptions, page, pageSize uint64) ([]types.ContentVersion, error)
	Total(ctx context.Context, opts types.ListContentVersionOptions) (int64, error)
	DeleteByClient(ctx context.Context, appid, clientID string) error
	ListHypothesisOutcomes(ctx context.Context, appid string, page, pageSize uint64) ([]types.HypothesisOutcome, error)
}

// JourneyOutcomeStore 旅程结果记录
type JourneyOutcomeStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.JourneyOutcome) error
	GetCurrent(ctx context.Context, appid, clientID string) (*types.JourneyOutcome, error)
	ArchiveCurrent(ctx context.Context, appid, clientID string) error
	ListByClient(ctx context.Context, appid, clientID string) ([]types.JourneyOutcome, error)
	ListNotes(ctx context.Context, appid string, page, pageSize uint64) ([]types.JourneyOutcome, error)
	CountByStatus(ctx context.Context, appid string) ([]types.OutcomeCount, error)
	DeleteByClient(ctx context.Context, appid, clientID string) error
}

// JourneyEventStore 公开访问行为事件
type JourneyEventStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.JourneyEvent) error
	ListByClient(ctx context.Context, appid, clientID string, page, pageSize uint64) ([]types.JourneyEvent, error)
	CountByPageType(ctx context.Context, appid string) ([]types.JourneyEventCount, error)
	DeleteByClient(ctx context.Context, appid, clientID string) error
	DeleteBefore(ctx context.Context, createdAt int64) error
}

type AccessTokenStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.AccessToken) error
	GetAccessToken(ctx context.Context, appid, token string) (*types.AccessToken, error)
	Deletes(ctx context.Context, appid, userID string, ids []int64) error
	ListAccessTokens(ctx context.Context, appid, userID string, page, pageSize uint64) ([]types.AccessToken, error)
	ClearUserTokens(ctx context.Context, appid, userID string) error
	Total(ctx context.Context, appid, userID string) (int64, error)
	DeleteExpired(ctx context.Context, before int64) error
}

type UserStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.User) error
	GetUser(ctx context.Context, appid, id string) (*types.User, error)
	GetByEmail(ctx context.Context, appid, email string) (*types.User, error)
	UpdateProfile(ctx context.Context, appid, id, name, email, avatar string) error
	Total(ctx context.Context, appid string) (int64, error)
}
