package sqlstore

import (
	"embed"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/ck123cabz/template-genius-activation-sub001/app/store"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/register"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/sqlstore"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

//go:embed *.sql
var CreateTableFiles embed.FS

var provider = &Provider{
	stores: &Stores{},
}

func GetProvider() *Provider {
	return provider
}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.ClientStore
	store.JourneyPageStore
	store.ContentVersionStore
	store.JourneyOutcomeStore
	store.JourneyEventStore
	store.AccessTokenStore
	store.UserStore
}

type RegisterKey struct{}

func MustSetup(m sqlstore.ConnectConfig, s ...sqlstore.ConnectConfig) func() *Provider {
	return SetupWithProvider(sqlstore.MustSetupProvider(m, s...))
}

// SetupWithProvider 绑定底层连接并完成各 store 的注册
func SetupWithProvider(sp *sqlstore.SqlProvider) func() *Provider {
	provider.SqlProvider = sp

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}

	return func() *Provider {
		return provider
	}
}

// Install 初始化所有数据表
func (p *Provider) Install() error {
	if err := p.ensureMigrationTable(); err != nil {
		return err
	}

	files, err := CreateTableFiles.ReadDir(".")
	if err != nil {
		return err
	}

	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".sql") {
			if executed, err := p.isFileExecuted(file.Name()); err != nil {
				return err
			} else if executed {
				continue
			}

			sqlRaw, err := CreateTableFiles.ReadFile(file.Name())
			if err != nil {
				return err
			}

			if _, err = p.SqlProvider.GetMaster().Exec(string(sqlRaw)); err != nil {
				return err
			}

			if err = p.markFileExecuted(file.Name()); err != nil {
				return err
			}
		}
	}
	return nil
}

// ensureMigrationTable 确保迁移记录表存在
func (p *Provider) ensureMigrationTable() error {
	createTableSQL := `
CREATE TABLE IF NOT EXISTS ` + types.TABLE_PREFIX + `schema_migrations (
    filename VARCHAR(255) PRIMARY KEY,
    executed_at BIGINT NOT NULL
);`
	_, err := p.SqlProvider.GetMaster().Exec(createTableSQL)
	return err
}

// isFileExecuted 检查文件是否已经执行过
func (p *Provider) isFileExecuted(filename string) (bool, error) {
	var count int
	err := p.SqlProvider.GetReplica().Get(&count,
		"SELECT COUNT(*) FROM "+types.TABLE_PREFIX+"schema_migrations WHERE filename = $1", filename)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// markFileExecuted 标记文件为已执行
func (p *Provider) markFileExecuted(filename string) error {
	_, err := p.SqlProvider.GetMaster().Exec(
		"INSERT INTO "+types.TABLE_PREFIX+"schema_migrations (filename, executed_at) VALUES ($1, $2) ON CONFLICT (filename) DO NOTHING",
		filename, time.Now().Unix())
	return err
}

func (p *Provider) ClientStore() store.ClientStore {
	return p.stores.ClientStore
}

func (p *Provider) JourneyPageStore() store.JourneyPageStore {
	return p.stores.JourneyPageStore
}

func (p *Provider) ContentVersionStore() store.ContentVersionStore {
	return p.stores.ContentVersionStore
}

func (p *Provider) JourneyOutcomeStore() store.JourneyOutcomeStore {
	return p.stores.JourneyOutcomeStore
}

func (p *Provider) JourneyEventStore() store.JourneyEventStore {
	return p.stores.JourneyEventStore
}

func (p *Provider) AccessTokenStore() store.AccessTokenStore {
	return p.stores.AccessTokenStore
}

func (p *Provider) UserStore() store.UserStore {
	return p.stores.UserStore
}
