package v1

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/app/core/srv"
	appstore "github.com/ck123cabz/template-genius-activation-sub001/app/store/sqlstore"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/security"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/sqlstore"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

// memoryCache 进程内的 types.Cache 实现，仅测试使用
type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memoryCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return nil
}

func (c *memoryCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type allowAll struct{}

func (allowAll) Allow() bool { return true }

type localPlugin struct {
	cache *memoryCache
}

func (p *localPlugin) Name() string { return "local" }

func (p *localPlugin) Install(*core.Core) error { return nil }

func (p *localPlugin) DefaultAppid() string { return "tga" }

func (p *localPlugin) Cache() types.Cache { return p.cache }

func (p *localPlugin) TryLock(ctx context.Context, key string) (bool, error) {
	return true, nil
}

func (p *localPlugin) UseLimiter(c *gin.Context, key string, method string, opts ...core.LimitOption) core.Limiter {
	return allowAll{}
}

func (p *localPlugin) EncryptData(data []byte) ([]byte, error) { return data, nil }

func (p *localPlugin) DecryptData(data []byte) ([]byte, error) { return data, nil }

// newTestCore 把逻辑层架在 sqlmock 之上，店面与事务走真实代码路径
func newTestCore(t *testing.T) (*core.Core, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	stores := appstore.SetupWithProvider(sqlstore.NewProviderWithDB("tga_test", sqlx.NewDb(db, "sqlmock")))

	c := core.NewCore(core.CoreConfig{}, stores, srv.SetupSrvs())
	c.InstallPlugins(&localPlugin{cache: newMemoryCache()})
	return c, mock
}

func newTestContext(user string) context.Context {
	ctx := context.WithValue(context.Background(), APPID_KEY, "tga")
	return context.WithValue(ctx, TOKEN_CONTEXT_KEY, security.TokenClaims{
		Appid: "tga",
		User:  user,
		Fields: map[string]string{
			security.ROLE_TYPE_KEY: srv.RoleAdmin,
		},
	})
}
