package plugins

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	v1 "github.com/ck123cabz/template-genius-activation-sub001/app/logic/v1"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/safe"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

func NewSingleLock() *SingleLock {
	return &SingleLock{
		locks: make(map[string]bool),
	}
}

type SelfHostCustomConfig struct {
	EncryptKey string `toml:"encrypt_key"`
}

type SingleLock struct {
	mu    sync.Mutex
	locks map[string]bool
}

func (s *SingleLock) TryLock(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[key] {
		return false, nil
	}
	s.locks[key] = true
	go safe.Run(func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.locks, key)
	})
	return true, nil
}

var _ core.Plugins = (*SelfHostPlugin)(nil)

func NewSelfHostMode() *SelfHostPlugin {
	return &SelfHostPlugin{
		Appid:      types.DEFAULT_APPID,
		singleLock: NewSingleLock(),
	}
}

type SelfHostPlugin struct {
	core       *core.Core
	Appid      string
	singleLock *SingleLock
	cache      types.Cache

	customConfig SelfHostCustomConfig
}

func (s *SelfHostPlugin) Name() string {
	return "selfhost"
}

func (s *SelfHostPlugin) DefaultAppid() string {
	return s.Appid
}

func (s *SelfHostPlugin) Install(c *core.Core) error {
	s.core = c
	fmt.Println("Start initialize.")
	utils.SetupIDWorker(1)

	customConfig := core.NewCustomConfigPayload[SelfHostCustomConfig]()
	if err := s.core.Cfg().LoadCustomConfig(&customConfig); err != nil {
		return fmt.Errorf("Failed to install custom config, %w", err)
	}
	s.customConfig = customConfig.CustomConfig
	s.cache = core.NewRedisCache(c.Srv().Redis())

	var tokenCount int
	if err := s.core.Store().GetMaster().Get(&tokenCount, "SELECT COUNT(*) FROM "+types.TABLE_ACCESS_TOKEN.Name()+" WHERE true"); err != nil {
		return fmt.Errorf("Initialize sql error: %w", err)
	}

	if tokenCount > 0 {
		fmt.Println("System is already initialized. Skip.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()

	token, err := v1.NewAuthLogic(ctx, s.core).InitAdminUser(s.Appid)
	if err != nil {
		return err
	}

	fmt.Println("Appid:", s.Appid)
	fmt.Println("Access token:", token)
	return nil
}

func (s *SelfHostPlugin) Cache() types.Cache {
	return s.cache
}

func (s *SelfHostPlugin) TryLock(ctx context.Context, key string) (bool, error) {
	return s.singleLock.TryLock(ctx, key)
}

var (
	limiterMu sync.Mutex
	limiter   = make(map[string]*rate.Limiter)
)

// ratelimit 代表每分钟允许的数量
func (s *SelfHostPlugin) UseLimiter(c *gin.Context, key string, method string, opts ...core.LimitOption) core.Limiter {
	cfg := &core.LimitConfig{
		Limit: 60,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	limiterMu.Lock()
	defer limiterMu.Unlock()
	l, exist := limiter[key]
	if !exist {
		limit := rate.Every(time.Minute / time.Duration(cfg.Limit))
		limiter[key] = rate.NewLimiter(limit, cfg.Limit*2)
		l = limiter[key]
	}

	return l
}

func (s *SelfHostPlugin) EncryptData(data []byte) ([]byte, error) {
	if s.customConfig.EncryptKey == "" {
		return data, nil
	}

	return utils.EncryptCFB(data, []byte(s.customConfig.EncryptKey))
}

func (s *SelfHostPlugin) DecryptData(data []byte) ([]byte, error) {
	if s.customConfig.EncryptKey == "" {
		return data, nil
	}

	return utils.DecryptCFB(data, []byte(s.customConfig.EncryptKey))
}
