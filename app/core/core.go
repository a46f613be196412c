package core

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core/srv"
	"github.com/ck123cabz/template-genius-activation-sub001/app/store/sqlstore"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores     func() *sqlstore.Provider
	httpClient *http.Client
	httpEngine *gin.Engine

	metrics *Metrics
	Plugins
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	services := srv.SetupSrvs(
		srv.ApplyRedis(NewRedisClient(cfg.Redis)),
	)

	core := NewCore(cfg, nil, services)

	// setup store
	setupSqlStore(core)

	return core
}

// NewCore 组装各依赖，stores 可后置注入
func NewCore(cfg CoreConfig, stores func() *sqlstore.Provider, services *srv.Srv) *Core {
	return &Core{
		cfg:        cfg,
		srv:        services,
		stores:     stores,
		httpClient: &http.Client{Timeout: time.Second * 3},
		metrics:    NewMetrics("tga", "core"),
		httpEngine: gin.New(),
	}
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
	// 执行数据库表初始化
	if err := core.stores().Install(); err != nil {
		panic(err)
	}
	fmt.Println("setupSqlStore done")
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}
