package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/redis/go-redis/v9"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	conf.SetConfigBytes(raw)

	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func (c CoreConfig) LoadCustomConfig(cfg any) error {
	if len(c.bytes) == 0 {
		return nil
	}
	if err := toml.Unmarshal(c.bytes, cfg); err != nil {
		return err
	}
	return nil
}

type CustomConfig[T any] struct {
	CustomConfig T `toml:"custom_config"`
}

func NewCustomConfigPayload[T any]() CustomConfig[T] {
	return CustomConfig[T]{}
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string      `toml:"addr"`
	Log      Log         `toml:"log"`
	Postgres PGConfig    `toml:"postgres"`
	Redis    RedisConfig `toml:"redis"`
	Site     Site        `toml:"site"`

	Journey JourneyConfig `toml:"journey"`

	Security Security `toml:"security"`

	bytes []byte `toml:"-"`
}

type Site struct {
	// 对外访问域名，拼接客户激活链接时使用
	Domain        string `toml:"domain"`
	SiteTitle     string `toml:"site_title"`
	DefaultAvatar string `toml:"default_avatar"`
}

type JourneyConfig struct {
	// 行为事件保留天数，0 表示永久保留
	EventRetentionDays int `toml:"event_retention_days"`
	// 分析结果缓存时长(秒)，默认 300
	AnalyticsCacheTTL int `toml:"analytics_cache_ttl"`
	// 夜间统计任务的 cron 表达式，默认每天凌晨 4 点
	SnapshotCron string `toml:"snapshot_cron"`
}

type Security struct {
	EncryptKey string `toml:"encrypt_key"`
	// 外部签发 JWT 的验签公钥，PEM 文本，留空则关闭 JWT 登录态
	JWTPublicKey string `toml:"jwt_public_key"`
}

func (c *CoreConfig) SetConfigBytes(raw []byte) {
	c.bytes = raw
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("TGA_API_SERVICE_ADDRESS")
	c.Site.Domain = os.Getenv("TGA_SITE_DOMAIN")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Redis.FromENV()
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("TGA_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type RedisConfig struct {
	// 单机模式配置
	Addr     string `toml:"addr"`     // Redis地址，格式: host:port
	Password string `toml:"password"` // Redis密码
	DB       int    `toml:"db"`       // Redis数据库索引 (0-15)

	// 集群模式配置
	Cluster       bool     `toml:"cluster"`        // 是否启用集群模式
	ClusterAddrs  []string `toml:"cluster_addrs"`  // 集群节点地址列表
	ClusterPasswd string   `toml:"cluster_passwd"` // 集群密码

	// 连接池配置
	PoolSize     int `toml:"pool_size"`
	MinIdleConns int `toml:"min_idle_conns"`
	MaxRetries   int `toml:"max_retries"`

	// 队列配置
	KeyPrefix string `toml:"key_prefix"` // Redis键前缀，用于隔离不同环境/应用
}

func (r *RedisConfig) FromENV() {
	r.Addr = os.Getenv("TGA_REDIS_ADDR")
	r.Password = os.Getenv("TGA_REDIS_PASSWORD")
	if dbStr := os.Getenv("TGA_REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			r.DB = db
		}
	}
}

func NewRedisClient(cfg RedisConfig) redis.UniversalClient {
	if cfg.Cluster {
		return redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        cfg.ClusterAddrs,
			Password:     cfg.ClusterPasswd,
			PoolSize:     cfg.PoolSize,
			MinIdleConns: cfg.MinIdleConns,
			MaxRetries:   cfg.MaxRetries,
		})
	}
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
	})
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("TGA_API_LOG_LEVEL")
	l.Path = os.Getenv("TGA_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
