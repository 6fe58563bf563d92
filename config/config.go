package config

import "time"

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host      string `envconfig:"HOST"`
	Port      string `envconfig:"PORT"`
	Prefix    string `envconfig:"PREFIX"`
	Product   string `envconfig:"PRODUCT"` // 导出文件名前缀，例如 Bayer_CTMS
	Mode      Mode   `envconfig:"MODE"`
	Mysql     Mysql
	Redis     Redis
	JWT       JWT
	Log       Log `mapstructure:"Log"`
	Sentry    Sentry
	Archive   Archive
	RateLimit RateLimit
	Client    Client
	Cors      Cors
}

type Mysql struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

// Redis Host 为空时不启用 redis（登录限流随之关闭）
type Redis struct {
	Host     string `envconfig:"HOST" mapstructure:"host"`
	Port     string `envconfig:"PORT" mapstructure:"port"`
	Password string `envconfig:"PASSWORD" mapstructure:"password"`
	DB       int    `envconfig:"DB" mapstructure:"db"`
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE"` // 小时
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string  `envconfig:"DSN" mapstructure:"dsn"`
	Environment string  `envconfig:"ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64 `envconfig:"SAMPLE_RATE" mapstructure:"sample_rate"` // 性能追踪采样率
	Tracing     SentryTracing
}

type SentryTracing struct {
	DBSlowThresholdMs    int  `envconfig:"DB_SLOW_THRESHOLD_MS" mapstructure:"db_slow_threshold_ms"`
	RedisSlowThresholdMs int  `envconfig:"REDIS_SLOW_THRESHOLD_MS" mapstructure:"redis_slow_threshold_ms"`
	TraceHTTPCalls       bool `envconfig:"TRACE_HTTP_CALLS" mapstructure:"trace_http_calls"`
}

// Archive 导出归档存储，Bucket 为空时落盘到 LocalDir
type Archive struct {
	LocalDir        string `envconfig:"LOCAL_DIR" mapstructure:"local_dir"`
	Endpoint        string `envconfig:"ENDPOINT" mapstructure:"endpoint"`
	BaseURL         string `envconfig:"BASE_URL" mapstructure:"base_url"`
	Bucket          string `envconfig:"BUCKET" mapstructure:"bucket"`
	Region          string `envconfig:"REGION" mapstructure:"region"`
	AccessKey       string `envconfig:"ACCESS_KEY" mapstructure:"access_key"`
	SecretAccessKey string `envconfig:"SECRET_KEY" mapstructure:"secret_key"`
	Prefix          string `envconfig:"PREFIX" mapstructure:"prefix"`
	UsePathStyle    bool   `envconfig:"PATH_STYLE" mapstructure:"path_style"`
	URLExpire       int64  `envconfig:"URL_EXPIRE" mapstructure:"url_expire"` // 预签名下载链接有效期（秒）
}

type RateLimit struct {
	LoginMaxAttempts int64         `envconfig:"LOGIN_MAX_ATTEMPTS" mapstructure:"login_max_attempts"`
	LoginWindow      time.Duration `envconfig:"LOGIN_WINDOW" mapstructure:"login_window"`
}

// Client 报表客户端（ctms report ...）使用的配置
type Client struct {
	Server      string `envconfig:"SERVER" mapstructure:"server"`
	SessionFile string `envconfig:"SESSION_FILE" mapstructure:"session_file"`
}

type Cors struct {
	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" mapstructure:"allow_origins"`
}
