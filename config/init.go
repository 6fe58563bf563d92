package config

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 CTMS_MYSQL_HOST
const EnvPrefix = "CTMS"

var (
	cfg  *Config
	once sync.Once
	mu   sync.RWMutex
)

// Init 依次加载 .env、config.yaml 与环境变量，后者覆盖前者
func Init() {
	once.Do(func() {
		c, err := Load(os.Getenv(EnvPrefix + "_CONFIG"))
		if err != nil {
			panic(err)
		}
		Set(c)
	})
}

// Load 读取配置，path 为空时使用工作目录下的 config.yaml（不存在则跳过）
func Load(path string) (*Config, error) {
	// .env 不存在不算错误，生产环境直接使用环境变量
	_ = godotenv.Load()

	c := &Config{}
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return nil, err
	}
	applyDefaults(c)
	return c, nil
}

func applyDefaults(c *Config) {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == "" {
		c.Port = "5000"
	}
	if c.Prefix == "" {
		c.Prefix = "api"
	}
	if c.Product == "" {
		c.Product = "CTMS"
	}
	if c.Mode == "" {
		c.Mode = ModeDebug
	}
	if c.Mysql.Port == "" {
		c.Mysql.Port = "3306"
	}
	if c.Redis.Host != "" && c.Redis.Port == "" {
		c.Redis.Port = "6379"
	}
	if c.JWT.AccessExpire <= 0 {
		c.JWT.AccessExpire = 24
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Archive.LocalDir == "" {
		c.Archive.LocalDir = "exports"
	}
	if c.Archive.URLExpire <= 0 {
		c.Archive.URLExpire = 3600
	}
	if c.RateLimit.LoginMaxAttempts <= 0 {
		c.RateLimit.LoginMaxAttempts = 5
	}
	if c.RateLimit.LoginWindow <= 0 {
		c.RateLimit.LoginWindow = 15 * time.Minute
	}
	if c.Client.Server == "" {
		c.Client.Server = "http://localhost:5000/api"
	}
	if len(c.Cors.AllowOrigins) == 0 {
		c.Cors.AllowOrigins = []string{"*"}
	}
}

// Get 返回全局配置；未初始化时按默认值初始化
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c == nil {
		Init()
		mu.RLock()
		c = cfg
		mu.RUnlock()
	}
	return c
}

// Set 替换全局配置，测试中用于注入
func Set(c *Config) {
	mu.Lock()
	defer mu.Unlock()
	cfg = c
}

// Default 返回只填充默认值的配置
func Default() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}
