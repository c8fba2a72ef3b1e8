package config

import (
	_ "embed"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

type Auth struct {
	SecretKey    string
	AccessExpire int64 `json:",default=604800"` // 7天
}

type Config struct {
	service.ServiceConf
	ListenOn        string
	MetricsListenOn string `json:",default=:9091"`
	Auth            Auth
	Mongo           struct {
		URL string
		DB  string
	}
	Cache cache.CacheConf  `json:",optional"`
	Redis *redis.RedisConf `json:",optional"`
	Cors  struct {
		Origins []string `json:",optional"`
	} `json:",optional"`
	RateLimit struct {
		WindowSeconds int `json:",default=900"`
		MaxRequests   int `json:",default=100"`
	} `json:",optional"`
	Upload struct {
		Dir string `json:",default=uploads/assignments"`
	} `json:",optional"`
	Log LogConfig `json:",optional"`
}

type LogConfig struct {
	NoLogPaths []string `json:",optional"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "etc/config.yaml"
		}
		err := conf.Load(path, c, conf.UseEnv())
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

// NewConfigFromYamlBytes 从字节加载配置, 测试用
func NewConfigFromYamlBytes(data []byte) (*Config, error) {
	c := new(Config)
	if err := conf.LoadFromYamlBytes(data, c); err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
