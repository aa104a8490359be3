package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Store    StoreConfig    `mapstructure:"store"`
	Session  SessionConfig  `mapstructure:"session"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// BackendConfig 后端REST服务配置
// base_url是唯一决定后端环境的配置项（可用BOOKSHOP_BACKEND_BASE_URL覆盖）
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // 客户端级超时，0表示不限
}

// StoreConfig 会话/购物车存储配置
// driver=redis时使用Redis，driver=memory时使用进程内存储（开发、测试）
type StoreConfig struct {
	Driver string      `mapstructure:"driver"` // redis | memory
	Redis  RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr 返回Redis地址
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SessionConfig 会话Cookie配置
type SessionConfig struct {
	CookieName     string        `mapstructure:"cookie_name"`      // 访问令牌Cookie
	CartCookieName string        `mapstructure:"cart_cookie_name"` // 游客购物车Cookie
	TTL            time.Duration `mapstructure:"ttl"`              // 会话缓存有效期
}

// CheckoutConfig 结算配置
// 运费为固定金额；优惠码在结算模块中硬编码（与来源行为一致）
type CheckoutConfig struct {
	ShippingFee int64 `mapstructure:"shipping_fee"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // console | json
}

// CORSConfig 跨域配置
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	ExposeHeaders    []string `mapstructure:"expose_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"` // 秒
}

// Load 加载配置文件
// 支持：
// 1. 默认加载config/config.yaml
// 2. 环境变量覆盖（如BOOKSHOP_BACKEND_BASE_URL）
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 默认值
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("backend.base_url", "http://127.0.0.1:8000")
	v.SetDefault("store.driver", "memory")
	v.SetDefault("session.cookie_name", "access_token")
	v.SetDefault("session.cart_cookie_name", "cart_id")
	v.SetDefault("session.ttl", 168*time.Hour)
	v.SetDefault("checkout.shipping_fee", 30000)

	// 环境变量绑定（BOOKSHOP_BACKEND_BASE_URL → backend.base_url）
	v.SetEnvPrefix("BOOKSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 配置文件缺失时退回默认值（便于纯环境变量部署）
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	if cfg.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url 不能为空")
	}

	if cfg.Store.Driver != "redis" && cfg.Store.Driver != "memory" {
		return fmt.Errorf("无效的存储驱动: %s（支持 redis | memory）", cfg.Store.Driver)
	}

	if cfg.Checkout.ShippingFee < 0 {
		return fmt.Errorf("运费不能为负数: %d", cfg.Checkout.ShippingFee)
	}

	return nil
}
