package config

import (
	"fmt"
	"strings"

	"github.com/mebel-next/internal/logger"

	"github.com/spf13/viper"
)

// Config is the application configuration tree.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Queue    QueueConfig    `mapstructure:"queue"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Security SecurityConfig `mapstructure:"security"`
	Store    StoreConfig    `mapstructure:"store"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release
}

// LogConfig holds log output settings.
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions converts to logger options.
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// DatabasePoolConfig holds connection pool settings.
type DatabasePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	Driver string             `mapstructure:"driver"` // sqlite / postgres
	DSN    string             `mapstructure:"dsn"`
	Pool   DatabasePoolConfig `mapstructure:"pool"`
}

// SessionConfig holds guest session token settings.
type SessionConfig struct {
	SecretKey   string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// RedisConfig holds cache settings.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// QueueConfig holds async queue settings.
type QueueConfig struct {
	Enabled     bool           `mapstructure:"enabled"`
	Host        string         `mapstructure:"host"`
	Port        int            `mapstructure:"port"`
	Password    string         `mapstructure:"password"`
	DB          int            `mapstructure:"db"`
	Concurrency int            `mapstructure:"concurrency"`
	Queues      map[string]int `mapstructure:"queues"`
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// SecurityConfig holds abuse-control settings.
type SecurityConfig struct {
	PromoRateLimit    RateLimitConfig `mapstructure:"promo_rate_limit"`
	CheckoutRateLimit RateLimitConfig `mapstructure:"checkout_rate_limit"`
}

// RateLimitConfig is a fixed-window rate limit rule.
type RateLimitConfig struct {
	WindowSeconds int `mapstructure:"window_seconds"`
	MaxRequests   int `mapstructure:"max_requests"`
}

// StoreConfig holds the storefront registries. The defaults mirror the
// shop's fixed catalog of promo codes, delivery and payment methods.
type StoreConfig struct {
	PromoCodes      []PromoCodeConfig      `mapstructure:"promo_codes"`
	DeliveryMethods []DeliveryMethodConfig `mapstructure:"delivery_methods"`
	PaymentMethods  []PaymentMethodConfig  `mapstructure:"payment_methods"`
	SocialChannels  []SocialChannelConfig  `mapstructure:"social_channels"`
}

// PromoCodeConfig describes one promo code.
type PromoCodeConfig struct {
	Code            string `mapstructure:"code"`
	DiscountPercent int    `mapstructure:"discount_percent"`
	FreeShipping    bool   `mapstructure:"free_shipping"`
}

// DeliveryMethodConfig describes one delivery method.
type DeliveryMethodConfig struct {
	ID    string `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Price int64  `mapstructure:"price"`
}

// PaymentMethodConfig describes one payment method.
type PaymentMethodConfig struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

// SocialChannelConfig describes one social contact channel.
type SocialChannelConfig struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

// CatalogConfig holds catalog tuning knobs.
type CatalogConfig struct {
	CountCacheTTLSeconds int `mapstructure:"count_cache_ttl_seconds"`
	PriceRangeDebounceMS int `mapstructure:"price_range_debounce_ms"`
	PriceRangeTTLSeconds int `mapstructure:"price_range_ttl_seconds"`
}

// CheckoutConfig holds checkout settings.
type CheckoutConfig struct {
	ConfirmDelaySeconds int `mapstructure:"confirm_delay_seconds"`
}

// Load reads configuration from config.yml with env overrides.
func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./")
	viper.AddConfigPath("../")
	viper.AddConfigPath("./etc")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("log.dir", "")
	viper.SetDefault("log.filename", "app.log")
	viper.SetDefault("log.max_size_mb", 100)
	viper.SetDefault("log.max_backups", 7)
	viper.SetDefault("log.max_age_days", 30)
	viper.SetDefault("log.compress", true)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "./db/mebel.db")
	viper.SetDefault("database.pool.max_open_conns", 1)
	viper.SetDefault("database.pool.max_idle_conns", 1)
	viper.SetDefault("database.pool.conn_max_lifetime_seconds", 0)
	viper.SetDefault("database.pool.conn_max_idle_time_seconds", 0)
	viper.SetDefault("session.secret", "change-me-in-production")
	viper.SetDefault("session.expire_hours", 720)
	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.host", "127.0.0.1")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.prefix", "mb")
	viper.SetDefault("queue.enabled", true)
	viper.SetDefault("queue.host", "127.0.0.1")
	viper.SetDefault("queue.port", 6379)
	viper.SetDefault("queue.password", "")
	viper.SetDefault("queue.db", 1)
	viper.SetDefault("queue.concurrency", 10)
	viper.SetDefault("queue.queues", map[string]int{
		"default": 10,
	})
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("cors.allowed_headers", []string{
		"Content-Type",
		"Content-Length",
		"Accept-Encoding",
		"Authorization",
		"Cache-Control",
		"X-Requested-With",
		"X-Session-Token",
	})
	viper.SetDefault("cors.allow_credentials", true)
	viper.SetDefault("cors.max_age", 600)
	viper.SetDefault("security.promo_rate_limit.window_seconds", 60)
	viper.SetDefault("security.promo_rate_limit.max_requests", 10)
	viper.SetDefault("security.checkout_rate_limit.window_seconds", 60)
	viper.SetDefault("security.checkout_rate_limit.max_requests", 5)
	viper.SetDefault("store.promo_codes", []map[string]interface{}{
		{"code": "МЕБЕЛЬ15", "discount_percent": 15, "free_shipping": false},
		{"code": "ДИВАН10", "discount_percent": 10, "free_shipping": false},
		{"code": "ДОСТАВКА", "discount_percent": 0, "free_shipping": true},
	})
	viper.SetDefault("store.delivery_methods", []map[string]interface{}{
		{"id": "courier", "name": "Курьером", "price": 300},
		{"id": "pickup", "name": "Самовывоз", "price": 0},
		{"id": "express", "name": "Экспресс-доставка", "price": 500},
	})
	viper.SetDefault("store.payment_methods", []map[string]interface{}{
		{"id": "cash", "name": "Наличными при получении"},
		{"id": "card", "name": "Картой при получении"},
		{"id": "online", "name": "Онлайн-оплата"},
		{"id": "installment", "name": "Рассрочка"},
		{"id": "credit", "name": "Кредит"},
	})
	viper.SetDefault("store.social_channels", []map[string]interface{}{
		{"id": "telegram", "name": "Telegram"},
		{"id": "viber", "name": "Viber"},
		{"id": "whatsapp", "name": "WhatsApp"},
		{"id": "vk", "name": "ВКонтакте"},
	})
	viper.SetDefault("catalog.count_cache_ttl_seconds", 30)
	viper.SetDefault("catalog.price_range_debounce_ms", 300)
	viper.SetDefault("catalog.price_range_ttl_seconds", 300)
	viper.SetDefault("checkout.confirm_delay_seconds", 2)

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // server.port -> SERVER_PORT

	if err := viper.ReadInConfig(); err != nil {
		logger.Warnw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Infow("config_file_loaded", "file", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("config parse failed: %w", err))
	}

	return &cfg
}
