package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// 服务配置
	ServerPort  string `env:"SERVER_PORT" envDefault:"8890"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"ramadhan-lantern"`

	// 存储后端：redis（默认）或 postgres
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"redis"`

	// Redis 配置
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"lantern"`

	// PostgreSQL 配置（STORAGE_BACKEND=postgres 时使用）
	PostgreSQLHost     string `env:"POSTGRESQL_HOST" envDefault:"localhost"`
	PostgreSQLPort     string `env:"POSTGRESQL_PORT" envDefault:"5432"`
	PostgreSQLUser     string `env:"POSTGRESQL_USER" envDefault:"postgres"`
	PostgreSQLPassword string `env:"POSTGRESQL_PASSWORD" envDefault:"postgres"`
	PostgreSQLDatabase string `env:"POSTGRESQL_DATABASE" envDefault:"lantern"`
	PostgreSQLSchema   string `env:"POSTGRESQL_SCHEMA" envDefault:"public"`
	PostgreSQLSSLMode  string `env:"POSTGRESQL_SSLMODE" envDefault:"disable"`
	PostgreSQLMaxIdle  int    `env:"POSTGRESQL_MAX_IDLE" envDefault:"10"`
	PostgreSQLMaxOpen  int    `env:"POSTGRESQL_MAX_OPEN" envDefault:"50"`

	// 斋月开始日期，onboarding 时写入存储，这里只是部署默认值
	RamadhanStartDate string `env:"RAMADHAN_START_DATE" envDefault:"2026-02-19"`

	// 祷告时间服务配置
	PrayerAPIBaseURL      string  `env:"PRAYER_API_BASE_URL" envDefault:"https://api.aladhan.com/v1"`
	PrayerAPIMethod       int     `env:"PRAYER_API_METHOD" envDefault:"11"` // Kemenag 计算方法
	PrayerAPITimeoutSecs  int     `env:"PRAYER_API_TIMEOUT_SECONDS" envDefault:"8"`
	PrayerDefaultCountry  string  `env:"PRAYER_DEFAULT_COUNTRY" envDefault:"Indonesia"`
	PrayerFallbackLat     float64 `env:"PRAYER_FALLBACK_LAT" envDefault:"-6.2088"`
	PrayerFallbackLng     float64 `env:"PRAYER_FALLBACK_LNG" envDefault:"106.8456"`
	ImsakOffsetMinutes    int     `env:"IMSAK_OFFSET_MINUTES" envDefault:"10"`
	NextPrayerRefreshSecs int     `env:"NEXT_PRAYER_REFRESH_SECONDS" envDefault:"60"`

	// AI 助手服务配置
	AssistantAPIBaseURL  string `env:"ASSISTANT_API_BASE_URL" envDefault:"https://api-faa.my.id/faa"`
	AssistantTimeoutSecs int    `env:"ASSISTANT_TIMEOUT_SECONDS" envDefault:"10"`
	AssistantDailyLimit  int    `env:"ASSISTANT_DAILY_LIMIT" envDefault:"30"`
	AssistantHistoryMax  int    `env:"ASSISTANT_HISTORY_MAX" envDefault:"20"`

	// Snowflake ID 生成器配置
	SnowflakeMachineID  int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`
	SnowflakeDataCenter int64 `env:"SNOWFLAKE_DATACENTER_ID" envDefault:"1"`

	// 日志配置
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`

	// 链路追踪配置
	TracingEnabled bool   `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint   string `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`

	// 速率限制配置, 配置在中间件内
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     int  `env:"RATE_LIMIT_RPS" envDefault:"100"`
}

func init() {

	if err := godotenv.Load(); err != nil {

		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if Cfg.StorageBackend != "redis" && Cfg.StorageBackend != "postgres" {
		log.Fatalf("STORAGE_BACKEND must be redis or postgres, got %q", Cfg.StorageBackend)
	}

	if Cfg.AssistantDailyLimit <= 0 {
		log.Fatal("ASSISTANT_DAILY_LIMIT must be positive")
	}

	if Cfg.AssistantHistoryMax <= 0 {
		log.Fatal("ASSISTANT_HISTORY_MAX must be positive")
	}

	if Cfg.PrayerAPIBaseURL == "" {
		log.Printf("WARN: PRAYER_API_BASE_URL is not set, prayer time lookups will not work")
	}

	if Cfg.AssistantAPIBaseURL == "" {
		log.Printf("WARN: ASSISTANT_API_BASE_URL is not set, assistant chat will not work")
	}
}

func (c *Config) GetDSN() string {
	return "host=" + c.PostgreSQLHost +
		" port=" + c.PostgreSQLPort +
		" user=" + c.PostgreSQLUser +
		" password=" + c.PostgreSQLPassword +
		" dbname=" + c.PostgreSQLDatabase +
		" sslmode=" + c.PostgreSQLSSLMode +
		" search_path=" + c.PostgreSQLSchema
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
