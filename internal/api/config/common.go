package config

import (
	"VibeCheck/internal/model"
)

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	DB       DBConfig       `mapstructure:"database"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Cycle    CycleConfig    `mapstructure:"cycle"`
	Moods    []model.Mood   `mapstructure:"moods" validate:"required,min=1,dive"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	Mode    string `mapstructure:"mode" validate:"omitempty,oneof=debug release test"`
}

// StoreConfig 投票存储后端
type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=mongo memory"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// DBConfig 归档数据库配置
type DBConfig struct {
	Enable      bool   `mapstructure:"enable"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type KafkaConfig struct {
	Enable        bool           `mapstructure:"enable"`
	Brokers       []string       `mapstructure:"brokers"`
	Sasl          SaslConfig     `mapstructure:"sasl"`
	Producer      ProducerConfig `mapstructure:"producer"`
	AnnounceTopic string         `mapstructure:"announce_topic"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ProducerConfig struct {
	MaxRetry int `mapstructure:"max_retry"`
	Timeout  int `mapstructure:"timeout"`
}

// WebhookConfig 公布结果推送
type WebhookConfig struct {
	Enable  bool   `mapstructure:"enable"`
	URL     string `mapstructure:"url"`
	Token   string `mapstructure:"token"`
	Timeout int    `mapstructure:"timeout"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// CycleConfig 每日周期
type CycleConfig struct {
	Timezone     string `mapstructure:"timezone" validate:"required,timezone"`
	CronSecret   string `mapstructure:"cron_secret"`
	AdminSecret  string `mapstructure:"admin_secret"`
	CronEnable   bool   `mapstructure:"cron_enable"`
	ResetSpec    string `mapstructure:"reset_spec"`
	AnnounceSpec string `mapstructure:"announce_spec"`
	ResetLagDays int    `mapstructure:"reset_lag_days" validate:"min=0"`
	LockTTL      int    `mapstructure:"lock_ttl" validate:"min=0"`
}
