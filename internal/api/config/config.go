package config

import (
	"VibeCheck/internal/model"
	"VibeCheck/internal/pkg/util"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// envBindings 兼容旧部署使用的环境变量名
var envBindings = map[string]string{
	"server.port":        "PORT",
	"server.base_url":    "BASE_URL",
	"mongo.url":          "MONGODB_URI",
	"cycle.cron_secret":  "CRON_SECRET",
	"cycle.admin_secret": "ADMIN_SECRET",
}

// LoadConfig 从 ./configs 加载配置并填充到 Cfg
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("./configs")
}

// LoadConfigFrom 从指定目录加载 config.yaml，文件缺失时只使用默认值与环境变量
func LoadConfigFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(cfg.Moods) == 0 {
		cfg.Moods = append([]model.Mood(nil), model.DefaultMoods...)
	}

	if err := util.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	Cfg = &cfg
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("store.driver", "mongo")
	v.SetDefault("mongo.database", "vibecheck")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_lifetime", 60)
	v.SetDefault("kafka.announce_topic", "vibecheck.daily_mood")
	v.SetDefault("kafka.producer.max_retry", 3)
	v.SetDefault("kafka.producer.timeout", 10)
	v.SetDefault("webhook.timeout", 10)
	v.SetDefault("logstash.index", "logstash-vibecheck")
	v.SetDefault("cycle.timezone", "UTC")
	v.SetDefault("cycle.cron_enable", true)
	v.SetDefault("cycle.reset_spec", "0 0 0 * * *")
	v.SetDefault("cycle.announce_spec", "0 0 20 * * *")
	v.SetDefault("cycle.reset_lag_days", 1)
	v.SetDefault("cycle.lock_ttl", 300)
}

// Location 当天划分使用的时区
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Cycle.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Catalog 由配置构建只读心情目录
func (c *Config) Catalog() *model.Catalog {
	return model.NewCatalog(c.Moods)
}
