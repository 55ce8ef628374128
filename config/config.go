package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Taskscape specifics
	Layout     LayoutConfig
	SceneCache SceneCacheConfig
	RateLimit  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LayoutConfig tunes the 3D tree builder.
type LayoutConfig struct {
	MaxDepth    int
	MinNodeSize float64
}

// SceneCacheConfig tunes the built-scene LRU.
type SceneCacheConfig struct {
	Size int
	TTL  time.Duration
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Layout engine
	cfg.Layout.MaxDepth = viper.GetInt("layout.max_depth")
	cfg.Layout.MinNodeSize = viper.GetFloat64("layout.min_node_size")
	if cfg.Layout.MaxDepth < 0 {
		return nil, fmt.Errorf("layout.max_depth must not be negative, got %d", cfg.Layout.MaxDepth)
	}

	// Scene cache
	cfg.SceneCache.Size = viper.GetInt("scene_cache.size")
	cfg.SceneCache.TTL = viper.GetDuration("scene_cache.ttl")

	// Rate limit
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("layout.max_depth", 5)
	viper.SetDefault("layout.min_node_size", 0.1)
	viper.SetDefault("scene_cache.size", 256)
	viper.SetDefault("scene_cache.ttl", "5m")
	viper.SetDefault("rate_limit.requests_per_min", 60)
}
