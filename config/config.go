package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Log    LogConfig
	Source SourceConfig
	HTTP   HTTPConfig
	S3     S3Config
	Redis  RedisConfig
	Kafka  KafkaConfig
	Reload ReloadConfig
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// SourceConfig selects where request types resolve to
type SourceConfig struct {
	Kind        string
	BaseURL     string        `mapstructure:"base_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// HTTPConfig holds API server settings
type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// S3Config holds bucket settings for the s3 source
type S3Config struct {
	Bucket       string
	Prefix       string
	Region       string
	Profile      string
	UsePathStyle bool `mapstructure:"use_path_style"`
}

// RedisConfig enables the payload cache when Addr is set
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Prefix   string
}

// KafkaConfig enables event publishing and remote reloads when Brokers is set
type KafkaConfig struct {
	Brokers     []string
	StateTopic  string `mapstructure:"state_topic"`
	ReloadTopic string `mapstructure:"reload_topic"`
	GroupID     string `mapstructure:"group_id"`
}

// ReloadConfig controls startup and scheduled reloads
type ReloadConfig struct {
	Seed        bool
	InitialLoad bool   `mapstructure:"initial_load"`
	Schedule    string // cron spec, empty disables
	RequestType string `mapstructure:"request_type"`
}

// Enabled reports whether a Redis address is configured
func (r RedisConfig) Enabled() bool { return r.Addr != "" }

// Enabled reports whether any brokers are configured
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.file", "")

	v.SetDefault("source.kind", SourceBundled)
	v.SetDefault("source.base_url", DefaultRemoteBaseURL)
	v.SetDefault("source.http_timeout", DefaultHTTPTimeout)

	v.SetDefault("http.addr", DefaultHTTPAddr)
	v.SetDefault("http.shutdown_timeout", DefaultShutdownTimeout)

	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prefix", "")
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.profile", "")
	v.SetDefault("s3.use_path_style", false)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", DefaultCacheTTL)
	v.SetDefault("redis.prefix", DefaultCachePrefix)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.state_topic", DefaultStateTopic)
	v.SetDefault("kafka.reload_topic", DefaultReloadTopic)
	v.SetDefault("kafka.group_id", DefaultConsumerGroup)

	v.SetDefault("reload.seed", true)
	v.SetDefault("reload.initial_load", true)
	v.SetDefault("reload.schedule", "")
	v.SetDefault("reload.request_type", "AllRecipes")
}

// NewViper creates a viper instance with defaults and FETCHRECIPES_ env overrides,
// e.g. FETCHRECIPES_SOURCE_KIND=remote. A .env file is loaded first if present.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("FETCHRECIPES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration from v, which may have flags bound to it
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	// env values arrive as one comma separated string
	c.Kafka.Brokers = splitList(strings.Join(c.Kafka.Brokers, ","))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks settings that depend on each other
func (c Config) Validate() error {
	switch c.Source.Kind {
	case SourceBundled:
	case SourceRemote:
		if c.Source.BaseURL == "" {
			return fmt.Errorf("source.base_url is required for the %s source", SourceRemote)
		}
	case SourceS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required for the %s source", SourceS3)
		}
	default:
		return fmt.Errorf("unknown source kind %q", c.Source.Kind)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
