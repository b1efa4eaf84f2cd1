package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	Remote   RemoteConfig   `yaml:"remote"`
	Cache    CacheConfig    `yaml:"cache"`
	Calendar CalendarConfig `yaml:"calendar"`
	Clubs    ClubsConfig    `yaml:"clubs"`
	Media    MediaConfig    `yaml:"media"`
	Feed     FeedConfig     `yaml:"feed"`
	Bot      BotConfig      `yaml:"bot"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
	CORS         CORSConfig      `yaml:"cors"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// FixturesConfig points at the static JSON data directory.
type FixturesConfig struct {
	Dir string `yaml:"dir"`
}

// RemoteConfig controls the first source of the fallback cascade.
type RemoteConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"baseUrl"`
}

// CacheConfig controls the per-month calendar cache.
type CacheConfig struct {
	TTL    time.Duration `yaml:"ttl"`
	Valkey ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the shared cache variant.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// CalendarConfig tunes the resolver domain.
type CalendarConfig struct {
	DefaultRegion string `yaml:"defaultRegion"`
	WarmAdjacent  bool   `yaml:"warmAdjacent"`
}

// ClubsConfig controls the community clubs storage.
type ClubsConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// MediaConfig contains the S3-compatible storage settings for post images.
// An empty endpoint keeps images in process memory.
type MediaConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// FeedConfig controls the curated article feed.
type FeedConfig struct {
	Whitelist []string `yaml:"whitelist"`
}

// BotConfig contains the Telegram entry point settings.
type BotConfig struct {
	Token     string `yaml:"token"`
	WebAppURL string `yaml:"webAppUrl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("FIXTURES_DIR"); v != "" {
		cfg.Fixtures.Dir = v
	}
	if v := os.Getenv("REMOTE_ENABLED"); v != "" {
		cfg.Remote.Enabled = isTruthy(v)
	}
	if v := os.Getenv("REMOTE_BASE_URL"); v != "" {
		cfg.Remote.BaseURL = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = parsed
		}
	}
	if v := os.Getenv("CACHE_VALKEY_ENABLED"); v != "" {
		cfg.Cache.Valkey.Enabled = isTruthy(v)
	}
	if v := os.Getenv("CACHE_VALKEY_ADDR"); v != "" {
		cfg.Cache.Valkey.Addr = v
	}
	if v := os.Getenv("CALENDAR_DEFAULT_REGION"); v != "" {
		cfg.Calendar.DefaultRegion = v
	}
	if v := os.Getenv("CALENDAR_WARM_ADJACENT"); v != "" {
		cfg.Calendar.WarmAdjacent = isTruthy(v)
	}
	if v := os.Getenv("CLUBS_POSTGRES_DSN"); v != "" {
		cfg.Clubs.Postgres.DSN = v
	}
	if v := os.Getenv("CLUBS_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Clubs.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("CLUBS_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Clubs.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("MEDIA_ENDPOINT"); v != "" {
		cfg.Media.Endpoint = v
	}
	if v := os.Getenv("MEDIA_ACCESS_KEY"); v != "" {
		cfg.Media.AccessKey = v
	}
	if v := os.Getenv("MEDIA_SECRET_KEY"); v != "" {
		cfg.Media.SecretKey = v
	}
	if v := os.Getenv("MEDIA_BUCKET"); v != "" {
		cfg.Media.Bucket = v
	}
	if v := os.Getenv("MEDIA_REGION"); v != "" {
		cfg.Media.Region = v
	}
	if v := os.Getenv("FEED_WHITELIST"); v != "" {
		cfg.Feed.Whitelist = splitList(v)
	}
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		cfg.Bot.Token = v
	}
	if v := os.Getenv("WEBAPP_URL"); v != "" {
		cfg.Bot.WebAppURL = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Fixtures: FixturesConfig{
			Dir: "data",
		},
		Remote: RemoteConfig{
			Enabled: false,
		},
		Cache: CacheConfig{
			TTL: 0,
		},
		Calendar: CalendarConfig{
			DefaultRegion: "RU-MOW",
			WarmAdjacent:  true,
		},
		Feed: FeedConfig{
			Whitelist: []string{
				"7dach.ru",
				"ogorod.ru",
				"botanichka.ru",
				"fermer.ru",
				"greeninfo.ru",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Fixtures.Dir == "" {
		return errors.New("fixtures.dir cannot be empty")
	}
	if c.Remote.Enabled && strings.TrimSpace(c.Remote.BaseURL) == "" {
		return errors.New("remote.baseUrl cannot be empty when the remote source is enabled")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl cannot be negative")
	}
	if c.Cache.Valkey.Enabled && strings.TrimSpace(c.Cache.Valkey.Addr) == "" {
		return errors.New("cache.valkey.addr cannot be empty when the valkey cache is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Media.Endpoint != "" && c.Media.Bucket == "" {
		return errors.New("media.bucket cannot be empty when media.endpoint is set")
	}
	return nil
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
