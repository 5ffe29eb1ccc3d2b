package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Client   ClientConfig
	Postgres DBConfig
	Redis    RedisConfig
	S3       S3Config
	Logger   Logger
}

type ServerConfig struct {
	AppVersion   string
	Port         string `validate:"required"`
	Mode         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
	StaticDir    string
	// AllowOrigins feeds the CORS middleware for the JSON API.
	AllowOrigins []string
}

// CatalogConfig selects where the catalog document comes from.
type CatalogConfig struct {
	Source              string `validate:"required,oneof=file http s3 postgres"`
	Path                string `validate:"required_if=Source file"`
	URL                 string `validate:"required_if=Source http,omitempty,url"`
	S3Key               string `validate:"required_if=Source s3"`
	FetchTimeout        int
	Locale              string
	BatchSize           int `validate:"gte=0,lte=100"`
	RecommendationCount int `validate:"gte=0"`
	DetailPath          string
}

// ClientConfig is handed to the browser client through data-* attributes on
// the page body.
type ClientConfig struct {
	ImageMarginPx    int `validate:"gte=0"`
	ScrollMarginPx   int `validate:"gte=0"`
	PollThresholdPx  int `validate:"gte=0"`
	SearchDebounceMs int `validate:"gte=0"`
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	PgDriver string
	SSLMode  string
}

type RedisConfig struct {
	RedisAddr     string
	RedisPassword string
	DB            int
	MinIdleConns  int
	PoolSize      int
	PoolTimeout   int
	UseTLS        bool
	// DocumentTTL bounds how long a revalidatable catalog copy is kept, in seconds.
	DocumentTTL int
}

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
}

type Logger struct {
	Development       bool
	DisableCaller     bool
	DisableStacktrace bool
	Encoding          string
	Level             string
}

const (
	defaultBatchSize           = 30
	defaultRecommendationCount = 12
	defaultLocale              = "en"
	defaultDetailPath          = "/player"
	defaultFetchTimeout        = 10
	defaultImageMarginPx       = 500
	defaultScrollMarginPx      = 1000
	defaultPollThresholdPx     = 200
	defaultSearchDebounceMs    = 200
)

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(filename)
	v.AddConfigPath(".")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFound) {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	c.applyDefaults()
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

// GetConfigPath picks the config file name for the given environment.
func GetConfigPath(env string) string {
	if env == "docker" {
		return "./config/config-docker"
	}
	return "./config/config-local"
}

func (c *Config) applyDefaults() {
	if c.Catalog.BatchSize == 0 {
		c.Catalog.BatchSize = defaultBatchSize
	}
	if c.Catalog.RecommendationCount == 0 {
		c.Catalog.RecommendationCount = defaultRecommendationCount
	}
	if c.Catalog.Locale == "" {
		c.Catalog.Locale = defaultLocale
	}
	if c.Catalog.DetailPath == "" {
		c.Catalog.DetailPath = defaultDetailPath
	}
	if c.Catalog.FetchTimeout == 0 {
		c.Catalog.FetchTimeout = defaultFetchTimeout
	}
	if c.Client.ImageMarginPx == 0 {
		c.Client.ImageMarginPx = defaultImageMarginPx
	}
	if c.Client.ScrollMarginPx == 0 {
		c.Client.ScrollMarginPx = defaultScrollMarginPx
	}
	if c.Client.PollThresholdPx == 0 {
		c.Client.PollThresholdPx = defaultPollThresholdPx
	}
	if c.Client.SearchDebounceMs == 0 {
		c.Client.SearchDebounceMs = defaultSearchDebounceMs
	}
}
