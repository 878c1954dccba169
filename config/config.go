package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the YAML file.
const (
	EnvAPIToken   = "SPBU_API_TOKEN"
	EnvAPIBaseURL = "SPBU_API_BASE_URL"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Upstream   UpstreamConfig   `yaml:"upstream"`
	Cache      CacheConfig      `yaml:"cache"`
	Report     ReportConfig     `yaml:"report"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
	Log        LogConfig        `yaml:"log"`
}

// WorkerPoolConfig bounds the number of reports rendered concurrently by a batch export.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// UpstreamConfig describes the remote station API.
type UpstreamConfig struct {
	BaseURL        string            `yaml:"base_url"`
	Token          string            `yaml:"token"`
	Headers        map[string]string `yaml:"headers"`
	HTTPProxy      string            `yaml:"http_proxy"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
	Timeout        time.Duration     `yaml:"-"`
}

// CacheConfig controls how long station snapshots fetched from upstream are reused.
type CacheConfig struct {
	SnapshotTTLSeconds int           `yaml:"snapshot_ttl_seconds"`
	SnapshotTTL        time.Duration `yaml:"-"`
}

// ReportConfig holds rendering options for exported documents.
type ReportConfig struct {
	Timezone  string `yaml:"timezone"`
	OutputDir string `yaml:"output_dir"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Load reads the configuration from the given path. A .env file in the working
// directory, if present, is loaded first so that secrets can stay out of the YAML file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("could not load .env file: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIToken); v != "" {
		c.Upstream.Token = v
	}
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.Upstream.BaseURL = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitPerSec <= 0 {
		c.Server.RateLimitPerSec = 10
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 5
	}
	if c.Server.CacheTTLSeconds < 0 {
		c.Server.CacheTTLSeconds = 0
	}

	if c.Upstream.TimeoutSeconds <= 0 {
		c.Upstream.TimeoutSeconds = 30
	}
	c.Upstream.Timeout = time.Duration(c.Upstream.TimeoutSeconds) * time.Second

	if c.Cache.SnapshotTTLSeconds < 0 {
		c.Cache.SnapshotTTLSeconds = 0
	}
	c.Cache.SnapshotTTL = time.Duration(c.Cache.SnapshotTTLSeconds) * time.Second

	if c.Report.Timezone == "" {
		c.Report.Timezone = "Asia/Jakarta"
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "."
	}

	if c.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		c.WorkerPool.Size = 1
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Location resolves the configured report timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		log.Printf("Warning: invalid timezone %q: %v. Using UTC.", c.Report.Timezone, err)
		return time.UTC
	}
	return loc
}

// SetupLogger configures the global logrus logger from cfg.
func SetupLogger(cfg LogConfig) {
	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Printf("unknown log level %q; using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
}
