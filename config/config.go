package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	DataDir    string           `mapstructure:"data_dir"`
	Store      StoreConfig      `mapstructure:"store"`
	Audit      AuditConfig      `mapstructure:"audit"`
	Log        LogConfig        `mapstructure:"log"`
	Server     ServerConfig     `mapstructure:"server"`
	Backup     BackupConfig     `mapstructure:"backup"`
	Pagination PaginationConfig `mapstructure:"pagination"`
}

// StoreConfig selects and configures the document store backend
type StoreConfig struct {
	UseSQLite  bool   `mapstructure:"use_sqlite"`
	SQLitePath string `mapstructure:"sqlite_path"` // relative paths resolve against data_dir
}

// AuditConfig holds audit trail configuration
type AuditConfig struct {
	Retention      int  `mapstructure:"retention"`       // entries kept per company
	CacheSize      int  `mapstructure:"cache_size"`      // open trails kept in memory
	RecoverCorrupt bool `mapstructure:"recover_corrupt"` // start empty when the file cannot be decoded
}

// LogConfig holds logging configuration
type LogConfig struct {
	Format string `mapstructure:"format"` // "json" or "text"
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
	Dir    string `mapstructure:"dir"`    // empty logs to stderr only
}

// ServerConfig holds the local API server configuration
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// BackupConfig holds backup configuration
type BackupConfig struct {
	Dir        string `mapstructure:"dir"`
	Schedule   string `mapstructure:"schedule"`  // cron spec, empty disables scheduled backups
	S3Bucket   string `mapstructure:"s3_bucket"` // empty disables uploads
	S3Prefix   string `mapstructure:"s3_prefix"`
	S3Region   string `mapstructure:"s3_region"`
	S3Endpoint string `mapstructure:"s3_endpoint"` // for S3-compatible stores such as MinIO
}

// PaginationConfig holds list view defaults
type PaginationConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "ACCOUNTAPP"

// Load reads configuration from an optional .env file, an optional config
// file and environment variables. configFile may be empty.
func Load(configFile string) (*Config, error) {
	return LoadWithOverrides(configFile, nil)
}

// LoadWithOverrides is Load with values that take precedence over every other
// source, keyed like the config file (for example "store.use_sqlite").
func LoadWithOverrides(configFile string, overrides map[string]any) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./data")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, using defaults
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Unmarshal of defaults alone cannot fail
	_ = v.Unmarshal(&cfg)
	cfg.normalize()
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "data")
	v.SetDefault("store.use_sqlite", false)
	v.SetDefault("store.sqlite_path", "accountapp.db")
	v.SetDefault("audit.retention", 10000)
	v.SetDefault("audit.cache_size", 32)
	v.SetDefault("audit.recover_corrupt", true)
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "")
	v.SetDefault("server.addr", "127.0.0.1:8765")
	v.SetDefault("backup.dir", "backups")
	v.SetDefault("backup.schedule", "")
	v.SetDefault("backup.s3_bucket", "")
	v.SetDefault("backup.s3_prefix", "accountapp")
	v.SetDefault("backup.s3_region", "us-east-1")
	v.SetDefault("backup.s3_endpoint", "")
	v.SetDefault("pagination.page_size", 100)
}

// normalize resolves relative paths against the data directory
func (c *Config) normalize() {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	c.Store.SQLitePath = c.resolve(c.Store.SQLitePath)
	c.Backup.Dir = c.resolve(c.Backup.Dir)
	if c.Log.Dir != "" {
		c.Log.Dir = c.resolve(c.Log.Dir)
	}
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataDir, p)
}
