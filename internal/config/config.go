package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the kanban service
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logger   LoggerConfig   `yaml:"logger"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Storage  StorageConfig  `yaml:"storage"`
	S3       S3Config       `yaml:"s3"`
	Image    ImageConfig    `yaml:"image"`
	Cleanup  CleanupConfig  `yaml:"cleanup"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	BasePath        string        `yaml:"base_path"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// GetDSN returns the postgres DSN, preferring an explicit URL
func (d DatabaseConfig) GetDSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Enabled reports whether a redis server is configured
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Addr != ""
}

type SessionConfig struct {
	Secret     string        `yaml:"secret"`
	CookieName string        `yaml:"cookie_name"`
	TTL        time.Duration `yaml:"ttl"`
	Secure     bool          `yaml:"secure"`
}

type StorageConfig struct {
	Backend   string `yaml:"backend"` // local | s3
	MediaRoot string `yaml:"media_root"`
	BaseURL   string `yaml:"base_url"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"`
}

// ImageConfig limits uploaded task images
type ImageConfig struct {
	MaxSizeMB   float64 `yaml:"max_size_mb"`
	MaxSidePx   int     `yaml:"max_side_px"`
	JPEGQuality int     `yaml:"jpeg_quality"`
	// MaxPixels caps width*height before an upload is decoded
	MaxPixels int64 `yaml:"max_pixels"`
}

// MaxSizeBytes returns the upload limit in bytes
func (i ImageConfig) MaxSizeBytes() int64 {
	return int64(i.MaxSizeMB * 1024 * 1024)
}

type CleanupConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule"`
}

// Default returns the configuration used when no file or env overrides are present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Mode:            "debug",
			BasePath:        "",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logger: LoggerConfig{Level: "info"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "kanban",
			Name:            "kanban",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Session: SessionConfig{
			CookieName: "kanban_session",
			TTL:        14 * 24 * time.Hour,
		},
		Storage: StorageConfig{
			Backend:   "local",
			MediaRoot: "media",
			BaseURL:   "/media",
		},
		Image: ImageConfig{
			MaxSizeMB:   2,
			MaxSidePx:   1920,
			JPEGQuality: 90,
			MaxPixels:   40_000_000,
		},
		Cleanup: CleanupConfig{
			Enabled:  false,
			Schedule: "@daily",
		},
	}
}

// Load reads configuration from a yaml file (if it exists) and applies env overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if basePath := os.Getenv("SERVER_BASE_PATH"); basePath != "" {
		cfg.Server.BasePath = basePath
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, origin)
			}
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Database.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.Name = name
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.Session.Secret = secret
	}

	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if root := os.Getenv("MEDIA_ROOT"); root != "" {
		cfg.Storage.MediaRoot = root
	}
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		cfg.S3.Bucket = bucket
	}
	if region := os.Getenv("S3_REGION"); region != "" {
		cfg.S3.Region = region
	}
	if accessKey := os.Getenv("S3_ACCESS_KEY"); accessKey != "" {
		cfg.S3.AccessKey = accessKey
	}
	if secretKey := os.Getenv("S3_SECRET_KEY"); secretKey != "" {
		cfg.S3.SecretKey = secretKey
	}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		cfg.S3.Endpoint = endpoint
	}

	if size := os.Getenv("IMAGE_MAX_SIZE_MB"); size != "" {
		if v, err := strconv.ParseFloat(size, 64); err == nil {
			cfg.Image.MaxSizeMB = v
		}
	}
	if side := os.Getenv("IMAGE_MAX_SIDE_PX"); side != "" {
		if v, err := strconv.Atoi(side); err == nil {
			cfg.Image.MaxSidePx = v
		}
	}

	if pixels := os.Getenv("IMAGE_MAX_PIXELS"); pixels != "" {
		if v, err := strconv.ParseInt(pixels, 10, 64); err == nil {
			cfg.Image.MaxPixels = v
		}
	}

	if enabled := os.Getenv("CLEANUP_ENABLED"); enabled != "" {
		if v, err := strconv.ParseBool(enabled); err == nil {
			cfg.Cleanup.Enabled = v
		}
	}
	if schedule := os.Getenv("CLEANUP_SCHEDULE"); schedule != "" {
		cfg.Cleanup.Schedule = schedule
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Server.Mode == "release" && c.Session.Secret == "" {
		return fmt.Errorf("session secret is required in release mode")
	}
	if c.Image.MaxSizeMB <= 0 {
		return fmt.Errorf("image.max_size_mb must be positive, got %v", c.Image.MaxSizeMB)
	}
	if c.Image.MaxSidePx <= 0 {
		return fmt.Errorf("image.max_side_px must be positive, got %d", c.Image.MaxSidePx)
	}
	if c.Image.MaxPixels <= 0 {
		return fmt.Errorf("image.max_pixels must be positive, got %d", c.Image.MaxPixels)
	}
	if c.Image.JPEGQuality < 1 || c.Image.JPEGQuality > 100 {
		return fmt.Errorf("image.jpeg_quality must be within 1..100, got %d", c.Image.JPEGQuality)
	}
	switch c.Storage.Backend {
	case "local":
		if c.Storage.MediaRoot == "" {
			return fmt.Errorf("storage.media_root is required for the local backend")
		}
	case "s3":
		if c.S3.Bucket == "" || c.S3.Region == "" {
			return fmt.Errorf("s3.bucket and s3.region are required for the s3 backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q (must be local or s3)", c.Storage.Backend)
	}
	return nil
}
