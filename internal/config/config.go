package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env       Env
	Server    ServerConfig
	Minio     MinioConfig
	Upload    UploadConfig
	NATS      NATSConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host           string        `envconfig:"SERVER_HOST" default:"localhost"`
	Port           string        `envconfig:"SERVER_PORT" default:"8080"`
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"60s"`
	JSONBodyLimit  int64         `envconfig:"SERVER_JSON_BODY_LIMIT" default:"1048576"` // 1MB
}

type MinioConfig struct {
	Endpoint        string        `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName      string        `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey       string        `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey       string        `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL          bool          `envconfig:"MINIO_USE_SSL" default:"false"`
	PublicRead      bool          `envconfig:"MINIO_PUBLIC_READ" default:"true"`
	PublicBaseURL   string        `envconfig:"MINIO_PUBLIC_BASE_URL"`
	PresignDuration time.Duration `envconfig:"MINIO_PRESIGN_DURATION" default:"168h"`
}

type UploadConfig struct {
	MaxFileSize       int64         `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"104857600"` // 100MB
	TempDir           string        `envconfig:"UPLOAD_TEMP_DIR"`
	TranscodeSlots    int           `envconfig:"UPLOAD_TRANSCODE_SLOTS" default:"2"`
	StrategyTimeout   time.Duration `envconfig:"UPLOAD_STRATEGY_TIMEOUT" default:"10m"`
	ImageMaxDimension int           `envconfig:"UPLOAD_IMAGE_MAX_DIMENSION" default:"1920"`
	ImageQuality      int           `envconfig:"UPLOAD_IMAGE_QUALITY" default:"75"`
	CleanupEvery      time.Duration `envconfig:"UPLOAD_CLEANUP_EVERY" default:"15m"`
	TempFileTTL       time.Duration `envconfig:"UPLOAD_TEMP_FILE_TTL" default:"2h"`
	FFmpegPath        string        `envconfig:"UPLOAD_FFMPEG_PATH" default:"ffmpeg"`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" required:"true"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"EVENTS"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"event-log-writer"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"events.logged"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

type AuthConfig struct {
	TokenSecret string        `envconfig:"AUTH_TOKEN_SECRET" required:"true"`
	TokenTTL    time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"12h"`
	SeedSecret  string        `envconfig:"ADMIN_SEED_SECRET"`
}

type RateLimitConfig struct {
	RedisAddr        string `envconfig:"REDIS_ADDR"`
	RedisPassword    string `envconfig:"REDIS_PASSWORD"`
	RedisDB          int    `envconfig:"REDIS_DB" default:"0"`
	UploadsPerMinute int64  `envconfig:"RATE_LIMIT_UPLOADS_PER_MINUTE" default:"20"`
	LikesPerMinute   int64  `envconfig:"RATE_LIMIT_LIKES_PER_MINUTE" default:"60"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WorkerConfig is the subset read by the event worker
type WorkerConfig struct {
	NATS     NATSConfig
	Database DatabaseConfig
}

// LoadWorker reads the broker and database groups only
func LoadWorker() (*WorkerConfig, error) {
	var cfg WorkerConfig

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDatabase only reads the database group, for tools that need nothing else
func LoadDatabase() (*DatabaseConfig, error) {
	var cfg DatabaseConfig

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
