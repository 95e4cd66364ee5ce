package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	Downloader DownloaderConfig
	Whisper    WhisperConfig
	Gemini     GeminiConfig
	Transcript TranscriptCacheConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type AuthConfig struct {
	JWTSecret string
}

// DownloaderConfig configures the yt-dlp based audio acquisition step.
type DownloaderConfig struct {
	YtDlpPath string
}

// WhisperConfig configures the transcription engine. Model selects the
// Whisper variant; BaseURL points the client at a self-hosted
// Whisper-compatible server when set.
type WhisperConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// TranscriptCacheConfig controls the optional redis transcript cache.
// A zero TTL caches indefinitely.
type TranscriptCacheConfig struct {
	TTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("downloader.yt_dlp_path", "yt-dlp")
	viper.SetDefault("whisper.model", "whisper-1")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("transcript_cache.ttl", "24h")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("auth.jwt_secret"),
		},
		Downloader: DownloaderConfig{
			YtDlpPath: viper.GetString("downloader.yt_dlp_path"),
		},
		Whisper: WhisperConfig{
			APIKey:  viper.GetString("whisper.api_key"),
			Model:   viper.GetString("whisper.model"),
			BaseURL: viper.GetString("whisper.base_url"),
		},
		Gemini: GeminiConfig{
			APIKey: viper.GetString("gemini.api_key"),
			Model:  viper.GetString("gemini.model"),
		},
		Transcript: TranscriptCacheConfig{
			TTL: viper.GetDuration("transcript_cache.ttl"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}
	if key := os.Getenv("WHISPER_API_KEY"); key != "" {
		config.Whisper.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}

	return config, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}
