package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/little-lemon/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	ProfileBackendSQLite = "sqlite"
	ProfileBackendRedis  = "redis"
)

type Config struct {
	Host          string
	Port          string
	GinMode       string
	LogLevel      string
	MenuDBPath    string
	Profile       ProfileConfig
	Search        SearchConfig
	UploadDir     string
	ShareBaseURL  string
	AllowedOrigin string
}

type ProfileConfig struct {
	Backend       string
	DBPath        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

type SearchConfig struct {
	Debounce time.Duration
}

// Load membaca .env (jika ada) lalu environment dengan nilai default.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Debugf("No .env file loaded: %v", err)
	}

	redisDB, _ := strconv.Atoi(getEnv("PROFILE_REDIS_DB", "0"))
	debounceMs, err := strconv.Atoi(getEnv("SEARCH_DEBOUNCE_MS", "100"))
	if err != nil || debounceMs < 0 {
		utils.ErrorLogger.Warnf("Invalid SEARCH_DEBOUNCE_MS, falling back to 100ms")
		debounceMs = 100
	}

	port := getEnv("PORT", "8080")
	host := getEnv("HOST", "127.0.0.1")

	return &Config{
		Host:       host,
		Port:       port,
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		MenuDBPath: getEnv("MENU_DB_PATH", "little_lemon.db"),
		Profile: ProfileConfig{
			Backend:       getEnv("PROFILE_BACKEND", ProfileBackendSQLite),
			DBPath:        getEnv("PROFILE_DB_PATH", "little_lemon_profile.db"),
			RedisAddr:     getEnv("PROFILE_REDIS_ADDR", "127.0.0.1:6379"),
			RedisPassword: getEnv("PROFILE_REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			RedisPrefix:   getEnv("PROFILE_REDIS_PREFIX", "littlelemon:profile:"),
		},
		Search: SearchConfig{
			Debounce: time.Duration(debounceMs) * time.Millisecond,
		},
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/avatars"),
		ShareBaseURL:  getEnv("SHARE_BASE_URL", "http://"+host+":"+port),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://127.0.0.1:5500"),
	}
}

// Addr is the listen address for the local API.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// InitDB opens a single-file SQLite database. The pool is capped at one
// connection so pragmas and writes always hit the same handle.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func InitRedis(cfg ProfileConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}

	return client, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
