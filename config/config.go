package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store backends selectable through STORE_BACKEND.
const (
	StoreMemory   = "memory"
	StoreDatabase = "database"
	StoreRedis    = "redis"
)

// Config holds the application's configuration values.
type Config struct {
	AppName        string        `json:"appname"`
	AppEnv         string        `json:"appenv"`
	AppPort        uint16        `json:"appport"`
	GinMode        string        `json:"ginmode"`
	DBDriver       string        `json:"dbdriver"`
	DBHost         string        `json:"dbhost"`
	DBPort         uint16        `json:"dbport"`
	DBName         string        `json:"dbname"`
	DBUSER         string        `json:"dbuser"`
	DBPass         string        `json:"dbpass"`
	StoreBackend   string        `json:"store_backend"`
	SeedSampleData bool          `json:"seed_sample_data"`
	RateLimit      int           `json:"rate_limit"`
	RateWindow     time.Duration `json:"rate_window"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
// A missing .env file is not an error; the process environment is used as is.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("could not load .env file")
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		if appPort == 0 {
			appPort = 8001
		}
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)
		rateLimit, _ := strconv.Atoi(os.Getenv("RATE_LIMIT"))
		rateWindow, _ := time.ParseDuration(os.Getenv("RATE_WINDOW"))

		config = &Config{
			AppName:        envOrDefault("APPNAME", "Patient Referral Intelligent System"),
			AppEnv:         envOrDefault("APPENV", "development"),
			AppPort:        uint16(appPort),
			GinMode:        envOrDefault("GINMODE", "debug"),
			DBDriver:       strings.ToLower(envOrDefault("DBDRIVER", "sqlite")),
			DBHost:         os.Getenv("DBHOST"),
			DBPort:         uint16(dbPort),
			DBName:         envOrDefault("DBNAME", "referral.db"),
			DBUSER:         os.Getenv("DBUSER"),
			DBPass:         os.Getenv("DBPASS"),
			StoreBackend:   strings.ToLower(envOrDefault("STORE_BACKEND", StoreMemory)),
			SeedSampleData: envBool("SEED_SAMPLE_DATA", true),
			RateLimit:      rateLimit,
			RateWindow:     rateWindow,
		}
	})
	return config
}

// ResetConfigForTest drops the cached configuration so the next LoadConfig re-reads the environment.
// This function is only available for testing and should not be used in production code.
func ResetConfigForTest() {
	config = nil
	once = sync.Once{}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envBool parses key with strconv.ParseBool; unset or unparsable values yield def.
func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid boolean, using default")
		return def
	}
	return b
}

// DSN builds the data source name for the configured driver.
func (c *Config) DSN() (string, error) {
	switch c.DBDriver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", c.DBUSER, c.DBPass, c.DBHost, c.DBPort, c.DBName), nil
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", c.DBHost, c.DBPort, c.DBUSER, c.DBPass, c.DBName), nil
	case "sqlite":
		return c.DBName, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.DBDriver)
	}
}

// ConnectDatabase opens a gorm connection for the configured driver.
// When APPENV is "test" it always returns a fresh in-memory sqlite database.
func ConnectDatabase() (*gorm.DB, error) {
	cfg := LoadConfig()
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true}

	if cfg.AppEnv == "test" || os.Getenv("APPENV") == "test" {
		dsn := fmt.Sprintf("file:referral_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
		return gorm.Open(sqlite.Open(dsn), gormCfg)
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	return db, nil
}
