package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DatabaseURL      string        `yaml:"database_url"`
	Environment      string        `yaml:"environment"`
	LogFile          string        `yaml:"log_file"`
	DBMaxConns       int64         `yaml:"db_max_conns"`
	DBConnectTimeout time.Duration `yaml:"db_connect_timeout"`
	LicenseStateCode string        `yaml:"license_state_code"`
	BrowsePageSize   int64         `yaml:"browse_page_size"`
}

func defaults() *Config {
	return &Config{
		Environment:      "development",
		LogFile:          "realestate.log",
		DBMaxConns:       4,
		DBConnectTimeout: 5 * time.Second,
		LicenseStateCode: "CA",
		BrowsePageSize:   20,
	}
}

// Load reads .env files, then the optional YAML file at path, then the
// process environment. Later sources win.
func Load(path string, envFiles ...string) (*Config, error) {
	godotenv.Load(envFiles...)

	config := defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, config); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	for _, key := range []string{"DATABASE_URL", "DB_URL"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			config.DatabaseURL = value
			break
		}
	}
	if config.DatabaseURL == "" {
		config.DatabaseURL = dsnFromParts()
	}
	config.Environment = getEnv("ENVIRONMENT", config.Environment)
	config.LogFile = getEnv("LOG_FILE", config.LogFile)
	config.DBMaxConns = getEnvAsInt64("DB_MAX_CONNS", config.DBMaxConns)
	config.DBConnectTimeout = getEnvAsDuration("DB_CONNECT_TIMEOUT", config.DBConnectTimeout)
	config.LicenseStateCode = strings.ToUpper(getEnv("LICENSE_STATE_CODE", config.LicenseStateCode))
	config.BrowsePageSize = getEnvAsInt64("BROWSE_PAGE_SIZE", config.BrowsePageSize)

	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL or DB_HOST/DB_NAME must be set")
	}
	if config.BrowsePageSize <= 0 || config.BrowsePageSize > 100 {
		config.BrowsePageSize = 20
	}

	return config, nil
}

// dsnFromParts builds a postgres URL from the DB_* variables used by the
// original deployment.
func dsnFromParts() string {
	host := getEnv("DB_HOST", "")
	name := getEnv("DB_NAME", "")
	if host == "" || name == "" {
		return ""
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%s", host, getEnv("DB_PORT", "5432")),
		Path:   "/" + name,
	}
	if user := getEnv("DB_USER", ""); user != "" {
		if pass := getEnv("DB_PASSWORD", ""); pass != "" {
			u.User = url.UserPassword(user, pass)
		} else {
			u.User = url.User(user)
		}
	}
	q := url.Values{}
	q.Set("sslmode", getEnv("DB_SSLMODE", "disable"))
	u.RawQuery = q.Encode()

	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
