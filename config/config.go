package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                  = "8080"
	DefaultAccessTokenExpiryMin  = 15
	DefaultRefreshTokenExpiryMin = 10080
	DefaultLoginMaxAttempts      = 3
	DefaultLoginLockoutMinutes   = 1440
	DefaultApprovalThreshold     = 10000
	DefaultRefreshStore          = "memory"
	DefaultLogLevel              = "info"
)

type Config struct {
	Env                 string
	Port                string
	DBURL               string
	RedisURL            string
	RefreshStore        string
	AccessTokenSecret   string
	RefreshTokenSecret  string
	AccessExpiryMin     int
	RefreshExpiryMin    int
	LoginMaxAttempts    int
	LoginLockoutMinutes int
	ApprovalThreshold   int
	LogLevel            string
	CORSAllowOrigins    string
}

// Load reads config/.env.dev or config/.env.prod depending on ENV. Variables
// already present in the environment take precedence over the file.
func Load() *Config {
	env := getEnv("ENV", "development")
	l := loader{file: readEnvFile(env)}

	return &Config{
		Env:                 env,
		Port:                l.getEnv("PORT", DefaultPort),
		DBURL:               l.mustGetEnv("DB_URL"),
		RedisURL:            l.getEnv("REDIS_URL", ""),
		RefreshStore:        l.getEnv("REFRESH_STORE", DefaultRefreshStore),
		AccessTokenSecret:   l.mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:  l.mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:     l.getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:    l.getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		LoginMaxAttempts:    l.getEnvAsInt("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts),
		LoginLockoutMinutes: l.getEnvAsInt("LOGIN_LOCKOUT_MINUTES", DefaultLoginLockoutMinutes),
		ApprovalThreshold:   l.getEnvAsInt("PROPOSAL_APPROVAL_THRESHOLD", DefaultApprovalThreshold),
		LogLevel:            l.getEnv("LOG_LEVEL", DefaultLogLevel),
		CORSAllowOrigins:    l.getEnv("CORS_ALLOW_ORIGINS", "*"),
	}
}

func readEnvFile(env string) map[string]string {
	name := ".env.dev"
	if env == "production" {
		name = ".env.prod"
	}
	path := filepath.Join("config", name)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		log.Printf("Could not read %s: %v", path, err)
		return nil
	}
	return values
}

// loader resolves keys from the environment first, then from the env file.
type loader struct {
	file map[string]string
}

func (l loader) lookup(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return l.file[key]
}

func (l loader) getEnv(key string, defaultVal string) string {
	if value := l.lookup(key); value != "" {
		return value
	}
	return defaultVal
}

func (l loader) mustGetEnv(key string) string {
	if value := l.lookup(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func (l loader) getEnvAsInt(key string, defaultVal int) int {
	valStr := l.lookup(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnv(key string, defaultVal string) string {
	return loader{}.getEnv(key, defaultVal)
}
