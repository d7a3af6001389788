package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa la configuración del server y del CLI.
type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string
	AppName   string

	// Storage
	StoreBackend   string // memory | sqlite | postgres | redis
	StoreNamespace string
	SQLitePath     string
	DatabaseDSN    string
	DBAutoMigrate  bool
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	// UI feedback
	SearchDebounce time.Duration
	StatusTTL      time.Duration
	ToastFade      time.Duration
	ToastTTL       time.Duration

	// CLI modo remoto
	ServerURL string
}

// Load lee .env (si existe) y luego el entorno.
// Las variables ya definidas en el entorno no se pisan.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		AppName:   getEnv("APP_NAME", "pet-clinic-site"),

		StoreBackend:   strings.ToLower(strings.TrimSpace(getEnv("STORE_BACKEND", "memory"))),
		StoreNamespace: strings.TrimSpace(getEnv("STORE_NAMESPACE", "petclinic")),
		SQLitePath:     getEnv("SQLITE_PATH", "petclinic.db"),
		DatabaseDSN:    getEnv("DB_DSN", ""),
		DBAutoMigrate:  getEnvAsBool("DB_AUTO_MIGRATE", true),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),

		SearchDebounce: getEnvAsDuration("SEARCH_DEBOUNCE", 200*time.Millisecond),
		StatusTTL:      getEnvAsDuration("STATUS_TTL", 2800*time.Millisecond),
		ToastFade:      getEnvAsDuration("TOAST_FADE", 1800*time.Millisecond),
		ToastTTL:       getEnvAsDuration("TOAST_TTL", 2200*time.Millisecond),

		ServerURL: getEnv("PETS_SERVER", ""),
	}
}

// Addr devuelve la dirección de escucha del server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(strings.TrimSpace(valueStr)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(strings.TrimSpace(valueStr)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil && value >= 0 {
		return value
	}
	return defaultValue
}
