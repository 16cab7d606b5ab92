package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	HTTP  ServerConfig
	Mongo MongoConfig
	Log   LogConfig
	BDV   BDVConfig
	Reset ResetConfig
}

type AppConfig struct {
	ServiceName string
}

type ServerConfig struct {
	Host string
	Port string
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type LogConfig struct {
	Level string
}

// BDVConfig carries the credentials and routing for the Banco de Venezuela
// conciliation API. MerchantPhone is the merchant's own registered pago-movil
// number; it is sent as telefonoDestino on every verification call.
type BDVConfig struct {
	VerifyURL     string
	APIKey        string
	MerchantPhone string
	HTTPTimeout   time.Duration
}

type ResetConfig struct {
	BatchSize int32
	Hour      int
	Timezone  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable is required")
	}

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "vitalmoto"),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Mongo: MongoConfig{
			URI:            mongoURI,
			Database:       getEnv("MONGO_DATABASE", "vitalmoto"),
			ConnectTimeout: getSecondsEnv("MONGO_CONNECT_TIMEOUT_SECONDS", 10*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		BDV: BDVConfig{
			VerifyURL:     getEnv("BDV_VERIFY_URL", "https://bdvconciliacionqa.banvenez.com:444/getMovement/v2"),
			APIKey:        getEnv("BDV_API_KEY", ""),
			MerchantPhone: getEnv("BDV_MERCHANT_PHONE", ""),
			HTTPTimeout:   getSecondsEnv("BDV_HTTP_TIMEOUT_SECONDS", 10*time.Second),
		},
		Reset: ResetConfig{
			BatchSize: int32(getIntEnv("RESET_BATCH_SIZE", 500)),
			Hour:      getIntEnv("RESET_HOUR", 0),
			Timezone:  getEnv("RESET_TIMEZONE", "America/Caracas"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
