package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	AuthBackend AuthBackendConfig
	Email       EmailConfig
	Storage     StorageConfig
}

type AppConfig struct {
	Name    string
	Port    string
	BaseURL string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// AuthBackendConfig points at an optional external identity backend.
// When BaseURL is empty, credentials are checked locally.
type AuthBackendConfig struct {
	BaseURL string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type StorageConfig struct {
	Driver     string // "local" or "s3"
	LocalDir   string
	S3Bucket   string
	S3Region   string
	S3Endpoint string
	S3User     string
	S3Password string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("UPLOAD_DIR", "uploads/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			BaseURL: viper.GetString("BASE_URL"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		AuthBackend: AuthBackendConfig{
			BaseURL: viper.GetString("AUTH_BACKEND_URL"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Storage: StorageConfig{
			Driver:     viper.GetString("STORAGE_DRIVER"),
			LocalDir:   viper.GetString("UPLOAD_DIR"),
			S3Bucket:   viper.GetString("S3_BUCKET"),
			S3Region:   viper.GetString("S3_REGION"),
			S3Endpoint: viper.GetString("S3_ENDPOINT"),
			S3User:     viper.GetString("S3_USER"),
			S3Password: viper.GetString("S3_PASS"),
		},
	}

	return config, nil
}
