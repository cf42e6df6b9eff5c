package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Postgres    PostgresConfig
	Auth        AuthConfig
	Mail        MailConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Client      ClientConfig
	Booking     BookingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AuthConfig verifies session tokens issued by the external session
// provider. This service never issues tokens itself.
type AuthConfig struct {
	JWTSecret string
}

type MailConfig struct {
	APIURL      string
	APIKey      string
	FromAddress string
	// NotifyAddress is the studio inbox that receives new-booking alerts.
	NotifyAddress string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// ClientConfig is consumed by the admin console, not the server.
type ClientConfig struct {
	BaseURL    string
	DebounceMS int
}

type BookingConfig struct {
	Timezone string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/ unless
// CONFIG_PATH points at an explicit file.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")

	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("session_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	cfg.Mail.APIURL = viper.GetString("mail.api_url")
	cfg.Mail.APIKey = viper.GetString("mail.api_key")
	if key := viper.GetString("mail_api_key"); key != "" {
		cfg.Mail.APIKey = key
	}
	cfg.Mail.FromAddress = viper.GetString("mail.from_address")
	cfg.Mail.NotifyAddress = viper.GetString("mail.notify_address")

	// Split allowed origins since viper might not parse the array seamlessly
	// from env
	var origins []string
	if raw := viper.GetString("cors.allowed_origins"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.Client.BaseURL = viper.GetString("client.base_url")
	cfg.Client.DebounceMS = viper.GetInt("client.debounce_ms")

	cfg.Booking.Timezone = viper.GetString("booking.timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("postgres.max_open_conns", 20)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("client.base_url", "http://localhost:8080")
	viper.SetDefault("client.debounce_ms", 300)
	viper.SetDefault("booking.timezone", "Asia/Ho_Chi_Minh")
}
