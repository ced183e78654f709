package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Prometheus Prometheus
	Weather    Weather
	CORS       CORS
	ViewCount  ViewCount
}

type HTTPServer struct {
	Address         string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	SSLMode        string
	MaxConns       int32
	MigrationsPath string
}

type Prometheus struct {
	Address string
	Port    int
}

type Weather struct {
	BaseURL    string
	Timeout    time.Duration
	DefaultLat float64
	DefaultLon float64
	Locale     string
}

type CORS struct {
	AllowedOrigins []string
}

type ViewCount struct {
	Timeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.read_timeout", "10s")
	v.SetDefault("http_server.write_timeout", "10s")
	v.SetDefault("http_server.shutdown_timeout", "30s")

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "blog-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "blog")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.migrations_path", "migrations")

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("weather.base_url", "https://api.open-meteo.com")
	v.SetDefault("weather.timeout", "5s")
	v.SetDefault("weather.default_lat", 37.5665)
	v.SetDefault("weather.default_lon", 126.9780)
	v.SetDefault("weather.locale", "ko")

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("view_count.timeout", "5s")
}

// Load reads ./config/config.yaml (optional), a .env file (optional) and
// BLOG_* environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %s", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("blog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:         v.GetString("http_server.address"),
			Port:            v.GetInt("http_server.port"),
			ReadTimeout:     v.GetDuration("http_server.read_timeout"),
			WriteTimeout:    v.GetDuration("http_server.write_timeout"),
			ShutdownTimeout: v.GetDuration("http_server.shutdown_timeout"),
		},
		Database: Database{
			Username:       v.GetString("database.username"),
			Password:       v.GetString("database.password"),
			Host:           v.GetString("database.host"),
			Port:           v.GetString("database.port"),
			DbName:         v.GetString("database.db_name"),
			SSLMode:        v.GetString("database.ssl_mode"),
			MaxConns:       v.GetInt32("database.max_conns"),
			MigrationsPath: v.GetString("database.migrations_path"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Weather: Weather{
			BaseURL:    v.GetString("weather.base_url"),
			Timeout:    v.GetDuration("weather.timeout"),
			DefaultLat: v.GetFloat64("weather.default_lat"),
			DefaultLon: v.GetFloat64("weather.default_lon"),
			Locale:     v.GetString("weather.locale"),
		},
		CORS: CORS{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
		},
		ViewCount: ViewCount{
			Timeout: v.GetDuration("view_count.timeout"),
		},
	}, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}
	return cfg
}
