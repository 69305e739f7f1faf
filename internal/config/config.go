package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Dataset  DatasetConfig
	Map      MapConfig
	Location LocationConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Path     string
	MaxConns int
}

type DatasetConfig struct {
	Path string
}

type MapConfig struct {
	DefaultLat  float64
	DefaultLon  float64
	DefaultZoom float64
	MaxZoom     float64
}

type LocationConfig struct {
	PermissionGranted bool
	Available         bool
	Lat               float64
	Lon               float64
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env опционален: конфигурация может прийти целиком из окружения
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("APP_HOST"),
			Port: viper.GetInt("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			Path:     viper.GetString("DB_PATH"),
			MaxConns: viper.GetInt("DB_MAX_CONNS"),
		},
		Dataset: DatasetConfig{
			Path: viper.GetString("DATASET_PATH"),
		},
		Map: MapConfig{
			DefaultLat:  viper.GetFloat64("MAP_DEFAULT_LAT"),
			DefaultLon:  viper.GetFloat64("MAP_DEFAULT_LON"),
			DefaultZoom: viper.GetFloat64("MAP_DEFAULT_ZOOM"),
			MaxZoom:     viper.GetFloat64("MAP_MAX_ZOOM"),
		},
		Location: LocationConfig{
			PermissionGranted: viper.GetBool("LOCATION_PERMISSION_GRANTED"),
			Available:         viper.GetBool("LOCATION_AVAILABLE"),
			Lat:               viper.GetFloat64("LOCATION_LAT"),
			Lon:               viper.GetFloat64("LOCATION_LON"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "adygyes.db"
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 1
	}
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "data/attractions.json"
	}
	// Майкоп - центр карты по умолчанию
	if cfg.Map.DefaultLat == 0 {
		cfg.Map.DefaultLat = 44.609764
	}
	if cfg.Map.DefaultLon == 0 {
		cfg.Map.DefaultLon = 40.100516
	}
	if cfg.Map.DefaultZoom == 0 {
		cfg.Map.DefaultZoom = 10
	}
	if cfg.Map.MaxZoom == 0 {
		cfg.Map.MaxZoom = 21
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
