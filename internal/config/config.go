package config

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"seoaudit/internal/log"
)

// Configuration keys.
const (
	BASIC_AUTH_USER       = "BASIC_AUTH_USER"
	BASIC_AUTH_PASS       = "BASIC_AUTH_PASS"
	IS_DEV                = "IS_DEV"
	SERVER_ADDR           = "SERVER_ADDR"
	METRICS_ADDR          = "METRICS_ADDR"
	FETCH_TIMEOUT_SECONDS = "FETCH_TIMEOUT_SECONDS"
)

type Config struct {
	BasicAuthUser       string `mapstructure:"BASIC_AUTH_USER"`
	BasicAuthPass       string `mapstructure:"BASIC_AUTH_PASS"`
	IsDev               string `mapstructure:"IS_DEV"`
	ServerAddr          string `mapstructure:"SERVER_ADDR"`
	MetricsAddr         string `mapstructure:"METRICS_ADDR"`
	FetchTimeoutSeconds int    `mapstructure:"FETCH_TIMEOUT_SECONDS"`
}

var AppConfig *Config

func LoadEnv() {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Logger.Error(".env file not found")
	}

	v.AutomaticEnv()

	v.SetDefault(BASIC_AUTH_USER, "")
	v.SetDefault(BASIC_AUTH_PASS, "")
	v.SetDefault(IS_DEV, "false")
	v.SetDefault(SERVER_ADDR, ":8080")
	v.SetDefault(METRICS_ADDR, ":8081")
	v.SetDefault(FETCH_TIMEOUT_SECONDS, 15)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Logger.Fatal("Failed to unmarshal config", zap.Error(err))
	}

	AppConfig = &cfg

	if AppConfig.BasicAuthUser == "" || AppConfig.BasicAuthPass == "" {
		log.Logger.Fatal("BASIC_AUTH_USER and BASIC_AUTH_PASS must be set")
	}
}
