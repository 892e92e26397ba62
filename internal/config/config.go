package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port      int        `mapstructure:"port"`
	StaticDir string     `mapstructure:"static_dir"`
	CORS      CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Admin    AdminConfig    `mapstructure:"admin"`
	UI       UIConfig       `mapstructure:"ui"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// AdminConfig holds the shared secret for write endpoints.
// An empty secret denies all admin requests.
type AdminConfig struct {
	Secret string `mapstructure:"secret"`
}

// UIConfig holds operator-configured values exposed to the front end
// through the config endpoint. Values stay in their raw shapes
// (text or native list) and are parsed when served.
type UIConfig struct {
	BatchSize      string `mapstructure:"batch_size"`
	MobilePageSize string `mapstructure:"mobile_page_size"`
	MobileOptions  any    `mapstructure:"mobile_options"`
	PCPageSize     string `mapstructure:"pc_page_size"`
	PCOptions      any    `mapstructure:"pc_options"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/verbbook")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.static_dir", "public")
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "verbbook")
	v.SetDefault("database.username", "user")

	// Secrets come from the environment only, never from the config file
	if err := v.BindEnv("admin.secret", "ADMIN_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind ADMIN_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	// UI values keep the environment variable names the front end knows
	uiBindings := map[string]string{
		"ui.batch_size":       "BATCH_SIZE",
		"ui.mobile_page_size": "MOBILE_PAGE_SIZE",
		"ui.mobile_options":   "MOBILE_OPTIONS",
		"ui.pc_page_size":     "PC_PAGE_SIZE",
		"ui.pc_options":       "PC_OPTIONS",
	}
	for key, envVar := range uiBindings {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", envVar, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
