package configs

import (
	"log"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Chatbot  `mapstructure:"chatbot"`
	Database `mapstructure:"database"`
	Postgres `mapstructure:"postgres"`
	ShopAPI  `mapstructure:"shop_api"`
	Session  `mapstructure:"session"`
	Auth     `mapstructure:"auth"`
}

// App struct - e-commerce service settings
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Chatbot struct - chatbot gateway settings
type Chatbot struct {
	Port string `mapstructure:"port"`
}

// Database struct - driver is "sqlite" or "postgres"; an empty postgres dsn is
// built from the Postgres section
type Database struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// ShopAPI struct - where the chatbot reaches the e-commerce service
type ShopAPI struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// Session struct
type Session struct {
	Timeout int `mapstructure:"timeout"` // idle minutes, 0 keeps sessions forever
}

// Auth struct
type Auth struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	TokenTTL  int    `mapstructure:"token_ttl"` // minutes
}

// Default values applied when a setting is zero
const (
	DefaultShopAPITimeout = 10 * time.Second
	DefaultTokenTTL       = 24 * time.Hour
)

// RequestTimeout returns the per-request timeout of the e-commerce client
func (s ShopAPI) RequestTimeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultShopAPITimeout
	}
	return time.Duration(s.Timeout) * time.Second
}

// IdleTimeout returns the session eviction timeout, zero when disabled
func (s Session) IdleTimeout() time.Duration {
	if s.Timeout <= 0 {
		return 0
	}
	return time.Duration(s.Timeout) * time.Minute
}

// TTL returns the lifetime of login tokens
func (a Auth) TTL() time.Duration {
	if a.TokenTTL <= 0 {
		return DefaultTokenTTL
	}
	return time.Duration(a.TokenTTL) * time.Minute
}

var config Config

// InitViper func - env, when set, overrides app.env
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func setDefaults() {
	viper.SetDefault("app.env", "local")
	viper.SetDefault("app.port", "5000")
	viper.SetDefault("chatbot.port", "5001")
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "ecommerce.db")
	viper.SetDefault("shop_api.base_url", "http://localhost:5000")
	viper.SetDefault("shop_api.timeout", 10)
	viper.SetDefault("session.timeout", 0)
	viper.SetDefault("auth.token_ttl", 1440)
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	if env != "" {
		viper.Set("app.env", env)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}
