package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string     `yaml:"env" env:"APP_ENV" env-default:"local"`
	DatabaseURL string     `yaml:"database_url" env:"DATABASE_URL"`
	HTTPServer  HttpServer `yaml:"http_server" env-required:"true"`
	Redis       Redis      `yaml:"redis"`
	Auth        Auth       `yaml:"auth"`
	Loyalty     Loyalty    `yaml:"loyalty"`
	Client      Client     `yaml:"client"`
}

type HttpServer struct {
	Address         string        `yaml:"address" env-default:"localhost:8080"`
	BasePath        string        `yaml:"base_path" env-default:"/api/core"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type Redis struct {
	Addr           string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password       string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB             int           `yaml:"db" env-default:"0"`
	CheckinLockTTL time.Duration `yaml:"checkin_lock_ttl" env-default:"30s"`
}

type Auth struct {
	AdminSecret string `yaml:"admin_secret" env:"ADMIN_JWT_SECRET"`
	StaffSecret string `yaml:"staff_secret" env:"STAFF_JWT_SECRET"`
}

type Loyalty struct {
	PointsPerCheckin int `yaml:"points_per_checkin" env-default:"10"`
}

// Client configures the API client used by tooling.
type Client struct {
	Host    string        `yaml:"host" env:"API_HOST" env-default:"http://localhost:8080"`
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"/api/core"`
	Token   string        `yaml:"token" env:"API_TOKEN"`
	Timeout time.Duration `yaml:"timeout" env-default:"15s"`
}

// MustLoad panics if config can not be found.
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is required")
	}

	return MustLoadPath(configPath)
}

// MustLoadPath reads the config at configPath, panicking on any error.
func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); err != nil {
		panic("config file does not exist:" + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from cmd flag or environment variable.
// flag > env > default.
// default = "".
func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "Path to the configuration file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
