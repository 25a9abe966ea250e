package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Data  DataConfig
	Redis RedisConfig
}

// DataConfig locates the two flat data files. The process assumes exclusive
// ownership of both for its lifetime.
type DataConfig struct {
	Dir              string `env:"DATA_DIR,          default=data"`
	UsersFile        string `env:"USERS_FILE,        default=users.csv"`
	ReservationsFile string `env:"RESERVATIONS_FILE, default=reservations.csv"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// UsersPath returns the full path of the users file.
func (c *Config) UsersPath() string {
	return c.Data.Dir + "/" + c.Data.UsersFile
}

// ReservationsPath returns the full path of the reservations file.
func (c *Config) ReservationsPath() string {
	return c.Data.Dir + "/" + c.Data.ReservationsFile
}
