package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=3000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// PublicBaseURL is the externally reachable URL of the devserver, used to
	// build uploaded image URLs.
	PublicBaseURL string `env:"PUBLIC_BASE_URL, default=http://localhost:3000"`
	UploadDir     string `env:"UPLOAD_DIR,      default=uploads"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Client ClientConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ClientConfig configures the storefront client core when it runs against
// the devserver.
type ClientConfig struct {
	APIBaseURL  string `env:"API_BASE_URL, default=http://localhost:3000"`
	SessionFile string `env:"SESSION_FILE, default=.storefront/session.json"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
