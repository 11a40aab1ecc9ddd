package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	defaultMongoURL = "mongodb://localhost:27017/jupiter-orders"
	defaultPort     = "3001"
)

// database the driver falls back to when the URL carries no path
const defaultDatabase = "test"

type Config struct {
	MongoURL       string        `envconfig:"MONGO_URL" default:"mongodb://localhost:27017/jupiter-orders"`
	Port           string        `envconfig:"PORT" default:"3001"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"debug"`
	LogFormat      string        `envconfig:"LOG_FORMAT" default:"console"`
	ConnectTimeout time.Duration `envconfig:"CONNECT_TIMEOUT" default:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process env config")
	}
	// set-but-empty behaves like unset
	if cfg.MongoURL == "" {
		cfg.MongoURL = defaultMongoURL
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	return cfg, nil
}

// DatabaseName returns the database named in a mongodb:// URL.
func DatabaseName(mongoURL string) (string, error) {
	cs, err := connstring.ParseAndValidate(mongoURL)
	if err != nil {
		return "", errors.Wrap(err, "parse mongo url")
	}
	if cs.Database == "" {
		return defaultDatabase, nil
	}
	return cs.Database, nil
}
