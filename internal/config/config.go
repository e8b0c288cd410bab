// /internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Session Session `yaml:"session"`
	Store   Store   `yaml:"store"`
}

type Server struct {
	Port            string        `yaml:"port"`
	GinMode         string        `yaml:"gin_mode"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Session struct {
	Secret string `yaml:"secret"`
	MaxAge int    `yaml:"max_age"` // seconds
}

type Store struct {
	Seed                  bool   `yaml:"seed"`
	ClearCartOnOrder      bool   `yaml:"clear_cart_on_order"`
	FreeShippingThreshold string `yaml:"free_shipping_threshold"`
	ShippingFee           string `yaml:"shipping_fee"`
}

// Default returns the configuration used when no file or variable says
// otherwise.
func Default() *Config {
	return &Config{
		Server: Server{
			Port:            "8080",
			GinMode:         "release",
			CORSOrigins:     []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Session: Session{
			Secret: "creative-store-dev-secret",
			MaxAge: 30 * 24 * 60 * 60,
		},
		Store: Store{
			Seed:                  true,
			FreeShippingThreshold: "100",
			ShippingFee:           "10",
		},
	}
}

// Load reads the YAML file at path over the defaults, loads .env into the
// process environment and applies the environment overrides. Neither the
// YAML file nor .env has to exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.GinMode = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Session.Secret = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.CORSOrigins = origins
	}
	if err := envBool("SEED", &c.Store.Seed); err != nil {
		return err
	}
	if err := envBool("CLEAR_CART_ON_ORDER", &c.Store.ClearCartOnOrder); err != nil {
		return err
	}
	if v := os.Getenv("FREE_SHIPPING_THRESHOLD"); v != "" {
		c.Store.FreeShippingThreshold = v
	}
	if v := os.Getenv("SHIPPING_FEE"); v != "" {
		c.Store.ShippingFee = v
	}
	return nil
}

// envBool overwrites dst when the variable is set.
func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}
