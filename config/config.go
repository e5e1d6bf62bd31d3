package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	CloudinaryURL  string
	GinMode        string
}

// Load reads configuration from the environment once at startup. A .env
// file is picked up when present but is not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDB:       os.Getenv("MONGO_DB"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		GinMode:       os.Getenv("GIN_MODE"),
	}

	if cfg.JWTSecret == "" || cfg.MongoURI == "" {
		return nil, fmt.Errorf("JWT_SECRET and MONGODB_URI must be set")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "devlink"
	}

	cfg.TokenTTL = 24 * time.Hour
	if ttl := os.Getenv("TOKEN_TTL_HOURS"); ttl != "" {
		hours, err := strconv.Atoi(ttl)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS: %q", ttl)
		}
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return cfg, nil
}
