package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/terraincognita07/rangepicker/internal/security"
)

const (
	configKeyPort            = "port"
	configKeyDBPath          = "db_path"
	configKeySecretKey       = "secret_key"
	configKeyDefaultLanguage = "default_language"
	configKeyTimezone        = "tz"
	configKeyCookieSecure    = "cookie_secure"
)

type config struct {
	Port            string
	DBPath          string
	SecretKey       string
	DefaultLanguage string
	Location        *time.Location
	CookieSecure    bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(configKeyPort, "8080")
	v.SetDefault(configKeyDBPath, filepath.Join("data", "rangepicker.db"))
	v.SetDefault(configKeyDefaultLanguage, "en")
	v.SetDefault(configKeyTimezone, "UTC")
	v.SetDefault(configKeyCookieSecure, false)
	v.AutomaticEnv()
	return v
}

// readConfigFile merges an optional config file under the environment.
func readConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func loadLocation(v *viper.Viper) *time.Location {
	return mustLoadLocation(v.GetString(configKeyTimezone))
}

// loadServerConfig resolves everything serve needs, rejecting unsafe secrets.
func loadServerConfig(v *viper.Viper) (config, error) {
	port, err := resolvePort(v.GetString(configKeyPort))
	if err != nil {
		return config{}, err
	}
	secret, err := security.ValidateSecretKey(v.GetString(configKeySecretKey))
	if err != nil {
		return config{}, err
	}

	return config{
		Port:            port,
		DBPath:          v.GetString(configKeyDBPath),
		SecretKey:       secret,
		DefaultLanguage: v.GetString(configKeyDefaultLanguage),
		Location:        loadLocation(v),
		CookieSecure:    v.GetBool(configKeyCookieSecure),
	}, nil
}

func resolvePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return port, nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
