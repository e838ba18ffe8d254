package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "8000"
	DefaultAdminPassword = "admin123"
	DefaultEnvironment   = "development"
	DefaultSiteURL       = "https://royalabycattery.com"
	DefaultTokenTTL      = 24 * time.Hour
)

var DefaultCORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// Config agrupa todo lo que el servicio lee del entorno.
type Config struct {
	Port        string
	DatabaseURL string // vacío => repos in-memory

	SecretKey string
	TokenTTL  time.Duration

	CORSOrigins          []string
	DefaultAdminPassword string
	Environment          string

	SiteURL     string
	FrontendDir string
	ImagesDir   string

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load intenta leer un .env (opcional) y después arma la config desde env vars.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		// godotenv no pisa variables ya definidas en el proceso.
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup arma la config con una función de lookup (os.LookupEnv en prod, map en tests).
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Port:                 get("PORT", DefaultPort),
		DatabaseURL:          get("DATABASE_URL", ""),
		SecretKey:            get("SECRET_KEY", ""),
		TokenTTL:             DefaultTokenTTL,
		CORSOrigins:          splitCSV(get("CORS_ORIGINS", strings.Join(DefaultCORSOrigins, ","))),
		DefaultAdminPassword: get("DEFAULT_ADMIN_PASSWORD", DefaultAdminPassword),
		Environment:          get("ENVIRONMENT", DefaultEnvironment),
		SiteURL:              strings.TrimRight(get("SITE_URL", DefaultSiteURL), "/"),
		FrontendDir:          get("FRONTEND_DIR", "../frontend/dist"),
		ImagesDir:            get("IMAGES_DIR", "../images"),
		LogLevel:             get("LOG_LEVEL", "info"),
		LogFormat:            get("LOG_FORMAT", ""),
		AppName:              get("APP_NAME", "cattery-cms"),
	}

	if raw := get("JWT_EXPIRATION_HOURS", ""); raw != "" {
		h, err := strconv.Atoi(raw)
		if err != nil || h <= 0 {
			return Config{}, fmt.Errorf("config: JWT_EXPIRATION_HOURS must be a positive integer, got %q", raw)
		}
		cfg.TokenTTL = time.Duration(h) * time.Hour
	}

	// Render entrega postgres:// y algunos drivers esperan postgresql://; pgx acepta ambos,
	// normalizamos igual para que los logs sean consistentes.
	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") {
		cfg.DatabaseURL = "postgresql://" + strings.TrimPrefix(cfg.DatabaseURL, "postgres://")
	}

	if cfg.SecretKey == "" {
		key, err := randomHex(32)
		if err != nil {
			return Config{}, fmt.Errorf("config: generate secret key: %w", err)
		}
		cfg.SecretKey = key
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
