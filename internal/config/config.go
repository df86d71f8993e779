package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret string
	LogMode   string

	// Blob storage. When GCSBucket is set media goes to Cloud Storage,
	// otherwise to MediaDir on disk, served under MediaBaseURL.
	GCSBucket      string
	GCSCredentials string
	MediaDir       string
	MediaBaseURL   string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          getenv("DATABASE_URL", ""),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		JWTSecret:            getenv("JWT_SECRET", "dev-secret-change-me"),
		LogMode:              getenv("LOG_MODE", "dev"),
		GCSBucket:            getenv("GCS_BUCKET_NAME", ""),
		GCSCredentials:       getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON", ""),
		MediaDir:             getenv("MEDIA_DIR", "./media"),
		MediaBaseURL:         getenv("MEDIA_BASE_URL", "http://localhost:8080/media"),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

// Configured reports whether the backing store is usable at all. When false
// the server still starts but every data route serves a fixed advisory
// response instead of attempting calls.
func (c Config) Configured() bool {
	return c.DatabaseURL != ""
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
