package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port    string
	GinMode string

	MongoURI string
	DBName   string

	JWTSecret    string
	JWTExpiresIn time.Duration

	CORSOrigins []string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	UploadDir           string

	ZeptoAPIURL   string
	ZeptoAPIKey   string
	EmailFrom     string
	EmailFromName string
	ContactInbox  string

	RequestTimeout      time.Duration
	RegistrationTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "youth_portal"),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTExpiresIn: getDuration("JWT_EXPIRES_IN", 90*24*time.Hour),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),

		ZeptoAPIURL:   getEnv("ZEPTO_API_URL", ""),
		ZeptoAPIKey:   getEnv("ZEPTO_API_KEY", ""),
		EmailFrom:     getEnv("EMAIL_FROM", ""),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "Youth Portal"),
		ContactInbox:  getEnv("CONTACT_INBOX", getEnv("EMAIL_FROM", "")),

		RequestTimeout:      getDuration("REQUEST_TIMEOUT", 5*time.Second),
		RegistrationTimeout: getDuration("REGISTRATION_TIMEOUT", 10*time.Second),
	}
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// CloudinaryEnabled reports whether uploads should go to Cloudinary instead of local disk.
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// AllowAllOrigins is true when CORS_ORIGINS is "*" or empty.
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSOrigins) == 0 || (len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := ParseDuration(raw)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

// ParseDuration accepts Go durations ("12h", "30m") and whole days ("90d").
func ParseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if days, ok := strings.CutSuffix(raw, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(raw)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
