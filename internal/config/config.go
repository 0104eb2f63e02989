package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	TokenTTL      time.Duration
	MinioEndpoint string
	MinioAccess   string
	MinioSecret   string
	MinioBucket   string
	MinioUseSSL   bool
	PublicURLBase string
}

func Load() Config {
	ttlMin := atoi(getenv("TOKEN_TTL_MIN", "60"))
	if ttlMin <= 0 {
		ttlMin = 60
	}
	return Config{
		Port:          getenv("PORT", "4000"),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getenv("MONGO_DB", "treknest"),
		JWTSecret:     getenv("JWT_SECRET", "dev_secret_change_me"),
		TokenTTL:      time.Duration(ttlMin) * time.Minute,
		MinioEndpoint: getenv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccess:   getenv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecret:   getenv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:   getenv("MINIO_BUCKET", "treknest-images"),
		MinioUseSSL:   getenv("MINIO_USE_SSL", "false") == "true",
		PublicURLBase: getenv("PUBLIC_URL_BASE", ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return 0
}
