package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	S3Region string
	S3Bucket string

	RedisAddr  string
	CatalogTTL time.Duration

	// timeout ต่อ request — ครอบ transaction ทั้งก้อน
	RequestTimeout time.Duration
}

func LoadConfig() *Config {
	// .env เป็น optional — prod ใช้ env จริง
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "restaurants"),
		DBPort:     getEnv("DB_PORT", "5432"),

		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		S3Region: getEnv("S3_REGION", "us-east-1"),
		S3Bucket: getEnv("S3_BUCKET", "restaurants-serverless-assets"),

		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		CatalogTTL: 5 * time.Minute,

		RequestTimeout: 5 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
