package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	S3Region    string
	S3Bucket    string
	S3URLExpiry time.Duration

	CoreServiceURL string
	SellerID       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:      getEnv("PORT", "8000"),
		DBSource:  getEnv("DB_SOURCE", "seller.db"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,

		S3Region:    getEnv("S3_REGION", "ap-south-1"),
		S3Bucket:    getEnv("S3_BUCKET", "seller-app-assets"),
		S3URLExpiry: time.Duration(getEnvInt("S3_URL_EXPIRY_MINUTES", 15)) * time.Minute,

		CoreServiceURL: getEnv("BASE_TSP_URL", "http://localhost:3000"),
		SellerID:       getEnv("SELLER_ID", "ondc.wallic.io"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
