package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	AppBaseURL string

	EmailEnabled bool
	EmailFrom    string
	AwsRegion    string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "ngobridge")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "ngobridge")

	AppBaseURL = getEnv("APP_BASE_URL", "http://localhost:3000")

	EmailEnabled, _ = strconv.ParseBool(getEnv("EMAIL_ENABLED", "false"))
	EmailFrom = getEnv("EMAIL_FROM", "no-reply@ngobridge.org")
	AwsRegion = getEnv("AWS_REGION", "us-east-1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
