package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	StripeSecretKey string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	mongoURI, exists := os.LookupEnv("MONGO_URI")
	if !exists || mongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	stripeKey, exists := os.LookupEnv("STRIPE_SECRET_KEY")
	if !exists || stripeKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}

	return &Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        mongoURI,
		DBName:          getEnv("DB_NAME", "DrawCademiDB"),
		StripeSecretKey: stripeKey,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
