package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Session cookie configuration
	SessionSecret  string `yaml:"SESSION_SECRET"`
	SessionMinutes string `yaml:"SESSION_MINUTES"`
	ActiveMinutes  string `yaml:"ACTIVE_MINUTES"`

	// External recipe API configuration
	SpoonacularAPIKey string `yaml:"SPOONACULAR_API_KEY"`
	SpoonacularURL    string `yaml:"SPOONACULAR_URL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// App
	AppURL      string `yaml:"APP_URL"`
	AppPort     string `yaml:"APP_PORT"`
	FrontendURL string `yaml:"FRONTEND_URL"`
	IsProd      bool   `yaml:"IsProd"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Environment variables override the yaml file when present.
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		config.SessionSecret = v
	}
	if v := os.Getenv("SPOONACULAR_API_KEY"); v != "" {
		config.SpoonacularAPIKey = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		config.FrontendURL = v
	}

	os.Setenv("SESSION_SECRET", config.SessionSecret)
	os.Setenv("IS_PROD", getBoolString(config.IsProd))
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SESSION_SECRET":
		return config.SessionSecret
	case "SESSION_MINUTES":
		return config.SessionMinutes
	case "ACTIVE_MINUTES":
		return config.ActiveMinutes
	case "SPOONACULAR_API_KEY":
		return config.SpoonacularAPIKey
	case "SPOONACULAR_URL":
		return config.SpoonacularURL
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "APP_URL":
		return config.AppURL
	case "APP_PORT":
		return config.AppPort
	case "FRONTEND_URL":
		return config.FrontendURL
	case "IsProd":
		return getBoolString(config.IsProd)
	default:
		return ""
	}
}
