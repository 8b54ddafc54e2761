package config

import "os"

type Config struct {
	Port               string
	JWTSecret          string
	MySQLDSN           string
	AzureConnString    string
	AzureContainerName string
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "dev"),
		MySQLDSN:           getEnv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/campushub?charset=utf8mb4&parseTime=True"),
		AzureConnString:    getEnv("AZURE_STORAGE_CONNECTION_STRING", ""),
		AzureContainerName: getEnv("AZURE_STORAGE_CONTAINER_NAME", "post-images"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
