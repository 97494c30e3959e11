package config

import "os"

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	FrontendURL string
	AppEnv      string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
}

// Load reads configuration from environment variables with local-dev fallbacks.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "5000"),
		MongoURI:    getenv("MONGO_URI", "mongodb://localhost:27017/campus_events"),
		MongoDB:     getenv("MONGO_DB", "campus_events"),
		JWTSecret:   getenv("JWT_SECRET", "secret"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:5173"),
		AppEnv:      getenv("APP_ENV", "development"),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getenv("MINIO_BUCKET", "event-media"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
