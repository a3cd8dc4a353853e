package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	GoogleProjectID       string
	GoogleCredentialsFile string

	// CarsCollection is the Firestore collection holding one document per
	// car.
	CarsCollection string

	// StorageBucket holds the 3D model assets under models/<volumeId>.usdz.
	StorageBucket string

	// ModelURLExpiration bounds how long a signed model URL stays valid.
	ModelURLExpiration time.Duration

	OTLPEndpoint string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:               getenv("APP_SERVICE", "car-service"),
		AppVersion:            getenv("APP_VERSION", "1.0.0"),
		Environment:           getenv("ENVIRONMENT", "development"),
		HTTPAddr:              getenv("HTTP_ADDR", ":8080"),
		GoogleProjectID:       getenv("GOOGLE_CLOUD_PROJECT", ""),
		GoogleCredentialsFile: getenv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		CarsCollection:        getenv("CARS_COLLECTION", "cars"),
		StorageBucket:         getenv("STORAGE_BUCKET", "carinspectinator-car-models"),
		ModelURLExpiration:    time.Duration(getenvInt("MODEL_URL_EXPIRATION_HOURS", 24)) * time.Hour,
		OTLPEndpoint:          getenv("OTLP_ENDPOINT", "localhost:4317"),
	}
}

// Module provides the loaded configuration to the application graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
