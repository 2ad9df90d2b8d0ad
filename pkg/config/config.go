package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	PostgresConnStr string
	MongoURI        string
	Roster          []string
}

// defaultRoster is the demo fan-out target list used when NOTIFY_ROSTER
// is not set. There is no follower graph in this scope.
const defaultRoster = "alice,bob,carol,dave"

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:        getEnv("MONGO_URI", ""),
		Roster:          parseRoster(getEnv("NOTIFY_ROSTER", defaultRoster)),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseRoster splits a comma-separated user list, dropping empty entries.
func parseRoster(raw string) []string {
	parts := strings.Split(raw, ",")
	roster := make([]string, 0, len(parts))
	for _, p := range parts {
		if u := strings.TrimSpace(p); u != "" {
			roster = append(roster, u)
		}
	}
	return roster
}
