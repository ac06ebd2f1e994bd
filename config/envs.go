package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Rows            int     // Maze rows
	Cols            int     // Maze columns
	Seed            int64   // Random seed; 0 picks one from the clock
	PursuerCount    int     // Number of pursuing obstacles
	PursuitInterval int     // Ticks between pursuer steps
	PlayerInterval  int     // Ticks between autopilot player steps
	MaxTicks        int     // Tick budget for a headless run
	RewardOne       int     // Common reward value
	RewardTwo       int     // Rare reward value
	RewardProb      float64 // Base probability of RewardOne
	LogLevel        string  // debug, info, warn or error
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig loads .env if present and reads every key, falling back to defaults.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		Rows:            getEnvAsIntWithDefault("MAZE_ROWS", 24),
		Cols:            getEnvAsIntWithDefault("MAZE_COLS", 24),
		Seed:            int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		PursuerCount:    getEnvAsIntWithDefault("PURSUER_COUNT", 2),
		PursuitInterval: getEnvAsIntWithDefault("PURSUIT_INTERVAL", 4),
		PlayerInterval:  getEnvAsIntWithDefault("PLAYER_INTERVAL", 2),
		MaxTicks:        getEnvAsIntWithDefault("MAX_TICKS", 2000),
		RewardOne:       getEnvAsIntWithDefault("REWARD_ONE", 1),
		RewardTwo:       getEnvAsIntWithDefault("REWARD_TWO", 5),
		RewardProb:      getEnvAsFloatWithDefault("REWARD_PROB", 0.8),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses an integer variable, keeping the default when it is unset or malformed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be a number, using %v: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
