package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// dotEnvFile is read before the environment overlay. Variables already set
// in the process environment win over the file.
var dotEnvFile = ".env"

// parseEnv overlays cfg with SOCIAL_* environment variables. Unset variables
// leave the current value untouched.
func parseEnv(cfg *Config) error {
	// a missing .env is the common case
	_ = godotenv.Load(dotEnvFile)

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("failed to overlay env: %w", err)
	}
	return nil
}
