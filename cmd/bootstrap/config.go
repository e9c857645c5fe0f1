package bootstrap

import (
	"bookwise/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		loadConfig,
	),
)

// loadConfig reads an optional .env file before resolving the process
// environment. Real deployments configure through the environment alone.
func loadConfig() (config.Config, error) {
	_ = godotenv.Load()
	return config.LoadConfig()
}
