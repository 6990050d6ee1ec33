// Package config loads typed configuration from environment variables.
//
// Struct fields are described with caarlos0/env tags. Before parsing, Load
// reads dotenv files with joho/godotenv; values already present in the process
// environment win over file values.
//
//	type Config struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[Config]()
package config
