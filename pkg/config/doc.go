// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv, which loads optional .env files into the
// process environment, and github.com/caarlos0/env/v11, which parses the
// environment into a struct annotated with env tags:
//
//	type Config struct {
//		Lang     string `env:"CNPJ_LANG" envDefault:"pt-BR"`
//		LogLevel string `env:"CNPJ_LOG_LEVEL" envDefault:"warn"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load caches the parsed value per struct type for the life of the process.
// Parse skips the cache and can read from an explicit environment map, which
// keeps command entry points testable.
package config
