// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for optional `.env` files and
// `github.com/caarlos0/env/v11` for parsing into tagged structs. Each
// component declares its own Config struct next to its code (mongo.Config,
// httpserver.Config, dbrouter.Config, tenant.Config) and the binary composes
// them.
//
// # Usage
//
//	if err := config.LoadEnv(); err != nil { // ./.env, optional
//		return err
//	}
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Variables already present in the environment win over values from .env
// files.
//
// # Error Handling
//
//   - ErrParsingConfig: env vars could not be parsed into the struct (missing required, bad format)
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read
//   - ErrNilPointer: nil pointer passed to Load
package config
