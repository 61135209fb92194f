// Package config loads application configuration from environment variables
// into Go structs and validates the result.
//
// It wraps `github.com/joho/godotenv` (the default `.env` file is loaded once
// per process, a missing file is not an error) and `github.com/caarlos0/env/v11`
// (struct field tags). After parsing, a struct whose pointer implements
// Validator has its Validate method called, which is the natural place for
// argassert checks:
//
//	type ServerConfig struct {
//	    Host    string `env:"HOST" envDefault:"localhost"`
//	    Port    int    `env:"PORT" envDefault:"8080"`
//	    Workers int    `env:"WORKERS" envDefault:"4"`
//	}
//
//	func (c *ServerConfig) Validate() error {
//	    if _, err := argassert.NotEmptyString(c.Host, "HOST"); err != nil {
//	        return err
//	    }
//	    if _, err := argassert.LessThanOrEqual(c.Port, 65535, "PORT"); err != nil {
//	        return err
//	    }
//	    _, err := argassert.GreaterThan(c.Workers, 0, "WORKERS")
//	    return err
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg, config.WithPrefix("APP_")); err != nil {
//	    // errors.Is(err, config.ErrInvalidConfig) and
//	    // errors.Is(err, argassert.ErrInvalidArgument) both hold
//	}
//
// Every call parses the current environment; nothing is cached.
package config
