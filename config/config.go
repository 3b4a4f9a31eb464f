package config

import (
	"errors"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Admin struct {
		Username string
		Password string
	}
	CORS struct {
		AllowedOrigins []string
	}
}

// Validate checks the settings the service cannot run without. The admin
// credential is required so mutating routes are never left open.
func (c *Config) Validate() error {
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return errors.New("admin username and password must be configured")
	}
	if c.App.Port == 0 {
		return errors.New("app port must be configured")
	}
	return nil
}
