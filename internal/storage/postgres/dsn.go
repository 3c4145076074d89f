package postgres

import (
	"fmt"

	"github.com/portfolio-cms/portfolio-backend/config"
)

// DSN returns the connection string for the configured database,
// preferring a full URL over the individual parts.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)
}
