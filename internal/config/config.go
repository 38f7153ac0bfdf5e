// config.go
//
// A song, artist, genre and award catalog service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of songcatalog.
// songcatalog is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// songcatalog is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with songcatalog.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port    string `envconfig:"PORT" default:"3000"`
	LogMode string `envconfig:"LOG_MODE" default:"development"`

	// Database configuration
	DBType            string `envconfig:"DB_TYPE" default:"mysql"` // mysql, postgres, sqlite, sqlite-pure, sqlserver
	DBHost            string `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string `envconfig:"DB_PORT" default:"3306"`
	DBDatabase        string `envconfig:"DB_DATABASE" required:"true"` // file path for sqlite
	DBUser            string `envconfig:"DB_USER"`
	DBPassword        string `envconfig:"DB_PASSWORD"`
	DBConnectionLimit int    `envconfig:"DB_CONNECTION_LIMIT" default:"5"`

	// Authorizer configuration, mutations are open when AuthzURL is empty
	AuthzURL      string `envconfig:"AUTHZ_URL"`
	AuthzClientID string `envconfig:"AUTHZ_CLIENT_ID"`
}

// Load loads configuration from environment variables.
// If ENV_FILE is set, that file is loaded into the environment first.
func Load() (*Config, error) {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if c.DBUser == "" && !c.IsSQLite() {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBConnectionLimit < 1 {
		return fmt.Errorf("DB_CONNECTION_LIMIT must be at least 1")
	}
	if c.AuthzURL != "" && c.AuthzClientID == "" {
		return fmt.Errorf("AUTHZ_CLIENT_ID is required when AUTHZ_URL is set")
	}
	return nil
}

// IsProduction reports whether LOG_MODE selects production logging
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.LogMode, "production") || strings.EqualFold(c.LogMode, "prod")
}

// IsSQLite reports whether the configured database is a sqlite file
func (c *Config) IsSQLite() bool {
	return c.DBType == "sqlite" || c.DBType == "sqlite-pure"
}

// AuthEnabled reports whether mutations are guarded by the Authorizer
func (c *Config) AuthEnabled() bool {
	return c.AuthzURL != ""
}
