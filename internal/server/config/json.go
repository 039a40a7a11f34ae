package config

import (
	"encoding/json"
	"os"

	"github.com/securepass/securepass/internal/flagx"
	"github.com/securepass/securepass/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. Interval fields use timex.Duration, which accepts
// both string values such as "10m" and integer nanoseconds. After
// unmarshalling, non-empty fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr                 string         `json:"endpoint_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	JWTSecret                    string         `json:"jwt_secret"`
	EncryptionKey                string         `json:"encryption_key"`
	SessionTokenValidityDuration timex.Duration `json:"session_token_validity_duration"`
	ShareTokenValidityDuration   timex.Duration `json:"share_token_validity_duration"`
	GinMode                      string         `json:"gin_mode"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. If neither flag is set,
// nothing is loaded. An unreadable or invalid file panics: a config file
// that was asked for but cannot be used is a startup error.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.JWTSecret != "" {
		config.JWTSecret = c.JWTSecret
	}
	if c.EncryptionKey != "" {
		config.EncryptionKey = c.EncryptionKey
	}
	if c.SessionTokenValidityDuration.Duration != 0 {
		config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	}
	if c.ShareTokenValidityDuration.Duration != 0 {
		config.ShareTokenValidityDuration = c.ShareTokenValidityDuration.Duration
	}
	if c.GinMode != "" {
		config.GinMode = c.GinMode
	}
}
