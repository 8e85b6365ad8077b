// Package config loads runtime configuration from an optional YAML file and
// COMPOSURE_-prefixed environment variables, with the environment winning.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Discord DiscordConfig `koanf:"discord"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
}

type DiscordConfig struct {
	// PublicKey is the application's Ed25519 verification key, hex encoded.
	PublicKey string `koanf:"public_key"`

	// BotToken authenticates command registration calls. The webhook itself
	// never needs it.
	BotToken string `koanf:"bot_token"`

	ApplicationID string `koanf:"application_id"`

	// GuildID, when set, scopes command registration to one guild instead of
	// the global command set.
	GuildID string `koanf:"guild_id"`
}

// envPrefix maps COMPOSURE_SERVER__PORT to server.port: the double
// underscore separates nesting levels, single underscores stay in key names.
const envPrefix = "COMPOSURE_"

func envToKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

// Load reads the file at path (skipped when path is empty or the file does
// not exist) and then the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("loading %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, err
	}

	if !k.Exists("server.port") {
		k.Set("server.port", 8080)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
