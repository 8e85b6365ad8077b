package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COMPOSURE_SERVER__PORT", "9000")
	t.Setenv("COMPOSURE_DISCORD__PUBLIC_KEY", "852aec10")
	t.Setenv("COMPOSURE_DISCORD__APPLICATION_ID", "1052322265397739523")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Discord.PublicKey != "852aec10" {
		t.Errorf("public key = %q", cfg.Discord.PublicKey)
	}
	if cfg.Discord.ApplicationID != "1052322265397739523" {
		t.Errorf("application id = %q", cfg.Discord.ApplicationID)
	}
}

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "composure.yaml")
	content := []byte("server:\n  port: 3000\ndiscord:\n  guild_id: \"798662131062931547\"\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("COMPOSURE_SERVER__PORT", "9000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("env should override file: port = %d", cfg.Server.Port)
	}
	if cfg.Discord.GuildID != "798662131062931547" {
		t.Errorf("guild id = %q", cfg.Discord.GuildID)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("Load: %v", err)
	}
}
