// Command register pushes the application's command definitions to Discord.
// It fingerprints each definition and skips commands that have not changed
// since the last push, keeping repeated runs cheap and idempotent.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/composure-bot/composure/internal/command"
	"github.com/composure-bot/composure/internal/config"
	"github.com/composure-bot/composure/internal/models"
	"github.com/composure-bot/composure/internal/rest"
	"github.com/composure-bot/composure/internal/syncstate"
)

// commands is the definition set this application serves. Keep it in step
// with the handlers registered in cmd/composure.
func commands() []command.Command {
	return command.NewBuilder().
		ChatInput("ping", "Check the bot is alive", nil).
		ChatInput("admin", "Admin tools", func(b *command.ChatInputBuilder) {
			b.DefaultMemberPermissions(models.PermissionManageGuild).
				NoDMs().
				Group("role", "Role management", func(g *command.GroupBuilder) {
					g.Subcommand("grant", "Grant a role to a member", func(s *command.SubcommandBuilder) {
						s.UserOption("who", "Member to grant the role to", true).
							RoleOption("role", "Role to grant", true).
							StringOption("reason", "Audit log reason", false, nil)
					})
				})
		}).
		Build()
}

func main() {
	configPath := flag.String("config", "composure.yaml", "path to the config file")
	statePath := flag.String("state", "composure-state.db", "path to the sync state database")
	force := flag.Bool("force", false, "push every command even if unchanged")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if cfg.Discord.BotToken == "" || cfg.Discord.ApplicationID == "" {
		log.Fatal("discord.bot_token and discord.application_id are required")
	}

	store, err := syncstate.Open(*statePath)
	if err != nil {
		log.Fatalf("opening state database: %v", err)
	}
	defer store.Close()

	client := rest.NewClient(cfg.Discord.BotToken, cfg.Discord.ApplicationID)

	scope := syncstate.GlobalScope
	if cfg.Discord.GuildID != "" {
		scope = cfg.Discord.GuildID
	}

	ctx := context.Background()
	defs := commands()
	names := make([]string, 0, len(defs))
	pushed := 0

	for _, def := range defs {
		name := def.Definition().Name
		names = append(names, name)

		digest, err := syncstate.Fingerprint(def)
		if err != nil {
			log.Fatalf("fingerprinting %s: %v", name, err)
		}

		if !*force {
			stored, err := store.Digest(ctx, scope, name)
			if err != nil {
				log.Fatalf("reading state for %s: %v", name, err)
			}
			if stored == digest {
				logger.Info("unchanged, skipping", slog.String("command", name))
				continue
			}
		}

		if cfg.Discord.GuildID != "" {
			_, err = client.CreateGuildCommand(ctx, cfg.Discord.GuildID, def)
		} else {
			_, err = client.CreateGlobalCommand(ctx, def)
		}
		if err != nil {
			log.Fatalf("pushing %s: %v", name, err)
		}

		if err := store.MarkPushed(ctx, scope, name, digest); err != nil {
			log.Fatalf("recording state for %s: %v", name, err)
		}
		logger.Info("pushed", slog.String("command", name), slog.String("scope", scope))
		pushed++
	}

	if err := store.Forget(ctx, scope, names); err != nil {
		log.Fatalf("pruning state: %v", err)
	}

	logger.Info("registration complete",
		slog.Int("total", len(defs)),
		slog.Int("pushed", pushed),
		slog.Int("skipped", len(defs)-pushed),
	)
}
