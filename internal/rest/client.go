// Package rest is a minimal Discord REST client covering the application
// command endpoints used for registration.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/composure-bot/composure/internal/command"
)

const (
	defaultBaseURL = "https://discord.com/api/v10"
	userAgent      = "DiscordBot (https://github.com/composure-bot/composure, 0.1)"
)

// Client calls the Discord API with bot token authentication.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	applicationID string
}

// Option adjusts a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a client for one application.
func NewClient(botToken, applicationID string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:       defaultBaseURL,
		token:         botToken,
		applicationID: applicationID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from Discord.
type APIError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("discord api: status %d: %s", e.Status, e.Body)
}

// GlobalCommands lists the application's global command set.
func (c *Client) GlobalCommands(ctx context.Context) ([]command.Command, error) {
	body, err := c.do(ctx, http.MethodGet, c.commandsPath(""), nil)
	if err != nil {
		return nil, err
	}
	return command.DecodeCommandList(body)
}

// GuildCommands lists the application's command set in one guild.
func (c *Client) GuildCommands(ctx context.Context, guildID string) ([]command.Command, error) {
	body, err := c.do(ctx, http.MethodGet, c.commandsPath(guildID), nil)
	if err != nil {
		return nil, err
	}
	return command.DecodeCommandList(body)
}

// CreateGlobalCommand registers or updates one global command by name.
func (c *Client) CreateGlobalCommand(ctx context.Context, cmd command.Command) (command.Command, error) {
	body, err := c.do(ctx, http.MethodPost, c.commandsPath(""), cmd)
	if err != nil {
		return nil, err
	}
	return command.DecodeCommand(body)
}

// CreateGuildCommand registers or updates one command in a guild.
func (c *Client) CreateGuildCommand(ctx context.Context, guildID string, cmd command.Command) (command.Command, error) {
	body, err := c.do(ctx, http.MethodPost, c.commandsPath(guildID), cmd)
	if err != nil {
		return nil, err
	}
	return command.DecodeCommand(body)
}

// OverwriteGlobalCommands replaces the whole global command set.
func (c *Client) OverwriteGlobalCommands(ctx context.Context, cmds []command.Command) ([]command.Command, error) {
	body, err := c.do(ctx, http.MethodPut, c.commandsPath(""), cmds)
	if err != nil {
		return nil, err
	}
	return command.DecodeCommandList(body)
}

// OverwriteGuildCommands replaces the whole command set of a guild.
func (c *Client) OverwriteGuildCommands(ctx context.Context, guildID string, cmds []command.Command) ([]command.Command, error) {
	body, err := c.do(ctx, http.MethodPut, c.commandsPath(guildID), cmds)
	if err != nil {
		return nil, err
	}
	return command.DecodeCommandList(body)
}

func (c *Client) commandsPath(guildID string) string {
	if guildID == "" {
		return fmt.Sprintf("/applications/%s/commands", c.applicationID)
	}
	return fmt.Sprintf("/applications/%s/guilds/%s/commands", c.applicationID, guildID)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(out)}
	}
	return out, nil
}
