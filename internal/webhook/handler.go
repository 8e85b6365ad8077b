// Package webhook ties the wire pieces together into the HTTP endpoint
// Discord calls: signature check, envelope decode, handler dispatch, response
// encode.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/composure-bot/composure/internal/auth"
	"github.com/composure-bot/composure/internal/domain"
	"github.com/composure-bot/composure/internal/interaction"
	"github.com/composure-bot/composure/internal/models"
	"github.com/composure-bot/composure/internal/server"
)

const (
	headerSignature = "X-Signature-Ed25519"
	headerTimestamp = "X-Signature-Timestamp"

	// Discord caps interaction payloads well below this; anything larger is
	// not a legitimate request.
	maxBodyBytes = 1 << 20

	fallbackEmbedColor uint32 = 0xF04747
)

// CommandHandlerFunc answers one application command invocation.
type CommandHandlerFunc func(ctx context.Context, ic *interaction.ApplicationCommand) (interaction.Response, error)

// ComponentHandlerFunc answers one component interaction.
type ComponentHandlerFunc func(ctx context.Context, ic *interaction.MessageComponent) (interaction.Response, error)

// AutocompleteHandlerFunc suggests choices for a focused option.
type AutocompleteHandlerFunc func(ctx context.Context, ic *interaction.Autocomplete) (interaction.Response, error)

// ModalHandlerFunc answers one modal submission.
type ModalHandlerFunc func(ctx context.Context, ic *interaction.ModalSubmit) (interaction.Response, error)

// Handler is the interaction webhook endpoint. Register handlers before
// serving; registration is not synchronized against ServeHTTP.
type Handler struct {
	verifier *auth.Verifier
	logger   *slog.Logger

	commands      map[string]CommandHandlerFunc
	components    map[string]ComponentHandlerFunc
	autocompletes map[string]AutocompleteHandlerFunc
	modals        map[string]ModalHandlerFunc
}

// NewHandler builds an endpoint that accepts requests signed by the
// application's public key.
func NewHandler(verifier *auth.Verifier, logger *slog.Logger) *Handler {
	return &Handler{
		verifier:      verifier,
		logger:        logger,
		commands:      make(map[string]CommandHandlerFunc),
		components:    make(map[string]ComponentHandlerFunc),
		autocompletes: make(map[string]AutocompleteHandlerFunc),
		modals:        make(map[string]ModalHandlerFunc),
	}
}

// Command registers the handler for a command name.
func (h *Handler) Command(name string, fn CommandHandlerFunc) *Handler {
	h.commands[name] = fn
	return h
}

// Component registers the handler for a component custom id.
func (h *Handler) Component(customID string, fn ComponentHandlerFunc) *Handler {
	h.components[customID] = fn
	return h
}

// Autocomplete registers the suggestion handler for a command name.
func (h *Handler) Autocomplete(name string, fn AutocompleteHandlerFunc) *Handler {
	h.autocompletes[name] = fn
	return h
}

// Modal registers the handler for a modal custom id.
func (h *Handler) Modal(customID string, fn ModalHandlerFunc) *Handler {
	h.modals[customID] = fn
	return h
}

// ServeHTTP runs the webhook pipeline: verify the signature over the raw
// bytes, decode the envelope, dispatch, encode the response. The signature is
// checked before the body is parsed; unsigned bytes never reach the decoder.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(ctx, w, fmt.Errorf("reading request body: %w", err))
		return
	}

	signature := r.Header.Get(headerSignature)
	if signature == "" {
		h.writeError(ctx, w, domain.ErrMissingHeader(headerSignature))
		return
	}
	timestamp := r.Header.Get(headerTimestamp)
	if timestamp == "" {
		h.writeError(ctx, w, domain.ErrMissingHeader(headerTimestamp))
		return
	}

	if err := h.verifier.Verify(signature, timestamp, body); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	ic, err := interaction.Decode(body)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	server.AddLogField(ctx, "interaction_id", ic.Header().ID.String())

	resp, err := h.dispatch(ctx, ic)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	out, err := interaction.EncodeResponse(resp)
	if err != nil {
		h.writeError(ctx, w, fmt.Errorf("encoding response: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

func (h *Handler) dispatch(ctx context.Context, ic interaction.Interaction) (interaction.Response, error) {
	switch ic := ic.(type) {
	case *interaction.Ping:
		return interaction.Pong{}, nil

	case *interaction.ApplicationCommand:
		fn, ok := h.commands[ic.Data.Name]
		if !ok {
			return h.unhandled(ctx, "command", ic.Data.Name), nil
		}
		return fn(ctx, ic)

	case *interaction.MessageComponent:
		fn, ok := h.components[ic.Data.CustomID]
		if !ok {
			return h.unhandled(ctx, "component", ic.Data.CustomID), nil
		}
		return fn(ctx, ic)

	case *interaction.Autocomplete:
		fn, ok := h.autocompletes[ic.Data.Name]
		if !ok {
			// suggestion requests degrade to an empty list rather than a
			// user-visible error
			h.logger.Warn("no autocomplete handler", slog.String("command", ic.Data.Name))
			return interaction.RespondWithAutocompleteChoices(), nil
		}
		return fn(ctx, ic)

	case *interaction.ModalSubmit:
		fn, ok := h.modals[ic.Data.CustomID]
		if !ok {
			return h.unhandled(ctx, "modal", ic.Data.CustomID), nil
		}
		return fn(ctx, ic)
	}

	return nil, domain.ErrUnknownVariant("interaction", uint64(ic.InteractionKind()))
}

// unhandled builds the diagnostic message shown when nothing is registered
// for an interaction. The request still succeeds so the user sees an
// explanation instead of Discord's generic failure banner.
func (h *Handler) unhandled(ctx context.Context, what, name string) interaction.Response {
	err := domain.ErrNoHandler(fmt.Sprintf("%s %q", what, name))
	h.logger.Warn("no handler registered", slog.String(what, name))
	server.AddError(ctx, err)

	embed := models.NewEmbed().
		WithTitle("Not wired up yet").
		WithDescription(fmt.Sprintf("Nothing is registered to handle %s `%s`.", what, name)).
		WithColor(fallbackEmbedColor)
	return interaction.ChannelMessageWithSource{
		Data: interaction.MessageCallback{Embeds: []models.Embed{embed}}.Ephemeral(),
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	server.AddError(ctx, err)

	var status int
	var kind string
	var perr *domain.ProtocolError
	if errors.As(err, &perr) {
		status = perr.HTTPStatusCode()
		kind = string(perr.Kind)
	} else {
		// handler failures surface as a client-visible request error
		status = http.StatusBadRequest
		kind = "handler_error"
	}

	h.logger.Error("request failed",
		slog.String("kind", kind),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   kind,
		"message": err.Error(),
	})
}
