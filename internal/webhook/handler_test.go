package webhook

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/composure-bot/composure/internal/auth"
	"github.com/composure-bot/composure/internal/interaction"
)

type fixture struct {
	handler *Handler
	priv    ed25519.PrivateKey
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	verifier, err := auth.NewVerifier(hex.EncodeToString(pub))
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	return &fixture{handler: NewHandler(verifier, logger), priv: priv}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// post sends a correctly signed request through the handler.
func (f *fixture) post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	timestamp := "1682372142"
	sig := ed25519.Sign(f.priv, append([]byte(timestamp), body...))

	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(body))
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(sig))
	req.Header.Set("X-Signature-Timestamp", timestamp)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func envelope(kind uint8, data string) string {
	base := fmt.Sprintf(`"id":"1100173248714518568","application_id":"1052322265397739523","token":"tok","version":1,"type":%d`, kind)
	if data == "" {
		return "{" + base + "}"
	}
	return "{" + base + `,"data":` + data + "}"
}

func TestPingPong(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, envelope(1, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := rec.Body.String(); got != `{"type":1}` {
		t.Errorf("body = %s, want {\"type\":1}", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestMissingSignatureHeaders(t *testing.T) {
	f := newFixture(t)

	for _, drop := range []string{"X-Signature-Ed25519", "X-Signature-Timestamp"} {
		req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(envelope(1, "")))
		keep := "X-Signature-Ed25519"
		if drop == keep {
			keep = "X-Signature-Timestamp"
		}
		req.Header.Set(keep, "00")

		rr := httptest.NewRecorder()
		f.handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("dropped %s: status = %d", drop, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "missing_header") {
			t.Errorf("dropped %s: body = %s", drop, rr.Body)
		}
	}
}

func TestInvalidSignature(t *testing.T) {
	f := newFixture(t)

	body := envelope(1, "")
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(body))
	req.Header.Set("X-Signature-Ed25519", strings.Repeat("00", 64))
	req.Header.Set("X-Signature-Timestamp", "1682372142")

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_signature") {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestSignedGarbageIsRejectedAfterVerification(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, `not json at all`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing_discriminant") {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestUnknownInteractionKind(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, envelope(11, ""))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknown_variant") {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestCommandDispatch(t *testing.T) {
	f := newFixture(t)
	f.handler.Command("ping", func(ctx context.Context, ic *interaction.ApplicationCommand) (interaction.Response, error) {
		return interaction.RespondWithMessage("pong!"), nil
	})

	rec := f.post(t, envelope(2, `{"id":"1052358444704862218","name":"ping","type":1}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := rec.Body.String(); got != `{"type":4,"data":{"content":"pong!"}}` {
		t.Errorf("body = %s", got)
	}
}

func TestUnregisteredCommandGetsDiagnosticEmbed(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, envelope(2, `{"id":"1","name":"missing","type":1}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var resp struct {
		Type uint8 `json:"type"`
		Data struct {
			Flags  uint64 `json:"flags"`
			Embeds []struct {
				Description string `json:"description"`
				Color       uint32 `json:"color"`
			} `json:"embeds"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Type != 4 || len(resp.Data.Embeds) != 1 {
		t.Fatalf("unexpected response: %s", rec.Body)
	}
	if resp.Data.Embeds[0].Color != 0xF04747 {
		t.Errorf("color = %#x", resp.Data.Embeds[0].Color)
	}
	if !strings.Contains(resp.Data.Embeds[0].Description, "missing") {
		t.Errorf("description = %q", resp.Data.Embeds[0].Description)
	}
	if resp.Data.Flags&(1<<6) == 0 {
		t.Error("diagnostic message is not ephemeral")
	}
}

func TestHandlerErrorBecomes400(t *testing.T) {
	f := newFixture(t)
	f.handler.Command("boom", func(ctx context.Context, ic *interaction.ApplicationCommand) (interaction.Response, error) {
		return nil, errors.New("upstream exploded")
	})

	rec := f.post(t, envelope(2, `{"id":"1","name":"boom","type":1}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "handler_error") {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestComponentDispatchByCustomID(t *testing.T) {
	f := newFixture(t)
	f.handler.Component("color_pick", func(ctx context.Context, ic *interaction.MessageComponent) (interaction.Response, error) {
		if len(ic.Data.Values) != 1 {
			t.Errorf("values = %+v", ic.Data.Values)
		}
		return interaction.DeferredUpdateMessage{}, nil
	})

	rec := f.post(t, envelope(3, `{"custom_id":"color_pick","component_type":3,"values":[{"label":"Red","value":"red"}]}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := rec.Body.String(); got != `{"type":6}` {
		t.Errorf("body = %s", got)
	}
}

func TestAutocompleteWithoutHandlerReturnsEmptyChoices(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, envelope(4, `{"id":"1","name":"search","type":1,"options":[{"type":3,"name":"q","value":"pa","focused":true}]}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := rec.Body.String(); got != `{"type":8,"data":{"choices":[]}}` {
		t.Errorf("body = %s", got)
	}
}

func TestModalDispatch(t *testing.T) {
	f := newFixture(t)
	f.handler.Modal("feedback", func(ctx context.Context, ic *interaction.ModalSubmit) (interaction.Response, error) {
		note, _ := ic.Data.TextValue("note")
		return interaction.RespondWithMessage("got: " + note), nil
	})

	rec := f.post(t, envelope(5, `{"custom_id":"feedback","components":[{"type":1,"components":[{"type":4,"custom_id":"note","style":2,"label":"Note","value":"hi"}]}]}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := rec.Body.String(); got != `{"type":4,"data":{"content":"got: hi"}}` {
		t.Errorf("body = %s", got)
	}
}
