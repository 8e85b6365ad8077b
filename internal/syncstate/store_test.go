package syncstate

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/composure-bot/composure/internal/command"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDigestRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	got, err := s.Digest(ctx, GlobalScope, "ping")
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if got != "" {
		t.Fatalf("unexpected digest for unseen command: %q", got)
	}

	if err := s.MarkPushed(ctx, GlobalScope, "ping", "abc123"); err != nil {
		t.Fatalf("MarkPushed: %v", err)
	}
	got, err = s.Digest(ctx, GlobalScope, "ping")
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if got != "abc123" {
		t.Errorf("digest = %q", got)
	}

	// upsert replaces
	if err := s.MarkPushed(ctx, GlobalScope, "ping", "def456"); err != nil {
		t.Fatalf("MarkPushed: %v", err)
	}
	got, _ = s.Digest(ctx, GlobalScope, "ping")
	if got != "def456" {
		t.Errorf("digest after upsert = %q", got)
	}
}

func TestScopesAreIndependent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.MarkPushed(ctx, "798662131062931547", "ping", "abc"); err != nil {
		t.Fatalf("MarkPushed: %v", err)
	}
	got, err := s.Digest(ctx, GlobalScope, "ping")
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if got != "" {
		t.Errorf("guild digest leaked into global scope: %q", got)
	}
}

func TestForget(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, name := range []string{"ping", "admin", "old"} {
		if err := s.MarkPushed(ctx, GlobalScope, name, "d"); err != nil {
			t.Fatalf("MarkPushed(%s): %v", name, err)
		}
	}

	if err := s.Forget(ctx, GlobalScope, []string{"ping", "admin"}); err != nil {
		t.Fatalf("Forget: %v", err)
	}

	if got, _ := s.Digest(ctx, GlobalScope, "old"); got != "" {
		t.Errorf("stale command not forgotten: %q", got)
	}
	if got, _ := s.Digest(ctx, GlobalScope, "ping"); got == "" {
		t.Error("kept command was forgotten")
	}
}

func TestFingerprintStability(t *testing.T) {
	build := func() command.Command {
		return command.NewBuilder().
			ChatInput("ping", "Check the bot is alive", nil).
			Build()[0]
	}

	a, err := Fingerprint(build())
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	b, _ := Fingerprint(build())
	if a != b {
		t.Errorf("identical definitions fingerprint differently: %s != %s", a, b)
	}

	changed := command.NewBuilder().ChatInput("ping", "Something else", nil).Build()[0]
	c, _ := Fingerprint(changed)
	if a == c {
		t.Error("changed definition has the same fingerprint")
	}
}
