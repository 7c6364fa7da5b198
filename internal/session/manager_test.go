package session

import (
	"sync"
	"testing"
	"time"
)

func TestIssueThenValidate(t *testing.T) {
	m := NewManager(0)
	tok, err := m.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if tok == "" {
		t.Fatal("Issue returned empty token")
	}
	// 32 random bytes base64url-encoded without padding.
	if len(tok) != 43 {
		t.Fatalf("token length = %d, want 43", len(tok))
	}
	if !m.Validate(tok) {
		t.Fatal("freshly issued token failed validation")
	}
	if got := m.Identity(tok); got != "admin" {
		t.Fatalf("Identity = %q, want admin", got)
	}
}

func TestValidate_UnknownToken(t *testing.T) {
	m := NewManager(0)
	if m.Validate("never-issued") {
		t.Fatal("unknown token validated")
	}
	if m.Validate("") {
		t.Fatal("empty token validated")
	}
}

func TestRevoke(t *testing.T) {
	m := NewManager(0)
	tok, _ := m.Issue("admin")
	m.Revoke(tok)
	if m.Validate(tok) {
		t.Fatal("revoked token still validates")
	}
}

func TestRevoke_UnknownIsNoOp(t *testing.T) {
	m := NewManager(0)
	other, _ := m.Issue("admin")

	m.Revoke("no-such-token") // must not panic or disturb other sessions

	if !m.Validate(other) {
		t.Fatal("unrelated session lost after revoking unknown token")
	}
}

func TestExpiry(t *testing.T) {
	m := NewManager(24 * time.Hour)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	m.now = func() time.Time { return now }

	tok, _ := m.Issue("admin")

	now = base.Add(24*time.Hour - time.Second)
	if !m.Validate(tok) {
		t.Fatal("token invalid just before the 24h mark")
	}

	now = base.Add(24 * time.Hour)
	if m.Validate(tok) {
		t.Fatal("token still valid at the 24h mark")
	}
	if m.Len() != 0 {
		t.Fatalf("expired entry not evicted, table size %d", m.Len())
	}

	// Once expired, always expired.
	if m.Validate(tok) {
		t.Fatal("expired token came back to life")
	}
}

func TestConcurrentIssueDistinctTokens(t *testing.T) {
	m := NewManager(0)

	const n = 64
	tokens := make([]string, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			tok, err := m.Issue("admin")
			if err != nil {
				t.Errorf("Issue: %v", err)
				return
			}
			tokens[i] = tok
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, tok := range tokens {
		if tok == "" {
			t.Fatal("missing token from concurrent issue")
		}
		if _, dup := seen[tok]; dup {
			t.Fatalf("duplicate token issued: %s", tok)
		}
		seen[tok] = struct{}{}
		if !m.Validate(tok) {
			t.Fatalf("concurrently issued token %s failed validation", tok)
		}
	}
}

func TestConcurrentMixedAccess(t *testing.T) {
	m := NewManager(0)
	stable, _ := m.Issue("admin")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, _ := m.Issue("admin")
			m.Validate(tok)
			m.Validate(stable)
			m.Revoke(tok)
		}()
	}
	wg.Wait()

	if !m.Validate(stable) {
		t.Fatal("long-lived session lost during concurrent churn")
	}
}
