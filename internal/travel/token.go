package travel

import (
	"context"
	"sync"
	"time"
)

// tokenExpirySlack is subtracted from the provider-declared lifetime so a
// token is never used right at its expiry boundary.
const tokenExpirySlack = time.Minute

// tokenSource caches the OAuth2 bearer token across requests. Two requests
// racing on an expired token may both refresh it; the token is idempotently
// replaceable so the redundant fetch is harmless.
type tokenSource struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time

	now   func() time.Time
	fetch func(ctx context.Context) (token string, expiresIn int, err error)
}

func newTokenSource(fetch func(ctx context.Context) (string, int, error)) *tokenSource {
	return &tokenSource{now: time.Now, fetch: fetch}
}

// Token returns a valid bearer token, refreshing it when absent or expired.
func (t *tokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && t.now().Before(t.expiresAt) {
		return t.token, nil
	}

	token, expiresIn, err := t.fetch(ctx)
	if err != nil {
		return "", err
	}

	t.token = token
	t.expiresAt = t.now().Add(time.Duration(expiresIn)*time.Second - tokenExpirySlack)
	return t.token, nil
}
