package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"event-composer/internal/clock"
)

// TokenSource supplies the current bearer token for the events API, or
// reports that none is available.
type TokenSource interface {
	AccessToken() (string, bool)
}

// StaticTokenProvider returns a fixed token, typically loaded from config
type StaticTokenProvider struct {
	Token string
}

// AccessToken implements the TokenSource interface
func (p StaticTokenProvider) AccessToken() (string, bool) {
	return p.Token, p.Token != ""
}

// EnvTokenProvider reads the token from an environment variable on every
// call, so a refreshed token is picked up without restarting.
type EnvTokenProvider struct {
	Key string
}

// AccessToken implements the TokenSource interface
func (p EnvTokenProvider) AccessToken() (string, bool) {
	token := os.Getenv(p.Key)
	return token, token != ""
}

// ExpiryAwareProvider wraps a source and treats an expired JWT as absent, so
// a submission aborts locally instead of bouncing off the backend with a
// stale token. Tokens that do not parse as JWTs, or carry no exp claim, pass
// through untouched; signature verification stays the backend's job.
type ExpiryAwareProvider struct {
	Source TokenSource
	Clock  clock.Clock
	Leeway time.Duration
}

// AccessToken implements the TokenSource interface
func (p ExpiryAwareProvider) AccessToken() (string, bool) {
	token, ok := p.Source.AccessToken()
	if !ok {
		return "", false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return token, true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return token, true
	}

	now := time.Now().UTC()
	if p.Clock != nil {
		now = p.Clock.Now()
	}
	if now.After(exp.Time.Add(p.Leeway)) {
		return "", false
	}
	return token, true
}
