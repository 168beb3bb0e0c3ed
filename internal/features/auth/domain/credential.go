package domain

import (
	"errors"
	"time"
)

// ErrAuthFailure is returned when the identity endpoint is unreachable or rejects the credentials.
var ErrAuthFailure = errors.New("authentication failed")

// Grant is the OAuth2 grant type sent to the token endpoint.
type Grant string

const (
	// GrantPassword authenticates with the primary username and password.
	GrantPassword Grant = "password"
	// GrantRefreshToken renews an access token with the refresh token.
	GrantRefreshToken Grant = "refresh_token"
)

// SessionState is the lifecycle state of the stored credential.
type SessionState int

const (
	// SessionNone means no credential is held or the refresh token has expired.
	SessionNone SessionState = iota
	// SessionActive means the access token is still valid.
	SessionActive
	// SessionAccessExpired means the access token expired but the refresh token is still valid.
	SessionAccessExpired
)

// String returns the state name used in logs.
func (s SessionState) String() string {
	switch s {
	case SessionNone:
		return "no_session"
	case SessionActive:
		return "active"
	case SessionAccessExpired:
		return "access_expired"
	default:
		return "unknown"
	}
}

// GrantRequest carries the form parameters of one token request.
type GrantRequest struct {
	Grant        Grant
	Username     string
	Password     string
	RefreshToken string
}

// TokenResponse is the JSON body returned by the token endpoint.
type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int    `json:"expires_in"`
	RefreshExpiresIn int    `json:"refresh_expires_in"`
}

// Credential is the bearer token pair with its two expiry clocks.
// It is replaced wholesale on every successful authentication.
type Credential struct {
	AccessToken   string
	RefreshToken  string
	AccessExpiry  time.Time
	RefreshExpiry time.Time
}

// NewCredential builds a Credential from a token response received at issuedAt.
// The safety margin is subtracted from both declared lifetimes.
func NewCredential(resp TokenResponse, issuedAt time.Time, margin time.Duration) Credential {
	return Credential{
		AccessToken:   resp.AccessToken,
		RefreshToken:  resp.RefreshToken,
		AccessExpiry:  issuedAt.Add(time.Duration(resp.ExpiresIn)*time.Second - margin),
		RefreshExpiry: issuedAt.Add(time.Duration(resp.RefreshExpiresIn)*time.Second - margin),
	}
}

// State reports the session state at now. The refresh expiry is evaluated first:
// an expired refresh token invalidates the session whatever the access token says.
func (c *Credential) State(now time.Time) SessionState {
	if c == nil || !now.Before(c.RefreshExpiry) {
		return SessionNone
	}
	if !now.Before(c.AccessExpiry) {
		return SessionAccessExpired
	}
	return SessionActive
}
