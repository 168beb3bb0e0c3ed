package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/core/metrics"
	"freight-emissions/internal/features/auth/domain"
	"freight-emissions/internal/features/auth/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Credentials are the primary account used for the password grant.
type Credentials struct {
	Username string
	Password string
}

// Option configures a TokenStore.
type Option func(*TokenStore)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *TokenStore) {
		s.now = now
	}
}

// TokenStore keeps a bearer token valid across many sequential calls.
//
// State machine:
//
//	no_session     --password grant-->      active
//	access_expired --refresh grant-->       active
//	access_expired --refresh rejected, password grant--> active
//	active         --(no call)-->           active
//
// Concurrent callers that observe an expired session share one renewal.
type TokenStore struct {
	provider    ports.IdentityProvider
	credentials Credentials
	margin      time.Duration
	now         func() time.Time
	logger      *zap.Logger

	mu         sync.RWMutex
	credential *domain.Credential
	renewals   singleflight.Group
}

// NewTokenStore creates a TokenStore. margin is subtracted from every token lifetime.
func NewTokenStore(provider ports.IdentityProvider, credentials Credentials, margin time.Duration, opts ...Option) *TokenStore {
	s := &TokenStore{
		provider:    provider,
		credentials: credentials,
		margin:      margin,
		now:         time.Now,
		logger:      logger.Named("auth"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current session state.
func (s *TokenStore) State() domain.SessionState {
	return s.current().State(s.now())
}

// Token returns a valid access token, renewing the session when needed.
// Failures wrap domain.ErrAuthFailure and leave the stored credential untouched.
// A caller whose ctx is done stops waiting and gets ctx.Err().
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	if cred := s.current(); cred.State(s.now()) == domain.SessionActive {
		return cred.AccessToken, nil
	}

	// The shared renewal outlives any single caller's cancellation.
	renewal := s.renewals.DoChan("token", func() (interface{}, error) {
		return s.renew(context.WithoutCancel(ctx))
	})

	select {
	case res := <-renewal:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// EndSession logs the current session out and forgets the credential.
// It is a no-op when no session was ever opened.
func (s *TokenStore) EndSession(ctx context.Context) error {
	cred := s.current()
	if cred == nil {
		return nil
	}

	if err := s.provider.Logout(ctx, cred.RefreshToken); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.mu.Lock()
	s.credential = nil
	s.mu.Unlock()

	s.logger.Debug("Session ended")
	return nil
}

func (s *TokenStore) current() *domain.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// renew runs one transition of the state machine.
func (s *TokenStore) renew(ctx context.Context) (string, error) {
	cred := s.current()
	state := cred.State(s.now())

	switch state {
	case domain.SessionActive:
		// renewed by a concurrent caller
		return cred.AccessToken, nil
	case domain.SessionAccessExpired:
		s.logger.Debug("Using refresh token to renew expired access token", zap.Stringer("state", state))
		token, err := s.grant(ctx, domain.GrantRequest{
			Grant:        domain.GrantRefreshToken,
			RefreshToken: cred.RefreshToken,
		})
		if err == nil {
			return token, nil
		}
		s.logger.Warn("Refresh grant failed, re-authenticating with credentials", zap.Error(err))
	default:
		s.logger.Debug("Using credentials to open a new session", zap.Stringer("state", state))
	}

	return s.grant(ctx, domain.GrantRequest{
		Grant:    domain.GrantPassword,
		Username: s.credentials.Username,
		Password: s.credentials.Password,
	})
}

// grant calls the identity provider and replaces the stored credential on success.
func (s *TokenStore) grant(ctx context.Context, req domain.GrantRequest) (string, error) {
	issuedAt := s.now()

	resp, err := s.provider.Authenticate(ctx, req)
	metrics.TokenGrants.WithLabelValues(string(req.Grant), metrics.Outcome(err)).Inc()
	if err != nil {
		if !errors.Is(err, domain.ErrAuthFailure) {
			err = fmt.Errorf("%w: %v", domain.ErrAuthFailure, err)
		}
		return "", fmt.Errorf("%s grant: %w", req.Grant, err)
	}

	cred := domain.NewCredential(*resp, issuedAt, s.margin)

	s.mu.Lock()
	s.credential = &cred
	s.mu.Unlock()

	s.logger.Debug("Session renewed",
		zap.String("grant", string(req.Grant)),
		zap.Time("access_expiry", cred.AccessExpiry),
		zap.Time("refresh_expiry", cred.RefreshExpiry),
	)

	return cred.AccessToken, nil
}
