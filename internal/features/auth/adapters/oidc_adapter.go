package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"freight-emissions/internal/core/config"
	"freight-emissions/internal/features/auth/domain"

	"golang.org/x/oauth2"
)

// OIDCAdapter implements the IdentityProvider interface against an OpenID Connect token endpoint.
type OIDCAdapter struct {
	// client is the HTTP client used for token requests.
	client *http.Client
	// config holds the endpoint and client credentials.
	config config.NTMConfig
}

// NewOIDCAdapter creates a new instance of OIDCAdapter.
func NewOIDCAdapter(client *http.Client, cfg config.NTMConfig) *OIDCAdapter {
	return &OIDCAdapter{
		client: client,
		config: cfg,
	}
}

// Authenticate exchanges the grant at the token endpoint and returns the token pair.
func (a *OIDCAdapter) Authenticate(ctx context.Context, grant domain.GrantRequest) (*domain.TokenResponse, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.client)
	oauthConfig := a.oauthConfig()

	var (
		token *oauth2.Token
		err   error
	)
	switch grant.Grant {
	case domain.GrantPassword:
		token, err = oauthConfig.PasswordCredentialsToken(ctx, grant.Username, grant.Password)
	case domain.GrantRefreshToken:
		token, err = oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: grant.RefreshToken}).Token()
	default:
		return nil, fmt.Errorf("%w: unsupported grant type %q", domain.ErrAuthFailure, grant.Grant)
	}

	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, fmt.Errorf("%w: token endpoint returned status %d", domain.ErrAuthFailure, retrieveErr.Response.StatusCode)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthFailure, err)
	}

	return &domain.TokenResponse{
		AccessToken:      token.AccessToken,
		RefreshToken:     token.RefreshToken,
		ExpiresIn:        extraSeconds(token, "expires_in"),
		RefreshExpiresIn: extraSeconds(token, "refresh_expires_in"),
	}, nil
}

// oauthConfig describes the token endpoint with client credentials sent as Basic auth.
func (a *OIDCAdapter) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     a.config.ClientID,
		ClientSecret: a.config.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  strings.TrimSuffix(a.config.AuthURL, "/") + a.config.TokenPath,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

// extraSeconds reads a lifetime in seconds from the raw token response.
func extraSeconds(token *oauth2.Token, key string) int {
	switch v := token.Extra(key).(type) {
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// Logout ends the session held by refreshToken.
func (a *OIDCAdapter) Logout(ctx context.Context, refreshToken string) error {
	form := url.Values{}
	form.Set("refresh_token", refreshToken)

	resp, err := a.post(ctx, a.config.LogoutPath, form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: logout endpoint returned status %d", domain.ErrAuthFailure, resp.StatusCode)
	}
	return nil
}

// post sends a form-encoded logout request authorized with the client credentials.
func (a *OIDCAdapter) post(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	endpoint := strings.TrimSuffix(a.config.AuthURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrAuthFailure, err)
	}

	authVal := make([]byte, 0, len(a.config.ClientID)+len(a.config.ClientSecret)+1)
	authVal = fmt.Appendf(authVal, "%s:%s", a.config.ClientID, a.config.ClientSecret)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString(authVal))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", domain.ErrAuthFailure, err)
	}
	return resp, nil
}
