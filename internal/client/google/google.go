// Package google obtains a Google-issued ID token for the
// Google-assisted sign-in path. The user opens the consent URL in a
// browser and pastes the authorization code back into the CLI; the
// exchange yields the raw ID token the backend's google-login endpoint
// expects.
package google

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	oauth2google "golang.org/x/oauth2/google"

	"github.com/blognest/blognest-cli/internal/common"
)

// Identity is the result of a completed exchange: the verified email
// plus the raw ID token forwarded to the backend.
type Identity struct {
	Email    string
	RawToken string
}

// Authenticator handles the Google OAuth 2.0 / OIDC handshake.
type Authenticator struct {
	config   *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewAuthenticator discovers the Google OIDC provider and prepares the
// OAuth config. redirectURL must match the one registered for the
// client; the out-of-band CLI flow uses a loopback address.
func NewAuthenticator(ctx context.Context, clientID, clientSecret, redirectURL string) (*Authenticator, error) {
	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return nil, fmt.Errorf("oidc provider: %w", err)
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     oauth2google.Endpoint,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
	}

	return &Authenticator{
		config:   config,
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// AuthURL generates the consent URL with the given state.
func (g *Authenticator) AuthURL(state string) string {
	return g.config.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
}

// Exchange trades the authorization code for tokens, verifies the ID
// token, and returns the identity.
func (g *Authenticator) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, fmt.Errorf("no id_token in response")
	}

	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("verify id_token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("parse claims: %w", err)
	}

	return &Identity{Email: claims.Email, RawToken: rawIDToken}, nil
}

// GenerateState returns a random state string for the consent URL.
func GenerateState() (string, error) {
	return common.MakeRandHexString(16)
}
