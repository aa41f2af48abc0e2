package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/blognest/blognest-cli/internal/client/google"
)

// googleAuth is the slice of the Google authenticator the command needs.
type googleAuth interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*google.Identity, error)
}

// newAuthenticator and generateState are test seams over the real
// provider handshake.
var newAuthenticator = func(ctx context.Context, clientID, clientSecret, redirectURL string) (googleAuth, error) {
	return google.NewAuthenticator(ctx, clientID, clientSecret, redirectURL)
}
var generateState = google.GenerateState

// Google runs the browser-assisted sign-in: print the consent URL, read
// the pasted authorization code, exchange it for an ID token, and hand
// the token to the auth flow. The flow continues with the usual 6-digit
// verification step.
func (a *App) Google(ctx context.Context) error {
	if a.config.GoogleClientID == "" {
		fmt.Println("Google sign-in is not configured.")
		return nil
	}

	auth, err := newAuthenticator(ctx, a.config.GoogleClientID, a.config.GoogleClientSecret, a.config.GoogleRedirectURL)
	if err != nil {
		fmt.Println("Google sign-in failed:", err)
		return err
	}

	state, err := generateState()
	if err != nil {
		return err
	}

	fmt.Println("Open this URL in your browser and approve access:")
	fmt.Println(auth.AuthURL(state))

	code, err := getSimpleText(a.reader, "Paste the authorization code", os.Stdout)
	if err != nil {
		return err
	}

	id, err := auth.Exchange(ctx, code)
	if err != nil {
		fmt.Println("Google sign-in failed:", err)
		return err
	}

	a.flow.SubmitGoogle(ctx, id.Email, id.RawToken)
	a.report()

	return a.verifyLoop(ctx)
}
