package oauthmodel

import (
	"github.com/jrsteele09/go-stateless-auth-server/oauth2"
)

// AuthorizationParameters holds parameters for the OAuth2 authorization request.
// These are received as query parameters at the /oauth/authorize endpoint.
type AuthorizationParameters struct {
	// ResponseType specifies what the authorization endpoint should return.
	// Required: Yes
	// Example: "code" (only supported value)
	ResponseType oauth2.ResponseType

	// ClientID identifies the application requesting authorization.
	// Required: Yes
	// Validated against: the single configured CLIENT_ID
	ClientID string

	// RedirectURI is where the authorization response will be sent.
	// Required: Yes
	// Security: Must exactly match the configured REDIRECT_URI to prevent open redirects
	RedirectURI string

	// State is an opaque value used by the client to maintain state between request and callback.
	// Required: Recommended (CSRF protection)
	// The server never interprets it, it is echoed back in the redirect when present
	State string
}

// ValidateParametersWithClient validates the authorization parameters against the
// registered client. Checks run in a fixed order and the first failure wins.
func (p *AuthorizationParameters) ValidateParametersWithClient(clientID, redirectURI string) error {
	if p.ResponseType != oauth2.CodeResponseType {
		return ErrUnsupportedResponseType
	}
	if p.ClientID != clientID {
		return ErrInvalidClient
	}
	if p.RedirectURI != redirectURI {
		return ErrInvalidRedirectURI
	}
	return nil
}
