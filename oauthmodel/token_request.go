package oauthmodel

import "github.com/jrsteele09/go-stateless-auth-server/oauth2"

// TokenRequest holds parameters for the OAuth2 token request.
// This represents the form body sent to the /oauth/token endpoint.
type TokenRequest struct {
	// GrantType selects the flow: authorization_code or refresh_token.
	GrantType oauth2.GrantType

	// ClientID identifies the OAuth2 client making the request.
	// Required: Yes (for all grant types)
	ClientID string

	// RedirectURI must match the redirect_uri the code was issued for.
	// Required: Yes for authorization_code, optional for refresh_token
	RedirectURI string

	// Code is the authorization code received from the authorization endpoint.
	// Required: Yes (only for authorization_code grant)
	Code string

	// RefreshToken is used to obtain a new token pair without re-authentication.
	// Required: Yes (only for refresh_token grant)
	// Behavior: Rotated, a brand-new refresh token is issued on every use
	RefreshToken string
}
