package oauth2

// ResponseType represents the OAuth 2.0 response type.
// Determines what is returned from the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType indicates the authorization code flow, the only one this server supports.
	// Example: /oauth/authorize?response_type=code&client_id=...
	CodeResponseType ResponseType = "code"
)

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for an access/refresh token pair.
	// Token request includes: code, client_id, redirect_uri
	AuthorizationCodeGrant GrantType = "authorization_code"

	// RefreshTokenGrant exchanges a refresh token for a brand-new access/refresh token pair.
	// Token request includes: refresh_token, client_id, redirect_uri (optional)
	RefreshTokenGrant GrantType = "refresh_token"
)

// BearerTokenType is the only token_type this server issues
const BearerTokenType = "bearer"
