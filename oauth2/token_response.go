package oauth2

// TokenResponse represents the response from an OAuth2 token request (RFC 6749 section 5.1).
// Returned from the /oauth/token endpoint for both supported grant types.
type TokenResponse struct {
	// AccessToken is the signed JWT used to access protected resources.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token (3600 by default).
	ExpiresIn int `json:"expires_in"`

	// RefreshToken is a signed JWT used to obtain a new pair with grant_type=refresh_token.
	// Rotates on each use.
	RefreshToken string `json:"refresh_token"`
}

// ErrorResponse is the body returned by the token endpoint on failure (RFC 6749 section 5.2).
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}
