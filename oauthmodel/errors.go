package oauthmodel

// Error is an OAuth failure with a stable machine readable code (the "error"
// field of a token endpoint response) and a human readable message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// Authorize-time parameter errors
	ErrUnsupportedResponseType = &Error{Code: "unsupported_response_type", Message: "unsupported response type"}
	ErrInvalidClient           = &Error{Code: "invalid_client", Message: "invalid client"}
	ErrInvalidRedirectURI      = &Error{Code: "invalid_redirect_uri", Message: "invalid or no redirect uri"}

	// Token-time errors
	ErrInvalidCode          = &Error{Code: "invalid_code", Message: "invalid authorization code"}
	ErrInvalidRefreshToken  = &Error{Code: "invalid_refresh_token", Message: "invalid refresh token"}
	ErrUnsupportedGrantType = &Error{Code: "unsupported_grant_type", Message: "unsupported grant type"}
)
