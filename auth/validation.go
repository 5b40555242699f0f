package auth

import (
	"github.com/jrsteele09/go-stateless-auth-server/oauthmodel"
	"github.com/jrsteele09/go-stateless-auth-server/token"
)

// Validator checks the claims of a verified code or refresh token against the
// token request that redeemed it.
type Validator struct {
	redirectURI string
}

// NewValidator creates a Validator for the single configured redirect URI
func NewValidator(redirectURI string) *Validator {
	return &Validator{redirectURI: redirectURI}
}

// ValidateAuthorizationCodeGrant requires both the client and the redirect URI
// the code was issued for to match the request.
func (v *Validator) ValidateAuthorizationCodeGrant(claims *token.Claims, req oauthmodel.TokenRequest) error {
	if claims.ClientID != req.ClientID || claims.RedirectURI != req.RedirectURI {
		return oauthmodel.ErrInvalidClient
	}
	return nil
}

// ValidateRefreshTokenGrant requires the client to match. Refresh tokens carry
// no redirect URI, so a redirect_uri on the request is optional but, when sent,
// must be the configured one. This is looser than the code grant, which needs
// both to match, because refresh requests do not normally send redirect_uri.
func (v *Validator) ValidateRefreshTokenGrant(claims *token.Claims, req oauthmodel.TokenRequest) error {
	if claims.ClientID != req.ClientID {
		return oauthmodel.ErrInvalidClient
	}
	if req.RedirectURI != "" && req.RedirectURI != v.redirectURI {
		return oauthmodel.ErrInvalidClient
	}
	return nil
}
