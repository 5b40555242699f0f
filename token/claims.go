package token

import "github.com/golang-jwt/jwt/v5"

// Use identifies which role a token plays. It is embedded in the signed claims
// so one kind of token cannot be redeemed as another.
type Use string

const (
	UseAuthorizationCode Use = "code"
	UseAccessToken       Use = "access"
	UseRefreshToken      Use = "refresh"
)

// Claims is the payload carried by every token this server issues. All three
// token kinds share this shape; RedirectURI is only set on authorization codes.
type Claims struct {
	ClientID    string `json:"client_id"`
	RedirectURI string `json:"redirect_uri,omitempty"`
	TokenUse    Use    `json:"token_use"`
	jwt.RegisteredClaims
}
