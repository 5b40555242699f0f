package config

import "time"

const (
	jwtSecretVar   = "JWT_SECRET"
	clientIDVar    = "CLIENT_ID"
	redirectURIVar = "REDIRECT_URI"

	// InsecureDefaultSecret is only suitable for local development
	InsecureDefaultSecret = "insecure-dev-secret-change-me"
)

type OAuthConfig interface {
	GetJWTSecret() string
	GetClientID() string
	GetRedirectURI() string
	GetAuthCodeTimeout() time.Duration
	GetDefaultAccessTokenExpiry() time.Duration
	GetDefaultRefreshTokenExpiry() time.Duration
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetJWTSecret() string {
	return GetEnv(jwtSecretVar, InsecureDefaultSecret)
}

// GetClientID returns the identifier of the single client this server accepts
func (OAuth) GetClientID() string {
	return GetEnv(clientIDVar, "upfirst")
}

// GetRedirectURI returns the single redirect URI this server accepts
func (OAuth) GetRedirectURI() string {
	return GetEnv(redirectURIVar, "http://localhost:8081/process")
}

func (OAuth) GetAuthCodeTimeout() time.Duration {
	return 5 * time.Minute
}

func (OAuth) GetDefaultAccessTokenExpiry() time.Duration {
	return 1 * time.Hour
}

func (OAuth) GetDefaultRefreshTokenExpiry() time.Duration {
	return 30 * 24 * time.Hour // 30 days
}
