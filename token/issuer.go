package token

import (
	"fmt"
	"time"

	autherrors "github.com/jrsteele09/go-stateless-auth-server/internal/errors"
	"github.com/jrsteele09/go-stateless-auth-server/oauth2"
)

const (
	DefaultAuthCodeExpiry     = 5 * time.Minute
	DefaultAccessTokenExpiry  = time.Hour
	DefaultRefreshTokenExpiry = 30 * 24 * time.Hour
)

// Issuer mints the three token kinds. Nothing is stored: every token is
// self-contained and valid until its exp passes.
type Issuer struct {
	signer             Signer
	authCodeExpiry     time.Duration
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
}

type IssuerOption func(*Issuer)

// WithTokenExpiry overrides the lifetimes; zero values keep the defaults
func WithTokenExpiry(authCodeExpiry, accessTokenExpiry, refreshTokenExpiry time.Duration) IssuerOption {
	return func(i *Issuer) {
		if authCodeExpiry > 0 {
			i.authCodeExpiry = authCodeExpiry
		}
		if accessTokenExpiry > 0 {
			i.accessTokenExpiry = accessTokenExpiry
		}
		if refreshTokenExpiry > 0 {
			i.refreshTokenExpiry = refreshTokenExpiry
		}
	}
}

func NewIssuer(signer Signer, options ...IssuerOption) *Issuer {
	i := &Issuer{
		signer:             signer,
		authCodeExpiry:     DefaultAuthCodeExpiry,
		accessTokenExpiry:  DefaultAccessTokenExpiry,
		refreshTokenExpiry: DefaultRefreshTokenExpiry,
	}
	for _, opt := range options {
		opt(i)
	}
	return i
}

// IssueAuthorizationCode creates a short-lived code bound to the client and redirect URI
func (i *Issuer) IssueAuthorizationCode(clientID, redirectURI string) (string, error) {
	return i.signer.Sign(Claims{
		ClientID:    clientID,
		RedirectURI: redirectURI,
		TokenUse:    UseAuthorizationCode,
	}, i.authCodeExpiry)
}

func (i *Issuer) IssueAccessToken(clientID string) (string, error) {
	return i.signer.Sign(Claims{
		ClientID: clientID,
		TokenUse: UseAccessToken,
	}, i.accessTokenExpiry)
}

func (i *Issuer) IssueRefreshToken(clientID string) (string, error) {
	return i.signer.Sign(Claims{
		ClientID: clientID,
		TokenUse: UseRefreshToken,
	}, i.refreshTokenExpiry)
}

// IssueTokenPair mints a fresh access token and a fresh refresh token
func (i *Issuer) IssueTokenPair(clientID string) (*oauth2.TokenResponse, error) {
	accessToken, err := i.IssueAccessToken(clientID)
	if err != nil {
		return nil, fmt.Errorf("[IssueTokenPair] access token: %w", err)
	}
	refreshToken, err := i.IssueRefreshToken(clientID)
	if err != nil {
		return nil, fmt.Errorf("[IssueTokenPair] refresh token: %w", err)
	}

	return &oauth2.TokenResponse{
		AccessToken:  accessToken,
		TokenType:    oauth2.BearerTokenType,
		ExpiresIn:    int(i.accessTokenExpiry.Seconds()),
		RefreshToken: refreshToken,
	}, nil
}

// Verify checks a token and that it was minted for the expected use
func (i *Issuer) Verify(rawToken string, use Use) (*Claims, error) {
	claims, err := i.signer.Verify(rawToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenUse != use {
		return nil, autherrors.ErrWrongTokenUse
	}
	return claims, nil
}
