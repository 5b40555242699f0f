package token_test

import (
	"testing"
	"time"

	autherrors "github.com/jrsteele09/go-stateless-auth-server/internal/errors"
	"github.com/jrsteele09/go-stateless-auth-server/token"
	"github.com/stretchr/testify/require"
)

func TestIssuer_TokenKinds(t *testing.T) {
	clock := newTestClock()
	signer := token.NewHMACSigner(secretStr, token.WithNowFunc(clock.Now))
	issuer := token.NewIssuer(signer)

	tests := []struct {
		name        string
		issue       func() (string, error)
		use         token.Use
		ttl         time.Duration
		redirectURI string
	}{
		{
			name:        "authorization code",
			issue:       func() (string, error) { return issuer.IssueAuthorizationCode(testClientID, testRedirect) },
			use:         token.UseAuthorizationCode,
			ttl:         5 * time.Minute,
			redirectURI: testRedirect,
		},
		{
			name:  "access token",
			issue: func() (string, error) { return issuer.IssueAccessToken(testClientID) },
			use:   token.UseAccessToken,
			ttl:   time.Hour,
		},
		{
			name:  "refresh token",
			issue: func() (string, error) { return issuer.IssueRefreshToken(testClientID) },
			use:   token.UseRefreshToken,
			ttl:   30 * 24 * time.Hour,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := tc.issue()
			require.NoError(t, err)

			claims, err := issuer.Verify(raw, tc.use)
			require.NoError(t, err)
			require.Equal(t, testClientID, claims.ClientID)
			require.Equal(t, tc.redirectURI, claims.RedirectURI)
			require.Equal(t, tc.ttl, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
		})
	}
}

func TestIssuer_WrongUse(t *testing.T) {
	issuer := token.NewIssuer(token.NewHMACSigner(secretStr))

	accessToken, err := issuer.IssueAccessToken(testClientID)
	require.NoError(t, err)

	_, err = issuer.Verify(accessToken, token.UseRefreshToken)
	require.ErrorIs(t, err, autherrors.ErrWrongTokenUse)

	_, err = issuer.Verify(accessToken, token.UseAuthorizationCode)
	require.ErrorIs(t, err, autherrors.ErrWrongTokenUse)
}

func TestIssuer_IssueTokenPair(t *testing.T) {
	issuer := token.NewIssuer(token.NewHMACSigner(secretStr))

	pair, err := issuer.IssueTokenPair(testClientID)
	require.NoError(t, err)
	require.Equal(t, "bearer", pair.TokenType)
	require.Equal(t, 3600, pair.ExpiresIn)

	_, err = issuer.Verify(pair.AccessToken, token.UseAccessToken)
	require.NoError(t, err)
	_, err = issuer.Verify(pair.RefreshToken, token.UseRefreshToken)
	require.NoError(t, err)
}

func TestIssuer_SameSecondTokensDiffer(t *testing.T) {
	clock := newTestClock()
	issuer := token.NewIssuer(token.NewHMACSigner(secretStr, token.WithNowFunc(clock.Now)))

	first, err := issuer.IssueRefreshToken(testClientID)
	require.NoError(t, err)
	second, err := issuer.IssueRefreshToken(testClientID)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestIssuer_WithTokenExpiry(t *testing.T) {
	clock := newTestClock()
	issuer := token.NewIssuer(
		token.NewHMACSigner(secretStr, token.WithNowFunc(clock.Now)),
		token.WithTokenExpiry(time.Minute, 0, 0),
	)

	code, err := issuer.IssueAuthorizationCode(testClientID, testRedirect)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = issuer.Verify(code, token.UseAuthorizationCode)
	require.ErrorIs(t, err, autherrors.ErrTokenExpired)

	pair, err := issuer.IssueTokenPair(testClientID)
	require.NoError(t, err)
	require.Equal(t, 3600, pair.ExpiresIn)
}
