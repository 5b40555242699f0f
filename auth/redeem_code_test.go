package auth

import (
	"context"
	"testing"
	"time"

	autherrors "github.com/jrsteele09/go-stateless-auth-server/internal/errors"
	"github.com/jrsteele09/go-stateless-auth-server/token"
	"github.com/jrsteele09/go-stateless-auth-server/token/usedcodes"
	"github.com/stretchr/testify/require"
)

func TestRedeemCode(t *testing.T) {
	issuer := token.NewIssuer(token.NewHMACSigner("1234"))
	code, err := issuer.IssueAuthorizationCode("upfirst", "http://localhost:8081/process")
	require.NoError(t, err)
	claims, err := issuer.Verify(code, token.UseAuthorizationCode)
	require.NoError(t, err)

	t.Run("second redemption reports already used", func(t *testing.T) {
		as := &AuthorizationService{usedCodes: usedcodes.NewInMemoryRepo()}
		require.NoError(t, as.redeemCode(context.Background(), claims))

		err := as.redeemCode(context.Background(), claims)
		require.ErrorIs(t, err, autherrors.ErrCodeAlreadyUsed)
		require.Contains(t, err.Error(), claims.ID)
	})

	t.Run("no store never reports reuse", func(t *testing.T) {
		as := &AuthorizationService{}
		require.NoError(t, as.redeemCode(context.Background(), claims))
		require.NoError(t, as.redeemCode(context.Background(), claims))
	})

	t.Run("store failure is not reuse", func(t *testing.T) {
		as := &AuthorizationService{usedCodes: failingRepo{}}
		err := as.redeemCode(context.Background(), claims)
		require.Error(t, err)
		require.NotErrorIs(t, err, autherrors.ErrCodeAlreadyUsed)
	})
}

type failingRepo struct{}

func (failingRepo) MarkUsed(context.Context, string, time.Time) (bool, error) {
	return false, context.DeadlineExceeded
}

func (failingRepo) Close() error { return nil }
