package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	autherrors "github.com/jrsteele09/go-stateless-auth-server/internal/errors"
	"github.com/jrsteele09/go-stateless-auth-server/oauth2"
	"github.com/jrsteele09/go-stateless-auth-server/oauthmodel"
	"github.com/jrsteele09/go-stateless-auth-server/token"
	"github.com/jrsteele09/go-stateless-auth-server/token/usedcodes"
	"github.com/rs/zerolog/log"
)

// AuthorizationRedirect is called with the fully built location the user-agent
// must be redirected to after a successful authorization request: the client's
// redirect URI carrying the code and, when supplied, the state.
type AuthorizationRedirect func(location string)

// Client is the single OAuth client this server accepts
type Client struct {
	ID          string
	RedirectURI string
}

// AuthorizationService implements the authorize and token endpoints on top of
// the stateless token issuer.
type AuthorizationService struct {
	client    Client
	issuer    *token.Issuer
	validator *Validator
	usedCodes usedcodes.Repo // nil disables single-use enforcement
}

// AuthorizationServiceOption defines a function type to modify the AuthorizationService instance.
type AuthorizationServiceOption func(*AuthorizationService)

// WithUsedCodes makes authorization codes single use by remembering redeemed
// codes in repo until they expire
func WithUsedCodes(repo usedcodes.Repo) AuthorizationServiceOption {
	return func(as *AuthorizationService) {
		as.usedCodes = repo
	}
}

// NewAuthorizationService initializes a new AuthorizationService with required dependencies.
func NewAuthorizationService(client Client, issuer *token.Issuer, options ...AuthorizationServiceOption) (*AuthorizationService, error) {
	if client.ID == "" {
		return nil, errors.New("[NewAuthorizationService] client ID is required")
	}
	if _, err := url.ParseRequestURI(client.RedirectURI); err != nil {
		return nil, fmt.Errorf("[NewAuthorizationService] invalid redirect URI: %w", err)
	}
	if issuer == nil {
		return nil, errors.New("[NewAuthorizationService] issuer is required")
	}

	authService := &AuthorizationService{
		client:    client,
		issuer:    issuer,
		validator: NewValidator(client.RedirectURI),
	}
	for _, opt := range options {
		opt(authService)
	}
	return authService, nil
}

// Authorize validates an authorization request and, on success, issues a code
// bound to the client and redirect URI and hands the callback location to redirect.
func (as *AuthorizationService) Authorize(parameters *oauthmodel.AuthorizationParameters, redirect AuthorizationRedirect) error {
	if err := parameters.ValidateParametersWithClient(as.client.ID, as.client.RedirectURI); err != nil {
		return err
	}

	code, err := as.issuer.IssueAuthorizationCode(parameters.ClientID, parameters.RedirectURI)
	if err != nil {
		return fmt.Errorf("[Authorize] IssueAuthorizationCode: %w", err)
	}

	location, err := callbackLocation(parameters.RedirectURI, code, parameters.State)
	if err != nil {
		return err
	}
	redirect(location)
	return nil
}

// Token redeems an authorization code or a refresh token for a fresh
// access/refresh token pair.
func (as *AuthorizationService) Token(ctx context.Context, req oauthmodel.TokenRequest) (*oauth2.TokenResponse, error) {
	switch req.GrantType {
	case oauth2.AuthorizationCodeGrant:
		return as.exchangeAuthorizationCode(ctx, req)
	case oauth2.RefreshTokenGrant:
		return as.refresh(req)
	default:
		return nil, oauthmodel.ErrUnsupportedGrantType
	}
}

func (as *AuthorizationService) exchangeAuthorizationCode(ctx context.Context, req oauthmodel.TokenRequest) (*oauth2.TokenResponse, error) {
	claims, err := as.issuer.Verify(req.Code, token.UseAuthorizationCode)
	if err != nil {
		log.Debug().Err(err).Msg("authorization code rejected")
		return nil, oauthmodel.ErrInvalidCode
	}

	if err := as.validator.ValidateAuthorizationCodeGrant(claims, req); err != nil {
		return nil, err
	}

	if err := as.redeemCode(ctx, claims); err != nil {
		if autherrors.Is(err, autherrors.ErrCodeAlreadyUsed) {
			log.Warn().Err(err).Str("client_id", claims.ClientID).Msg("authorization code replay")
			return nil, oauthmodel.ErrInvalidCode
		}
		return nil, fmt.Errorf("[Token] %w", err)
	}

	tokens, err := as.issuer.IssueTokenPair(claims.ClientID)
	if err != nil {
		return nil, fmt.Errorf("[Token] authorization_code: %w", err)
	}
	return tokens, nil
}

// redeemCode spends the code, returning ErrCodeAlreadyUsed if it was spent before.
// Without a used-code store codes can be redeemed until they expire.
func (as *AuthorizationService) redeemCode(ctx context.Context, claims *token.Claims) error {
	if as.usedCodes == nil {
		return nil
	}
	firstUse, err := as.usedCodes.MarkUsed(ctx, claims.ID, claims.ExpiresAt.Time)
	if err != nil {
		return autherrors.Wrapf(err, "MarkUsed")
	}
	if !firstUse {
		return autherrors.Wrapf(autherrors.ErrCodeAlreadyUsed, "code %s", claims.ID)
	}
	return nil
}

func (as *AuthorizationService) refresh(req oauthmodel.TokenRequest) (*oauth2.TokenResponse, error) {
	claims, err := as.issuer.Verify(req.RefreshToken, token.UseRefreshToken)
	if err != nil {
		log.Debug().Err(err).Msg("refresh token rejected")
		return nil, oauthmodel.ErrInvalidRefreshToken
	}

	if err := as.validator.ValidateRefreshTokenGrant(claims, req); err != nil {
		return nil, err
	}

	tokens, err := as.issuer.IssueTokenPair(claims.ClientID)
	if err != nil {
		return nil, fmt.Errorf("[Token] refresh_token: %w", err)
	}
	return tokens, nil
}

// callbackLocation appends code and the optional state to the redirect URI,
// keeping any query parameters the URI already carries.
func callbackLocation(redirectURI, code, state string) (string, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return "", oauthmodel.ErrInvalidRedirectURI
	}

	q := u.Query()
	q.Set("code", code)
	if state != "" {
		q.Set("state", state)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
