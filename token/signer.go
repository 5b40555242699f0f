package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	autherrors "github.com/jrsteele09/go-stateless-auth-server/internal/errors"
)

// Signer turns claims into a compact tamper-evident token and back
type Signer interface {
	// Sign stamps iat, exp and jti on the claims and returns the signed token
	Sign(claims Claims, ttl time.Duration) (string, error)

	// Verify checks the signature and expiry and returns the embedded claims
	Verify(rawToken string) (*Claims, error)
}

// HMACSigner implements Signer using symmetric HMAC-SHA256
type HMACSigner struct {
	secret  []byte
	nowFunc func() time.Time
}

var _ Signer = (*HMACSigner)(nil)

type SignerOption func(*HMACSigner)

// WithNowFunc overrides the clock used for iat/exp stamping and expiry checks
func WithNowFunc(now func() time.Time) SignerOption {
	return func(h *HMACSigner) {
		h.nowFunc = now
	}
}

// NewHMACSigner creates a new HMAC signer with the given secret
func NewHMACSigner(secret string, options ...SignerOption) *HMACSigner {
	h := &HMACSigner{
		secret:  []byte(secret),
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

func (h *HMACSigner) Sign(claims Claims, ttl time.Duration) (string, error) {
	now := h.nowFunc()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	claims.ID = uuid.New().String()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signedToken, err := token.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token with HMAC: %w", err)
	}
	return signedToken, nil
}

// Verify returns ErrTokenExpired when the signature is good but now >= exp, and
// ErrInvalidSignature for every other failure (forged, corrupted, wrong secret,
// wrong algorithm, missing exp).
func (h *HMACSigner) Verify(rawToken string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(rawToken, claims, h.getVerificationKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.nowFunc),
	)
	switch {
	case err == nil:
		return claims, nil
	case autherrors.Is(err, jwt.ErrTokenExpired):
		return nil, autherrors.ErrTokenExpired
	default:
		return nil, autherrors.ErrInvalidSignature
	}
}

func (h *HMACSigner) getVerificationKey(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return h.secret, nil
}
