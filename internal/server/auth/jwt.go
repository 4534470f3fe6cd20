// Package auth issues and verifies session tokens, extracts the
// authenticated identity from inbound requests and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bookings/internal/common"
	"github.com/dmitrijs2005/bookings/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the lifetime of every issued token.
const TokenValidity = time.Hour

// Claims are the identity attributes carried by a session token. They are a
// snapshot of the principal at issuance time and are never stored.
type Claims struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"admin"`
	UserName string `json:"username"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 tokens with a process-wide secret.
// It is immutable after construction and safe for concurrent use.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// IssuerOption customises an Issuer.
type IssuerOption func(*Issuer)

// WithClock overrides the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer returns an Issuer for the given secret. An empty secret is rejected.
func NewIssuer(secret []byte, opts ...IssuerOption) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty token secret")
	}
	i := &Issuer{secret: append([]byte(nil), secret...), now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Issue mints a token for u expiring TokenValidity after now.
func (i *Issuer) Issue(u *models.User) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   u.ID,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		UserName: u.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Parse verifies signature and expiry and returns the decoded claims.
// Expired tokens yield common.ErrTokenExpired; anything else that fails
// verification wraps common.ErrInvalidToken.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
