package auth

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/bookings/internal/common"
	"google.golang.org/grpc/metadata"
)

type ctxKey struct{}

// ContextWithClaims stores verified claims in ctx.
func ContextWithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// ClaimsFromContext returns the claims stored by ContextWithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok && c != nil
}

// Extractor turns the bearer token of an inbound gRPC request into claims.
type Extractor struct {
	issuer *Issuer
}

func NewExtractor(issuer *Issuer) *Extractor {
	return &Extractor{issuer: issuer}
}

// Extract reads "authorization: Bearer <token>" from the incoming metadata
// and verifies it. Every failure is a common.KindUnauthenticated error.
func (e *Extractor) Extract(ctx context.Context) (*Claims, error) {
	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AuthorizationHeaderName); len(values) > 0 {
			header = values[0]
		}
	}
	if header == "" {
		return nil, common.Unauthenticated("authorization header must be provided", nil)
	}

	token, found := strings.CutPrefix(header, common.BearerPrefix)
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return nil, common.Unauthenticated("authentication token must be 'Bearer [token]'", nil)
	}

	claims, err := e.issuer.Parse(token)
	if err != nil {
		return nil, common.Unauthenticated("invalid/expired token", err)
	}

	return claims, nil
}
