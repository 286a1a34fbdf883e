package v1handler

import (
	"context"
	"fmt"
	"scanrunner/internal/api/specs/v1specs"
	"scanrunner/internal/config"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/serrors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// CtxKey is the type of context keys set by the security handler.
type CtxKey string

// UserIDKey is the context key under which the authenticated domain.UserID is stored.
const UserIDKey CtxKey = "UserID"

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	PublicKey string
}

// NewSecHandlerOptions constructs a SecHandlerOptions value from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.HTTP.JWTPublicKey}
}

// SecHandler authenticates RS256 bearer tokens whose subject is a user id.
type SecHandler struct {
	parser *jwt.Parser
	keyFn  jwt.Keyfunc
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

// NewSecHandler parses the public key of opts.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
		keyFn: func(*jwt.Token) (any, error) { return key, nil },
	}, nil
}

// HandleBearerAuth verifies the token and returns a context carrying the
// user id of its subject.
func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(t.Token, &claims, s.keyFn); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || uid <= 0 {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(uid)), nil
}

// UserID returns the authenticated user of ctx.
func UserID(ctx context.Context) (domain.UserID, bool) {
	uid, ok := ctx.Value(UserIDKey).(domain.UserID)

	return uid, ok
}
