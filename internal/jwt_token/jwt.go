package jwttoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"academy/pkg/domain"
	dErrors "academy/pkg/domain-errors"
)

// CallerClaims are the JWT claims the relay accepts: the subject is the
// caller's hex-encoded signer identity. The engine decides what that identity
// is allowed to do; the token only authenticates it.
type CallerClaims struct {
	Identity string `json:"identity"`
	jwt.RegisteredClaims
}

// Service signs and validates relay bearer tokens.
type Service struct {
	signingKey []byte
	issuer     string
	tokenTTL   time.Duration
}

func New(signingKey string, issuer string, tokenTTL time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		tokenTTL:   tokenTTL,
	}
}

// GenerateToken issues a bearer token for a signer identity.
func (s *Service) GenerateToken(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := CallerClaims{
		Identity: identity.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   identity.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}
	return signed, nil
}

// ValidateToken parses and verifies a bearer token, returning the caller
// identity it carries.
func (s *Service) ValidateToken(tokenString string) (domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &CallerClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Identity{}, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*CallerClaims)
	if !ok || !parsed.Valid {
		return domain.Identity{}, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	identity, err := domain.ParseIdentity(claims.Identity)
	if err != nil {
		return domain.Identity{}, dErrors.New(dErrors.CodeUnauthorized, "token carries no valid identity")
	}
	return identity, nil
}
