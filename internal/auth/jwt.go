package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ==================== Claims ====================

// UserClaims is the subset of the provider's access-token claims we read.
type UserClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// ==================== JWTVerifier ====================

// JWTVerifier validates provider-issued HS256 tokens locally with the shared
// project secret, avoiding a round trip per request.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) GetUser(_ context.Context, token string) (*Caller, error) {
	claims, err := v.parse(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, ErrUnauthorized
	}
	return &Caller{ID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}

func (v *JWTVerifier) parse(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// IssueToken signs a token for caller valid for ttl. The provider issues the
// real tokens; this is used by local tooling and tests.
func (v *JWTVerifier) IssueToken(caller Caller, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		Email: caller.Email,
		Role:  caller.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
