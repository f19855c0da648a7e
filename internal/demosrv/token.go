package demosrv

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

const tokenIssuer = "rollcall-demo"

// claims carries the identity inside a demo bearer token.
type claims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	SchoolID string `json:"schoolId,omitempty"`
	jwt.RegisteredClaims
}

// issueToken signs an HS256 token for the given user, valid for 24h.
func issueToken(secret string, user domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email:    user.Email,
		Name:     user.Name,
		Role:     string(user.Role),
		SchoolID: user.SchoolID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	})
	return token.SignedString([]byte(secret))
}

// parseToken verifies the signature and issuer and rebuilds the user.
func parseToken(secret, raw string) (domain.User, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return domain.User{}, err
	}
	if !token.Valid {
		return domain.User{}, fmt.Errorf("invalid token")
	}
	return domain.User{
		ID:       c.Subject,
		Email:    c.Email,
		Name:     c.Name,
		Role:     domain.Role(c.Role),
		SchoolID: c.SchoolID,
	}, nil
}
