package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the self-contained session payload. There is no server-side
// session store; everything a handler needs rides in the token.
type Claims struct {
	UserID      uint     `json:"user_id"`
	Role        string   `json:"role"`
	TeamID      uint     `json:"team_id"`
	IsSocio     bool     `json:"is_socio"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Generate signs a session token carrying identity and authorization claims.
// Expiry is fixed at issue time; there is no refresh mechanism.
func Generate(userID uint, role string, teamID uint, isSocio bool, permissions []string, secret string, expiryHours int) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      userID,
		Role:        role,
		TeamID:      teamID,
		IsSocio:     isSocio,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a session token. It returns nil on ANY
// failure (malformed, bad signature, wrong algorithm, expired) so callers
// can only ever distinguish "authenticated" from "not" - the cause must
// never reach the end user.
func Verify(tokenString, secret string) *Claims {
	if tokenString == "" {
		return nil
	}

	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return nil
	}
	if claims.UserID == 0 {
		return nil
	}
	return claims
}
