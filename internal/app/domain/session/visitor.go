package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const visitorIssuer = "youcan-website"

// VisitorClaims carry nothing but a random visitor id. They identify a
// browser for gate scoping and prove nothing about who the visitor is.
type VisitorClaims struct {
	VisitorID string `json:"vid"`
	jwt.RegisteredClaims
}

// VisitorTokens signs and verifies visitor cookies.
type VisitorTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewVisitorTokens(secret string, ttl time.Duration) *VisitorTokens {
	return &VisitorTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of issued tokens.
func (v *VisitorTokens) TTL() time.Duration {
	return v.ttl
}

// Issue creates a new visitor id and its signed token.
func (v *VisitorTokens) Issue() (visitorID, token string, err error) {
	visitorID = uuid.NewString()
	now := v.now()
	claims := VisitorClaims{
		VisitorID: visitorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    visitorIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign visitor token: %w", err)
	}
	return visitorID, token, nil
}

// Parse validates a token and returns its visitor id.
func (v *VisitorTokens) Parse(tokenString string) (string, error) {
	claims := &VisitorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithIssuer(visitorIssuer),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid visitor token")
	}
	if _, err := uuid.Parse(claims.VisitorID); err != nil {
		return "", fmt.Errorf("invalid visitor id: %w", err)
	}
	return claims.VisitorID, nil
}
