package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"collecte_service/internal/domain/entities"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the identity trio every downstream check consumes.
type Claims struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	CenterID string `json:"center_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and parses HS256 tokens. It implements
// interfaces.ITokenIssuer.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer() *JWTIssuer {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return &JWTIssuer{secret: []byte(secret), ttl: 12 * time.Hour}
}

func (j *JWTIssuer) IssueToken(u entities.User) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(j.ttl)
	claims := Claims{
		UserID:   u.ID.String(),
		Role:     string(u.Role),
		CenterID: u.CenterID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken validates the signature and expiry and returns the claims.
func (j *JWTIssuer) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
