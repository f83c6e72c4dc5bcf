package security

import (
	"errors"
	"time"

	"memo_api/internal/common"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT issues and verifies HS256 bearer tokens carrying the username as the
// subject claim. It is stateless: a token is a pure function of its inputs,
// the current time and the signing key.
type JWT struct {
	auth *jwtauth.JWTAuth
}

func NewJWT(key []byte) *JWT {
	return &JWT{auth: jwtauth.New("HS256", key, nil)}
}

// Issue signs a token for the given subject expiring after ttl.
func (j *JWT) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	_, tokenString, err := j.auth.Encode(claims)
	return tokenString, err
}

// Verify checks the signature first, then the expiry, and returns the subject.
// The ordering matters: a forged token must be rejected as invalid no matter
// what expiry it claims. Expiry is exclusive, so a token issued with ttl=0 is
// already expired at its creation instant.
func (j *JWT) Verify(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(j.auth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Expiration().After(time.Now()) {
		return "", common.ErrTokenExpired
	}

	subject := token.Subject()
	if subject == "" {
		return "", common.ErrInvalidToken
	}
	return subject, nil
}
