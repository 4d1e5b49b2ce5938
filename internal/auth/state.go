package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// stateTTL bounds how long a login attempt may take between the redirect to
// Google and the callback.
const stateTTL = 10 * time.Minute

// StateSigner issues and verifies the OAuth2 state parameter as a signed,
// short-lived token. Verification is stateless, which fits the
// one-handler-per-request model: there is no server-side session to stash a
// nonce in.
type StateSigner struct {
	secret []byte
	now    func() time.Time
}

// NewStateSigner creates a StateSigner with the given HMAC secret.
func NewStateSigner(secret string) *StateSigner {
	return &StateSigner{secret: []byte(secret), now: time.Now}
}

// Issue returns a fresh signed state value.
func (s *StateSigner) Issue() (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(stateTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign state: %w", err)
	}
	return signed, nil
}

// Verify checks that the state value was issued by this signer and has not
// expired.
func (s *StateSigner) Verify(state string) error {
	token, err := jwt.Parse(state, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return fmt.Errorf("invalid state: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid state token")
	}
	return nil
}
