package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/andrasnagy-data/bloglist/internal/shared/config"
)

var ErrInvalidToken = errors.New("invalid token")

type (
	// Claims is the token payload. Tokens carry no expiry and stay valid for as long as the
	// signing secret does.
	Claims struct {
		Username string `json:"username"`
		UserID   string `json:"id"`
		jwt.RegisteredClaims
	}

	Service struct {
		secret []byte
	}
)

func New(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

func NewService(cfg *config.Config) *Service {
	return New(cfg.Secret)
}

// Issue signs a token for the user with HS256.
func (s *Service) Issue(id, username string) (string, error) {
	claims := Claims{
		Username: username,
		UserID:   id,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and returns the embedded claims. Any failure is ErrInvalidToken.
func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
