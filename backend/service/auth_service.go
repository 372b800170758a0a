package service

import (
	"errors"
	"fmt"
	"time"

	"mediavault/backend/common"
	"mediavault/backend/model"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "mediavault"

var (
	ErrEmptyCredentials   = errors.New("email and password required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// JWTClaims carries the authenticated identity inside a signed token.
type JWTClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthResult is what both register and login hand back to the client.
type AuthResult struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// AuthService validates credentials and issues and verifies bearer tokens.
type AuthService struct {
	users    *model.UserStore
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users *model.UserStore, secret string) *AuthService {
	return &AuthService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: 7 * 24 * time.Hour,
	}
}

// Register creates a new user and returns a signed token plus the public
// user view.
func (s *AuthService) Register(email string, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	hash, err := common.Password2Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(email, hash)
	if err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Login checks the credentials and returns a fresh token. Unknown email
// and wrong password fail identically so callers cannot enumerate users.
func (s *AuthService) Login(email string, password string) (*AuthResult, error) {
	user, ok := s.users.FindByEmail(email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if !common.ValidatePasswordAndHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}

// GenerateToken signs a token for the user, valid for seven days.
func (s *AuthService) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token string. Malformed, tampered
// and expired tokens all come back as ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
