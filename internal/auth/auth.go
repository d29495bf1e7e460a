package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type ServiceAPI interface {
	Register(ctx context.Context, dto AuthDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto AuthDTO) (*AuthResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type TokenGeneratorAPI interface {
	Generate(userID uuid.UUID) (string, error)
	Validate(tokenString string) (*Claims, error)
}

// AuthUser is the authenticated identity resolved by the middleware and
// passed to every protected handler through the request context.
type AuthUser struct {
	ID uuid.UUID
}

// Claims binds a token to a user identifier. Subject carries the user UUID.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTTokenGenerator signs and verifies HS256 tokens with a single
// process-wide secret.
type JWTTokenGenerator struct {
	Secret []byte
	TTL    time.Duration
}

var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token signature invalid")
)

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

// Generate issues a signed, time-limited token for the given user.
func (j *JWTTokenGenerator) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Validate parses and verifies a token, distinguishing malformed input,
// expiry, and signature failure. Pure function of token + secret + clock.
func (j *JWTTokenGenerator) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenInvalid
		}
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type ctxKey string

const contextUserKey ctxKey = "authUser"

func ContextWithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, contextUserKey, user)
}

func UserFromContext(ctx context.Context) (*AuthUser, bool) {
	user, ok := ctx.Value(contextUserKey).(*AuthUser)
	return user, ok
}
