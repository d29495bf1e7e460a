package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/google/uuid"
)

// Credentials is what the repository hands back for a login attempt.
type Credentials struct {
	UserID       uuid.UUID
	Email        string
	PasswordHash string
}

// UserRepository is the slice of user storage the auth flow needs.
type UserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*Credentials, error)
}

type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGeneratorAPI
	bcryptCost     int
	queryTimeout   time.Duration
}

func NewService(userRepo UserRepository, tokenGen TokenGeneratorAPI, bcryptCost int) *Service {
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
	}
}

// Register creates an account and issues a token. The email pre-check is
// best-effort; the unique index on LOWER(email) is the real guarantee, and a
// lost race comes back from the store already classified as Conflict.
func (s *Service) Register(ctx context.Context, dto AuthDTO) (*AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	exists, err := s.userRepo.EmailExists(ctx, dto.Email)
	if err != nil {
		return nil, internal.NewInternalError("failed to check email", err)
	}
	if exists {
		return nil, internal.ErrEmailTaken
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	userID, err := s.userRepo.CreateUser(ctx, dto.Email, hash)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenGenerator.Generate(userID)
	if err != nil {
		return nil, internal.NewInternalError("failed to generate token", err)
	}

	return &AuthResponse{Email: dto.Email, Token: token}, nil
}

// Login verifies credentials and issues a token.
func (s *Service) Login(ctx context.Context, dto AuthDTO) (*AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	creds, err := s.userRepo.GetCredentialsByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrInvalidCredentials
		}
		return nil, internal.NewInternalError("failed to load credentials", err)
	}

	if err := VerifyPassword(creds.PasswordHash, dto.Password); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Generate(creds.UserID)
	if err != nil {
		return nil, internal.NewInternalError("failed to generate token", err)
	}

	return &AuthResponse{Email: creds.Email, Token: token}, nil
}

// ValidateToken verifies a bearer token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.Validate(tokenString)
}
