package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	EmailTakenByOther(ctx context.Context, email string, selfID uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, dto UpdateProfileDTO) error
}

type Service struct {
	repo         Repository
	queryTimeout time.Duration
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewInternalError("failed to load profile", err)
	}
	return u.ToProfile(), nil
}

// UpdateProfile applies a partial update to the caller's own row. A changed
// email is re-checked for uniqueness excluding the row itself; the unique
// index remains the real guarantee under races.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewInternalError("failed to load profile", err)
	}

	if dto.Email != nil {
		taken, err := s.repo.EmailTakenByOther(ctx, *dto.Email, userID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check email", err)
		}
		if taken {
			return nil, internal.ErrEmailTaken
		}
	}

	if err := s.repo.UpdateProfile(ctx, userID, dto); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, internal.NewInternalError("failed to reload profile", err)
	}
	return u.ToProfile(), nil
}
