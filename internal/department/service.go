package department

import (
	"context"
	"database/sql"
	"errors"
	"time"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, name string) (*Department, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Department, error)
	List(ctx context.Context, filter Filter) ([]*Department, error)
	NameTakenByOther(ctx context.Context, name string, selfID uuid.UUID) (bool, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	CountEmployees(ctx context.Context, id uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo         Repository
	queryTimeout time.Duration
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts a department after a best-effort name pre-check; the UNIQUE
// constraint on name is the real guarantee, and a lost race surfaces as the
// same Conflict.
func (s *Service) Create(ctx context.Context, dto CreateDepartmentDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	taken, err := s.repo.NameTakenByOther(ctx, dto.Name, uuid.Nil)
	if err != nil {
		return nil, internal.NewInternalError("failed to check department name", err)
	}
	if taken {
		return nil, internal.ErrDepartmentNameTaken
	}

	dept, err := s.repo.Create(ctx, dto.Name)
	if err != nil {
		return nil, err
	}
	return dept.ToResponse(), nil
}

func (s *Service) List(ctx context.Context, filter Filter) ([]*Department, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	depts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, internal.NewInternalError("failed to list departments", err)
	}
	return depts, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, dto UpdateDepartmentDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrDepartmentNotFound
		}
		return nil, internal.NewInternalError("failed to load department", err)
	}

	taken, err := s.repo.NameTakenByOther(ctx, dto.Name, id)
	if err != nil {
		return nil, internal.NewInternalError("failed to check department name", err)
	}
	if taken {
		return nil, internal.ErrDepartmentNameTaken
	}

	if err := s.repo.UpdateName(ctx, id, dto.Name); err != nil {
		return nil, err
	}

	return &Response{DepartmentID: id, Name: dto.Name}, nil
}

// Delete refuses to remove a department that still has employees; the FK
// from employees would block it anyway, but the pre-check gives the caller a
// Conflict with a usable message instead of a raw constraint error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal.ErrDepartmentNotFound
		}
		return internal.NewInternalError("failed to load department", err)
	}

	count, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		return internal.NewInternalError("failed to count employees", err)
	}
	if count > 0 {
		return internal.ErrDepartmentNotEmpty
	}

	return s.repo.Delete(ctx, id)
}
