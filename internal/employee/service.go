package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	GetByIdentityNumber(ctx context.Context, identityNumber string) (*Employee, error)
	List(ctx context.Context, filter Filter) ([]*Employee, error)
	IdentityNumberTakenByOther(ctx context.Context, identityNumber string, selfID uuid.UUID) (bool, error)
	DepartmentExists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateEmployeeDTO) error
	Delete(ctx context.Context, identityNumber string) error
}

type Service struct {
	repo         Repository
	queryTimeout time.Duration
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts an employee. The identity-number pre-check and the
// department-existence check are friendly fast paths; the UNIQUE and FK
// constraints remain the real guarantees under races.
func (s *Service) Create(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	taken, err := s.repo.IdentityNumberTakenByOther(ctx, dto.IdentityNumber, uuid.Nil)
	if err != nil {
		return nil, internal.NewInternalError("failed to check identity number", err)
	}
	if taken {
		return nil, internal.ErrIdentityNumberTaken
	}

	departmentID, _ := uuid.Parse(dto.DepartmentID) // shape already validated
	exists, err := s.repo.DepartmentExists(ctx, departmentID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check department", err)
	}
	if !exists {
		return nil, internal.NewValidationError("department does not exist", internal.ErrCodeDepartmentNotFound)
	}

	now := time.Now().UTC()
	emp := &Employee{
		EmployeeID:       uuid.New(),
		IdentityNumber:   dto.IdentityNumber,
		Name:             dto.Name,
		EmployeeImageURI: dto.EmployeeImageURI,
		Gender:           dto.Gender,
		DepartmentID:     departmentID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *Service) List(ctx context.Context, filter Filter) ([]*Employee, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	emps, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return emps, nil
}

// Update applies a partial update to the employee addressed by identity
// number, then rereads the row so the response reflects exactly what was
// stored.
func (s *Service) Update(ctx context.Context, identityNumber string, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	emp, err := s.repo.GetByIdentityNumber(ctx, identityNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, internal.NewInternalError("failed to load employee", err)
	}

	if dto.IdentityNumber != nil && *dto.IdentityNumber != emp.IdentityNumber {
		taken, err := s.repo.IdentityNumberTakenByOther(ctx, *dto.IdentityNumber, emp.EmployeeID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check identity number", err)
		}
		if taken {
			return nil, internal.ErrIdentityNumberTaken
		}
	}

	if dto.DepartmentID != nil {
		departmentID, _ := uuid.Parse(*dto.DepartmentID)
		exists, err := s.repo.DepartmentExists(ctx, departmentID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check department", err)
		}
		if !exists {
			return nil, internal.NewValidationError("department does not exist", internal.ErrCodeDepartmentNotFound)
		}
	}

	if err := s.repo.Update(ctx, emp.EmployeeID, dto); err != nil {
		return nil, err
	}

	key := emp.IdentityNumber
	if dto.IdentityNumber != nil {
		key = *dto.IdentityNumber
	}
	updated, err := s.repo.GetByIdentityNumber(ctx, key)
	if err != nil {
		return nil, internal.NewInternalError("failed to reload employee", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, identityNumber string) error {
	ctx, cancel := internal.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if _, err := s.repo.GetByIdentityNumber(ctx, identityNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal.ErrEmployeeNotFound
		}
		return internal.NewInternalError("failed to load employee", err)
	}

	return s.repo.Delete(ctx, identityNumber)
}
