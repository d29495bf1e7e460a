package postgres

import (
	"context"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/database"
	"github.com/frahmantamala/employee-management/internal/employee"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type EmployeeRepository struct {
	db *sqlx.DB
}

func NewEmployeeRepository(db *sqlx.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	query := `INSERT INTO employees (employee_id, identity_number, name, employee_image_uri, gender, department_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		emp.EmployeeID, emp.IdentityNumber, emp.Name, emp.EmployeeImageURI,
		emp.Gender, emp.DepartmentID, emp.CreatedAt, emp.UpdatedAt)
	if err != nil {
		return internal.FromPgError(err, "employee violates a uniqueness or reference constraint")
	}
	return nil
}

func (r *EmployeeRepository) GetByIdentityNumber(ctx context.Context, identityNumber string) (*employee.Employee, error) {
	var emp employee.Employee
	query := `SELECT employee_id, identity_number, name, employee_image_uri, gender, department_id, created_at, updated_at
	          FROM employees WHERE identity_number = $1`
	if err := r.db.GetContext(ctx, &emp, query, identityNumber); err != nil {
		return nil, err
	}
	return &emp, nil
}

// List renders whichever filters are present. Identity numbers match by
// prefix, names by case-insensitive substring, gender and department by
// equality; placeholders follow append order so omitting one filter never
// shifts another's binding.
func (r *EmployeeRepository) List(ctx context.Context, filter employee.Filter) ([]*employee.Employee, error) {
	b := database.NewSelect(`SELECT employee_id, identity_number, name, employee_image_uri, gender, department_id, created_at, updated_at FROM employees`)
	if filter.IdentityNumber != nil {
		b.WherePrefix("identity_number", *filter.IdentityNumber)
	}
	if filter.Name != nil {
		b.WhereContains("name", *filter.Name)
	}
	if filter.Gender != nil {
		b.Where("gender", "=", *filter.Gender)
	}
	if filter.DepartmentID != nil {
		b.Where("department_id", "=", *filter.DepartmentID)
	}
	query, args := b.OrderBy("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Build()

	emps := make([]*employee.Employee, 0)
	if err := r.db.SelectContext(ctx, &emps, query, args...); err != nil {
		return nil, err
	}
	return emps, nil
}

func (r *EmployeeRepository) IdentityNumberTakenByOther(ctx context.Context, identityNumber string, selfID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE identity_number = $1 AND employee_id != $2)`
	if err := r.db.GetContext(ctx, &exists, query, identityNumber, selfID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EmployeeRepository) DepartmentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM departments WHERE department_id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id uuid.UUID, dto employee.UpdateEmployeeDTO) error {
	b := database.NewUpdate("employees")
	if dto.IdentityNumber != nil {
		b.Set("identity_number", *dto.IdentityNumber)
	}
	if dto.Name != nil {
		b.Set("name", *dto.Name)
	}
	if dto.EmployeeImageURI != nil {
		b.Set("employee_image_uri", *dto.EmployeeImageURI)
	}
	if dto.Gender != nil {
		b.Set("gender", *dto.Gender)
	}
	if dto.DepartmentID != nil {
		b.Set("department_id", *dto.DepartmentID)
	}

	query, args, err := b.Build("employee_id", id)
	if err != nil {
		return internal.ErrEmptyUpdate
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return internal.FromPgError(err, "employee violates a uniqueness or reference constraint")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, identityNumber string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE identity_number = $1`, identityNumber)
	if err != nil {
		return internal.FromPgError(err, "failed to delete employee")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}
