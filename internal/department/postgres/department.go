package postgres

import (
	"context"
	"time"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/database"
	"github.com/frahmantamala/employee-management/internal/department"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type DepartmentRepository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(db *sqlx.DB) department.Repository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, name string) (*department.Department, error) {
	dept := &department.Department{
		DepartmentID: uuid.New(),
		Name:         name,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	query := `INSERT INTO departments (department_id, name, created_at, updated_at)
	          VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, dept.DepartmentID, dept.Name, dept.CreatedAt, dept.UpdatedAt); err != nil {
		return nil, internal.FromPgError(err, "department name already exists")
	}
	return dept, nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*department.Department, error) {
	var dept department.Department
	query := `SELECT department_id, name, created_at, updated_at FROM departments WHERE department_id = $1`
	if err := r.db.GetContext(ctx, &dept, query, id); err != nil {
		return nil, err
	}
	return &dept, nil
}

// List composes the optional name filter and pagination through the query
// builder so bindings stay positionally correct whatever is supplied.
func (r *DepartmentRepository) List(ctx context.Context, filter department.Filter) ([]*department.Department, error) {
	b := database.NewSelect(`SELECT department_id, name, created_at, updated_at FROM departments`)
	if filter.Name != nil {
		b.WhereContains("name", *filter.Name)
	}
	query, args := b.OrderBy("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Build()

	depts := make([]*department.Department, 0)
	if err := r.db.SelectContext(ctx, &depts, query, args...); err != nil {
		return nil, err
	}
	return depts, nil
}

func (r *DepartmentRepository) NameTakenByOther(ctx context.Context, name string, selfID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1 AND department_id != $2)`
	if err := r.db.GetContext(ctx, &exists, query, name, selfID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *DepartmentRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	query, args, err := database.NewUpdate("departments").
		Set("name", name).
		Build("department_id", id)
	if err != nil {
		return internal.ErrEmptyUpdate
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return internal.FromPgError(err, "department name already exists")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return internal.ErrDepartmentNotFound
	}
	return nil
}

func (r *DepartmentRepository) CountEmployees(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(1) FROM employees WHERE department_id = $1`
	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM departments WHERE department_id = $1`, id)
	if err != nil {
		return internal.FromPgError(err, "department still contains employees")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return internal.ErrDepartmentNotFound
	}
	return nil
}
