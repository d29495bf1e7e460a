package postgres

import (
	"context"
	"time"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/database"
	"github.com/frahmantamala/employee-management/internal/user"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserRepository backs both the auth flow and the profile endpoints; they
// share the users table.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	query := `SELECT user_id, email, password_hash, name, user_image_uri, company_name, company_image_uri, created_at, updated_at
	          FROM users WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailExists checks case-insensitively; the unique index on LOWER(email)
// backs this up under concurrent registration.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) EmailTakenByOther(ctx context.Context, email string, selfID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1) AND user_id != $2)`
	if err := r.db.GetContext(ctx, &exists, query, email, selfID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	userID := uuid.New()
	now := time.Now().UTC()
	query := `INSERT INTO users (user_id, email, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, userID, email, passwordHash, now, now); err != nil {
		return uuid.Nil, internal.FromPgError(err, "email already exists")
	}
	return userID, nil
}

func (r *UserRepository) GetCredentialsByEmail(ctx context.Context, email string) (*auth.Credentials, error) {
	var row struct {
		UserID       uuid.UUID `db:"user_id"`
		Email        string    `db:"email"`
		PasswordHash string    `db:"password_hash"`
	}
	query := `SELECT user_id, email, password_hash FROM users WHERE LOWER(email) = LOWER($1)`
	if err := r.db.GetContext(ctx, &row, query, email); err != nil {
		return nil, err
	}
	return &auth.Credentials{
		UserID:       row.UserID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
	}, nil
}

// UpdateProfile renders a partial UPDATE from whichever fields are present.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, dto user.UpdateProfileDTO) error {
	b := database.NewUpdate("users")
	if dto.Email != nil {
		b.Set("email", *dto.Email)
	}
	if dto.Name != nil {
		b.Set("name", *dto.Name)
	}
	if dto.UserImageURI != nil {
		b.Set("user_image_uri", *dto.UserImageURI)
	}
	if dto.CompanyName != nil {
		b.Set("company_name", *dto.CompanyName)
	}
	if dto.CompanyImageURI != nil {
		b.Set("company_image_uri", *dto.CompanyImageURI)
	}

	query, args, err := b.Build("user_id", id)
	if err != nil {
		return internal.ErrEmptyUpdate
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return internal.FromPgError(err, "email already exists")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return internal.ErrUserNotFound
	}
	return nil
}
