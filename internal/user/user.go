package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the users table row. The password hash never leaves this package.
type User struct {
	UserID          uuid.UUID `db:"user_id" json:"-"`
	Email           string    `db:"email" json:"email"`
	PasswordHash    string    `db:"password_hash" json:"-"`
	Name            *string   `db:"name" json:"name"`
	UserImageURI    *string   `db:"user_image_uri" json:"userImageUri"`
	CompanyName     *string   `db:"company_name" json:"companyName"`
	CompanyImageURI *string   `db:"company_image_uri" json:"companyImageUri"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
	UpdatedAt       time.Time `db:"updated_at" json:"-"`
}

// Profile is the API view of a user.
type Profile struct {
	Email           string  `json:"email"`
	Name            *string `json:"name"`
	UserImageURI    *string `json:"userImageUri"`
	CompanyName     *string `json:"companyName"`
	CompanyImageURI *string `json:"companyImageUri"`
}

func (u *User) ToProfile() *Profile {
	return &Profile{
		Email:           u.Email,
		Name:            u.Name,
		UserImageURI:    u.UserImageURI,
		CompanyName:     u.CompanyName,
		CompanyImageURI: u.CompanyImageURI,
	}
}
