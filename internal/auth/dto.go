package auth

import (
	"github.com/frahmantamala/employee-management/internal/core/common/validation"
)

const (
	ActionCreate = "create"
	ActionLogin  = "login"
)

// AuthDTO is the transport shape of POST /v1/auth. action selects between
// registration and login.
type AuthDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Action   string `json:"action"`
}

// AuthResponse is returned on both registration (201) and login (200).
type AuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

func (d AuthDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required().Email()
	v.Field("password", d.Password).Required().MinLength(8).MaxLength(32)
	v.Field("action", d.Action).Required().OneOf(ActionCreate, ActionLogin)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
