package user

import (
	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/core/common/validation"
)

// UpdateProfileDTO is a partial update: nil means "leave untouched", a
// present value is validated with the same rule as on creation.
type UpdateProfileDTO struct {
	Email           *string `json:"email"`
	Name            *string `json:"name"`
	UserImageURI    *string `json:"userImageUri"`
	CompanyName     *string `json:"companyName"`
	CompanyImageURI *string `json:"companyImageUri"`
}

// HasFields reports whether at least one field is present. An empty patch is
// a client error, not a no-op.
func (d UpdateProfileDTO) HasFields() bool {
	return d.Email != nil || d.Name != nil || d.UserImageURI != nil ||
		d.CompanyName != nil || d.CompanyImageURI != nil
}

func (d UpdateProfileDTO) Validate() error {
	if !d.HasFields() {
		return internal.ErrEmptyUpdate
	}

	v := validation.NewValidator()
	if d.Email != nil {
		v.Field("email", *d.Email).Required().Email()
	}
	if d.Name != nil {
		v.Field("name", *d.Name).MinLength(4).MaxLength(52)
	}
	if d.UserImageURI != nil {
		v.Field("userImageUri", *d.UserImageURI).URL()
	}
	if d.CompanyName != nil {
		v.Field("companyName", *d.CompanyName).MinLength(4).MaxLength(52)
	}
	if d.CompanyImageURI != nil {
		v.Field("companyImageUri", *d.CompanyImageURI).URL()
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
