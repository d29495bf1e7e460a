package employee

import (
	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/core/common/validation"
)

type CreateEmployeeDTO struct {
	IdentityNumber   string  `json:"identityNumber"`
	Name             string  `json:"name"`
	EmployeeImageURI *string `json:"employeeImageUri"`
	Gender           string  `json:"gender"`
	DepartmentID     string  `json:"departmentId"`
}

func (d CreateEmployeeDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("identityNumber", d.IdentityNumber).Required().MinLength(5).MaxLength(33)
	v.Field("name", d.Name).Required().MinLength(4).MaxLength(33)
	if d.EmployeeImageURI != nil {
		v.Field("employeeImageUri", *d.EmployeeImageURI).URL()
	}
	v.Field("gender", d.Gender).Required().OneOf(GenderMale, GenderFemale)
	v.Field("departmentId", d.DepartmentID).Required().UUID()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UpdateEmployeeDTO is a partial update; present fields are validated with
// the creation rules.
type UpdateEmployeeDTO struct {
	IdentityNumber   *string `json:"identityNumber"`
	Name             *string `json:"name"`
	EmployeeImageURI *string `json:"employeeImageUri"`
	Gender           *string `json:"gender"`
	DepartmentID     *string `json:"departmentId"`
}

func (d UpdateEmployeeDTO) HasFields() bool {
	return d.IdentityNumber != nil || d.Name != nil || d.EmployeeImageURI != nil ||
		d.Gender != nil || d.DepartmentID != nil
}

func (d UpdateEmployeeDTO) Validate() error {
	if !d.HasFields() {
		return internal.ErrEmptyUpdate
	}

	v := validation.NewValidator()
	if d.IdentityNumber != nil {
		v.Field("identityNumber", *d.IdentityNumber).MinLength(5).MaxLength(33)
	}
	if d.Name != nil {
		v.Field("name", *d.Name).MinLength(4).MaxLength(33)
	}
	if d.EmployeeImageURI != nil {
		v.Field("employeeImageUri", *d.EmployeeImageURI).URL()
	}
	if d.Gender != nil {
		v.Field("gender", *d.Gender).OneOf(GenderMale, GenderFemale)
	}
	if d.DepartmentID != nil {
		v.Field("departmentId", *d.DepartmentID).UUID()
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// Filter holds the optional list predicates. Nil means "not supplied".
type Filter struct {
	IdentityNumber *string
	Name           *string
	Gender         *string
	DepartmentID   *string
	Limit          int
	Offset         int
}
