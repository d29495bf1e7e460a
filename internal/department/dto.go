package department

import (
	"github.com/frahmantamala/employee-management/internal/core/common/validation"
)

type CreateDepartmentDTO struct {
	Name string `json:"name"`
}

func (d CreateDepartmentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MinLength(4).MaxLength(33)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UpdateDepartmentDTO carries the only mutable field; name is required on
// update as well.
type UpdateDepartmentDTO struct {
	Name string `json:"name"`
}

func (d UpdateDepartmentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MinLength(4).MaxLength(33)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// Filter holds the optional list predicates. Nil means "not supplied".
type Filter struct {
	Name   *string
	Limit  int
	Offset int
}
