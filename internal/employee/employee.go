package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Employee is the employees table row. The surrogate key stays internal;
// the API addresses employees by identity number.
type Employee struct {
	EmployeeID       uuid.UUID `db:"employee_id" json:"-"`
	IdentityNumber   string    `db:"identity_number" json:"identityNumber"`
	Name             string    `db:"name" json:"name"`
	EmployeeImageURI *string   `db:"employee_image_uri" json:"employeeImageUri"`
	Gender           string    `db:"gender" json:"gender"`
	DepartmentID     uuid.UUID `db:"department_id" json:"departmentId"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}
