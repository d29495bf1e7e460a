package department

import (
	"time"

	"github.com/google/uuid"
)

// Department is the departments table row.
type Department struct {
	DepartmentID uuid.UUID `db:"department_id" json:"departmentId"`
	Name         string    `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Response is the shape returned by create and update.
type Response struct {
	DepartmentID uuid.UUID `json:"departmentId"`
	Name         string    `json:"name"`
}

func (d *Department) ToResponse() *Response {
	return &Response{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
	}
}
