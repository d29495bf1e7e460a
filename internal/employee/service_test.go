package employee

import (
	"context"
	"database/sql"
	"testing"
	"time"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestEmployee(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Employee Module Suite")
}

type mockRepository struct {
	employees   map[uuid.UUID]*Employee
	departments map[uuid.UUID]bool
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		employees:   make(map[uuid.UUID]*Employee),
		departments: make(map[uuid.UUID]bool),
	}
}

func (m *mockRepository) Create(ctx context.Context, emp *Employee) error {
	m.employees[emp.EmployeeID] = emp
	return nil
}

func (m *mockRepository) GetByIdentityNumber(ctx context.Context, identityNumber string) (*Employee, error) {
	for _, e := range m.employees {
		if e.IdentityNumber == identityNumber {
			return e, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockRepository) List(ctx context.Context, filter Filter) ([]*Employee, error) {
	out := make([]*Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockRepository) IdentityNumberTakenByOther(ctx context.Context, identityNumber string, selfID uuid.UUID) (bool, error) {
	for id, e := range m.employees {
		if e.IdentityNumber == identityNumber && id != selfID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) DepartmentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.departments[id], nil
}

func (m *mockRepository) Update(ctx context.Context, id uuid.UUID, dto UpdateEmployeeDTO) error {
	emp, ok := m.employees[id]
	if !ok {
		return internal.ErrEmployeeNotFound
	}
	if dto.IdentityNumber != nil {
		emp.IdentityNumber = *dto.IdentityNumber
	}
	if dto.Name != nil {
		emp.Name = *dto.Name
	}
	if dto.EmployeeImageURI != nil {
		emp.EmployeeImageURI = dto.EmployeeImageURI
	}
	if dto.Gender != nil {
		emp.Gender = *dto.Gender
	}
	if dto.DepartmentID != nil {
		emp.DepartmentID = uuid.MustParse(*dto.DepartmentID)
	}
	emp.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, identityNumber string) error {
	for id, e := range m.employees {
		if e.IdentityNumber == identityNumber {
			delete(m.employees, id)
			return nil
		}
	}
	return internal.ErrEmployeeNotFound
}

func strPtr(s string) *string { return &s }

var _ = ginkgo.Describe("EmployeeService", func() {
	var (
		service      *Service
		mockRepo     *mockRepository
		departmentID uuid.UUID
	)

	createDTO := func() CreateEmployeeDTO {
		return CreateEmployeeDTO{
			IdentityNumber: "EMP-001",
			Name:           "Jane Doe",
			Gender:         GenderFemale,
			DepartmentID:   departmentID.String(),
		}
	}

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		service = NewService(mockRepo)

		departmentID = uuid.New()
		mockRepo.departments[departmentID] = true
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should create an employee in an existing department", func() {
			emp, err := service.Create(context.Background(), createDTO())

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(emp.IdentityNumber).To(gomega.Equal("EMP-001"))
			gomega.Expect(emp.DepartmentID).To(gomega.Equal(departmentID))
		})

		ginkgo.It("should reject a duplicate identity number with a conflict", func() {
			_, err := service.Create(context.Background(), createDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Create(context.Background(), createDTO())

			gomega.Expect(err).To(gomega.MatchError(internal.ErrIdentityNumberTaken))
		})

		ginkgo.It("should reject a non-existent department as a client error", func() {
			dto := createDTO()
			dto.DepartmentID = uuid.New().String()

			_, err := service.Create(context.Background(), dto)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
		})

		ginkgo.It("should reject an unknown gender", func() {
			dto := createDTO()
			dto.Gender = "other"

			_, err := service.Create(context.Background(), dto)

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.Create(context.Background(), createDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should apply a name-only patch and leave everything else", func() {
			emp, err := service.Update(context.Background(), "EMP-001", UpdateEmployeeDTO{Name: strPtr("Jane Smith")})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(emp.Name).To(gomega.Equal("Jane Smith"))
			gomega.Expect(emp.IdentityNumber).To(gomega.Equal("EMP-001"))
			gomega.Expect(emp.Gender).To(gomega.Equal(GenderFemale))
		})

		ginkgo.It("should follow an identity-number change when rereading", func() {
			emp, err := service.Update(context.Background(), "EMP-001", UpdateEmployeeDTO{IdentityNumber: strPtr("EMP-002")})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(emp.IdentityNumber).To(gomega.Equal("EMP-002"))
		})

		ginkgo.It("should reject an empty patch", func() {
			_, err := service.Update(context.Background(), "EMP-001", UpdateEmployeeDTO{})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrEmptyUpdate))
		})

		ginkgo.It("should reject moving to a non-existent department", func() {
			ghost := uuid.New().String()

			_, err := service.Update(context.Background(), "EMP-001", UpdateEmployeeDTO{DepartmentID: &ghost})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
		})

		ginkgo.It("should return not found for an unknown identity number", func() {
			_, err := service.Update(context.Background(), "EMP-999", UpdateEmployeeDTO{Name: strPtr("Someone Else")})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrEmployeeNotFound))
		})

		ginkgo.It("should reject taking another employee's identity number", func() {
			dto := createDTO()
			dto.IdentityNumber = "EMP-002"
			_, err := service.Create(context.Background(), dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Update(context.Background(), "EMP-001", UpdateEmployeeDTO{IdentityNumber: strPtr("EMP-002")})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrIdentityNumberTaken))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.Create(context.Background(), createDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should delete an existing employee", func() {
			gomega.Expect(service.Delete(context.Background(), "EMP-001")).To(gomega.Succeed())
		})

		ginkgo.It("should return not found on a second delete", func() {
			gomega.Expect(service.Delete(context.Background(), "EMP-001")).To(gomega.Succeed())

			err := service.Delete(context.Background(), "EMP-001")
			gomega.Expect(err).To(gomega.MatchError(internal.ErrEmployeeNotFound))
		})
	})
})
