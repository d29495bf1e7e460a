package user

import (
	"context"
	"database/sql"
	"testing"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

type mockRepository struct {
	users       map[uuid.UUID]*User
	emailsTaken map[string]bool
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:       make(map[uuid.UUID]*User),
		emailsTaken: make(map[string]bool),
	}
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (m *mockRepository) EmailTakenByOther(ctx context.Context, email string, selfID uuid.UUID) (bool, error) {
	return m.emailsTaken[email], nil
}

func (m *mockRepository) UpdateProfile(ctx context.Context, id uuid.UUID, dto UpdateProfileDTO) error {
	u, ok := m.users[id]
	if !ok {
		return internal.ErrUserNotFound
	}
	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Name != nil {
		u.Name = dto.Name
	}
	if dto.UserImageURI != nil {
		u.UserImageURI = dto.UserImageURI
	}
	if dto.CompanyName != nil {
		u.CompanyName = dto.CompanyName
	}
	if dto.CompanyImageURI != nil {
		u.CompanyImageURI = dto.CompanyImageURI
	}
	return nil
}

func strPtr(s string) *string { return &s }

var _ = ginkgo.Describe("UserService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
		userID   uuid.UUID
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		service = NewService(mockRepo)

		userID = uuid.New()
		mockRepo.users[userID] = &User{
			UserID: userID,
			Email:  "user@example.com",
		}
	})

	ginkgo.Describe("GetProfile", func() {
		ginkgo.It("should return the profile without the password hash", func() {
			profile, err := service.GetProfile(context.Background(), userID)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(profile.Email).To(gomega.Equal("user@example.com"))
			gomega.Expect(profile.Name).To(gomega.BeNil())
		})

		ginkgo.It("should return not found for an unknown user", func() {
			_, err := service.GetProfile(context.Background(), uuid.New())

			gomega.Expect(err).To(gomega.MatchError(internal.ErrUserNotFound))
		})
	})

	ginkgo.Describe("UpdateProfile", func() {
		ginkgo.Context("when the patch carries fields", func() {
			ginkgo.It("should update only the supplied fields", func() {
				dto := UpdateProfileDTO{Name: strPtr("Updated Name")}

				profile, err := service.UpdateProfile(context.Background(), userID, dto)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(*profile.Name).To(gomega.Equal("Updated Name"))
				gomega.Expect(profile.Email).To(gomega.Equal("user@example.com"))
			})
		})

		ginkgo.Context("when the patch is empty", func() {
			ginkgo.It("should reject it as a client error", func() {
				_, err := service.UpdateProfile(context.Background(), userID, UpdateProfileDTO{})

				gomega.Expect(err).To(gomega.MatchError(internal.ErrEmptyUpdate))
			})
		})

		ginkgo.Context("when the new email belongs to someone else", func() {
			ginkgo.It("should return a conflict", func() {
				mockRepo.emailsTaken["taken@example.com"] = true
				dto := UpdateProfileDTO{Email: strPtr("taken@example.com")}

				_, err := service.UpdateProfile(context.Background(), userID, dto)

				gomega.Expect(err).To(gomega.MatchError(internal.ErrEmailTaken))
			})
		})

		ginkgo.Context("when a field fails validation", func() {
			ginkgo.It("should reject a short name", func() {
				dto := UpdateProfileDTO{Name: strPtr("abc")}

				_, err := service.UpdateProfile(context.Background(), userID, dto)

				gomega.Expect(err).To(gomega.HaveOccurred())
				_, ok := internal.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
			})

			ginkgo.It("should reject a non-http image URI", func() {
				dto := UpdateProfileDTO{UserImageURI: strPtr("ftp://example.com/a.png")}

				_, err := service.UpdateProfile(context.Background(), userID, dto)

				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})
})
