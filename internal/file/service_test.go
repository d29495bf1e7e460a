package file

import (
	"context"
	"strings"
	"testing"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestFile(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "File Module Suite")
}

type mockRepository struct {
	records []*File
}

func (m *mockRepository) Create(ctx context.Context, f *File) error {
	m.records = append(m.records, f)
	return nil
}

type mockStorage struct {
	puts map[string][]byte
}

func newMockStorage() *mockStorage {
	return &mockStorage{puts: make(map[string][]byte)}
}

func (m *mockStorage) Put(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	m.puts[key] = body
	return "https://bucket.example.com/" + key, nil
}

// payload builds a blob carrying the given magic bytes padded to size.
func payload(magic []byte, size int) []byte {
	data := make([]byte, size)
	copy(data, magic)
	return data
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF, 0xE0}
)

var _ = ginkgo.Describe("FileService", func() {
	var (
		service *Service
		repo    *mockRepository
		store   *mockStorage
		userID  uuid.UUID
	)

	ginkgo.BeforeEach(func() {
		repo = &mockRepository{}
		store = newMockStorage()
		service = NewService(repo, store)
		userID = uuid.New()
	})

	ginkgo.Describe("Upload", func() {
		ginkgo.It("should accept a PNG and return its URI", func() {
			resp, err := service.Upload(context.Background(), userID, payload(pngMagic, 1024))

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(resp.URI).To(gomega.HavePrefix("https://bucket.example.com/"))
			gomega.Expect(resp.URI).To(gomega.HaveSuffix(".png"))
		})

		ginkgo.It("should accept a JPEG and key it with a jpeg extension", func() {
			resp, err := service.Upload(context.Background(), userID, payload(jpegMagic, 1024))

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(resp.URI).To(gomega.HaveSuffix(".jpeg"))
		})

		ginkgo.It("should record a row for the uploading user", func() {
			_, err := service.Upload(context.Background(), userID, payload(pngMagic, 1024))

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(repo.records).To(gomega.HaveLen(1))
			gomega.Expect(repo.records[0].UserID).To(gomega.Equal(userID))
		})

		ginkgo.It("should give two uploads of the same content distinct URIs", func() {
			first, err := service.Upload(context.Background(), userID, payload(pngMagic, 1024))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			second, err := service.Upload(context.Background(), userID, payload(pngMagic, 1024))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(first.URI).ToNot(gomega.Equal(second.URI))
		})

		ginkgo.It("should accept a file of exactly the size ceiling", func() {
			_, err := service.Upload(context.Background(), userID, payload(pngMagic, MaxFileSize))

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should reject a file one byte over the ceiling", func() {
			_, err := service.Upload(context.Background(), userID, payload(pngMagic, MaxFileSize+1))

			gomega.Expect(err).To(gomega.MatchError(internal.ErrFileTooLarge))
			gomega.Expect(store.puts).To(gomega.BeEmpty())
		})

		ginkgo.It("should reject content that is not an image regardless of size", func() {
			_, err := service.Upload(context.Background(), userID, []byte(strings.Repeat("plain text ", 100)))

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidFileType))
			gomega.Expect(store.puts).To(gomega.BeEmpty())
		})

		ginkgo.It("should reject an empty payload", func() {
			_, err := service.Upload(context.Background(), userID, nil)

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})
