package department

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type stubService struct {
	lastFilter Filter
}

func (s *stubService) Create(ctx context.Context, dto CreateDepartmentDTO) (*Response, error) {
	return &Response{DepartmentID: uuid.New(), Name: dto.Name}, nil
}

func (s *stubService) List(ctx context.Context, filter Filter) ([]*Department, error) {
	s.lastFilter = filter
	return []*Department{}, nil
}

func (s *stubService) Update(ctx context.Context, id uuid.UUID, dto UpdateDepartmentDTO) (*Response, error) {
	return &Response{DepartmentID: id, Name: dto.Name}, nil
}

func (s *stubService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

var _ = ginkgo.Describe("DepartmentHandler", func() {
	var (
		handler *Handler
		stub    *stubService
	)

	ginkgo.BeforeEach(func() {
		stub = &stubService{}
		handler = NewHandler(stub)
	})

	list := func(query string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/department"+query, nil)
		rec := httptest.NewRecorder()
		handler.List(rec, req)
		return rec
	}

	ginkgo.Describe("List filter parsing", func() {
		ginkgo.It("should default to limit 5 and offset 0", func() {
			rec := list("")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(stub.lastFilter.Limit).To(gomega.Equal(5))
			gomega.Expect(stub.lastFilter.Offset).To(gomega.Equal(0))
			gomega.Expect(stub.lastFilter.Name).To(gomega.BeNil())
		})

		ginkgo.It("should pass the name filter through", func() {
			list("?name=eng")

			gomega.Expect(stub.lastFilter.Name).ToNot(gomega.BeNil())
			gomega.Expect(*stub.lastFilter.Name).To(gomega.Equal("eng"))
		})

		ginkgo.It("should honor explicit pagination", func() {
			list("?limit=20&offset=40")

			gomega.Expect(stub.lastFilter.Limit).To(gomega.Equal(20))
			gomega.Expect(stub.lastFilter.Offset).To(gomega.Equal(40))
		})

		ginkgo.It("should fall back to defaults for out-of-range pagination", func() {
			list("?limit=5000&offset=-3")

			gomega.Expect(stub.lastFilter.Limit).To(gomega.Equal(5))
			gomega.Expect(stub.lastFilter.Offset).To(gomega.Equal(0))
		})

		ginkgo.It("should ignore non-numeric pagination values", func() {
			list("?limit=abc&offset=xyz")

			gomega.Expect(stub.lastFilter.Limit).To(gomega.Equal(5))
			gomega.Expect(stub.lastFilter.Offset).To(gomega.Equal(0))
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("should return 400 for a non-UUID path parameter", func() {
			req := httptest.NewRequest(http.MethodPatch, "/v1/department/not-a-uuid", nil)
			rec := httptest.NewRecorder()
			handler.Update(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})
})
