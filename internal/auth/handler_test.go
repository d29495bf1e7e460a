package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	internal "github.com/frahmantamala/employee-management/internal"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func jwtNumericDate(t time.Time) *jwt.NumericDate {
	return jwt.NewNumericDate(t)
}

func signClaims(claims *Claims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

type stubService struct {
	tokenGen    *JWTTokenGenerator
	registerErr error
	loginErr    error
}

func (s *stubService) Register(ctx context.Context, dto AuthDTO) (*AuthResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &AuthResponse{Email: dto.Email, Token: "issued-token"}, nil
}

func (s *stubService) Login(ctx context.Context, dto AuthDTO) (*AuthResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &AuthResponse{Email: dto.Email, Token: "issued-token"}, nil
}

func (s *stubService) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokenGen.Validate(tokenString)
}

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler *Handler
		stub    *stubService
	)

	ginkgo.BeforeEach(func() {
		stub = &stubService{tokenGen: NewJWTTokenGenerator("test-secret", time.Hour)}
		handler = NewHandler(stub)
	})

	authRequest := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.Authenticate(rec, req)
		return rec
	}

	ginkgo.Describe("Authenticate", func() {
		ginkgo.It("should return 201 for action create", func() {
			rec := authRequest(`{"email":"new@example.com","password":"password123","action":"create"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))

			var resp AuthResponse
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Token).To(gomega.Equal("issued-token"))
		})

		ginkgo.It("should return 200 for action login", func() {
			rec := authRequest(`{"email":"user@example.com","password":"password123","action":"login"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should return 400 for an unknown action", func() {
			rec := authRequest(`{"email":"user@example.com","password":"password123","action":"refresh"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))

			var resp map[string]string
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp).To(gomega.HaveKey("error"))
		})

		ginkgo.It("should return 400 for a malformed body", func() {
			rec := authRequest(`{not json`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should map a service conflict to 409", func() {
			stub.registerErr = internal.ErrEmailTaken

			rec := authRequest(`{"email":"dup@example.com","password":"password123","action":"create"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusConflict))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var (
			nextCalled bool
			seenUser   *AuthUser
			protected  http.Handler
		)

		ginkgo.BeforeEach(func() {
			nextCalled = false
			seenUser = nil
			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				seenUser, _ = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))
		})

		ginkgo.It("should pass a valid token through with the user in context", func() {
			userID := uuid.New()
			token, err := stub.tokenGen.Generate(userID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(nextCalled).To(gomega.BeTrue())
			gomega.Expect(seenUser).ToNot(gomega.BeNil())
			gomega.Expect(seenUser.ID).To(gomega.Equal(userID))
		})

		ginkgo.It("should return 401 without an Authorization header", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})

		ginkgo.It("should return 401 for a non-Bearer header", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
			req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should return 401 for an expired token", func() {
			expiredGen := NewJWTTokenGenerator("test-secret", -time.Minute)
			token, err := expiredGen.Generate(uuid.New())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})

		ginkgo.It("should return 401 when the token subject is not a UUID", func() {
			// Hand-build a token whose subject cannot be parsed.
			badClaims := &Claims{}
			badClaims.Subject = "not-a-uuid"
			badClaims.ExpiresAt = jwtNumericDate(time.Now().Add(time.Hour))
			token, err := signClaims(badClaims, "test-secret")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})
	})
})
