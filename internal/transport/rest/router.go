package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/department"
	"github.com/frahmantamala/employee-management/internal/employee"
	"github.com/frahmantamala/employee-management/internal/file"
	"github.com/frahmantamala/employee-management/internal/transport/middleware"
	"github.com/frahmantamala/employee-management/internal/transport/swagger"
	"github.com/frahmantamala/employee-management/internal/user"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
)

func RegisterAllRoutes(router *chi.Mux, db *sqlx.DB, authHandler *auth.Handler, userHandler *user.Handler, departmentHandler *department.Handler, employeeHandler *employee.Handler, fileHandler *file.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))

	// Serve the OpenAPI document at root, outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Register and login share one endpoint, dispatched on "action"
		r.Post("/auth", authHandler.Authenticate)

		// Everything below requires a valid bearer token. Any authenticated
		// user may mutate departments and employees; there is no per-resource
		// ownership model.
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/user", func(ur chi.Router) {
				ur.Get("/", userHandler.GetProfile)
				ur.Patch("/", userHandler.UpdateProfile)
			})

			pr.Route("/department", func(dr chi.Router) {
				dr.Post("/", departmentHandler.Create)
				dr.Get("/", departmentHandler.List)
				dr.Patch("/{id}", departmentHandler.Update)
				dr.Delete("/{id}", departmentHandler.Delete)
			})

			pr.Route("/employee", func(er chi.Router) {
				er.Post("/", employeeHandler.Create)
				er.Get("/", employeeHandler.List)
				er.Patch("/{identityNumber}", employeeHandler.Update)
				er.Delete("/{identityNumber}", employeeHandler.Delete)
			})

			pr.Post("/file", fileHandler.Upload)
		})
	})
}
