package employee

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/frahmantamala/employee-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error)
	List(ctx context.Context, filter Filter) ([]*Employee, error)
	Update(ctx context.Context, identityNumber string, dto UpdateEmployeeDTO) (*Employee, error)
	Delete(ctx context.Context, identityNumber string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("employee created", "identity_number", emp.IdentityNumber)
	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := Filter{Limit: 5, Offset: 0}

	q := r.URL.Query()
	if v := q.Get("identityNumber"); v != "" {
		filter.IdentityNumber = &v
	}
	if v := q.Get("name"); v != "" {
		filter.Name = &v
	}
	if v := q.Get("gender"); v != "" {
		filter.Gender = &v
	}
	if v := q.Get("departmentId"); v != "" {
		filter.DepartmentID = &v
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			filter.Limit = l
		}
	}
	if offsetStr := q.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	emps, err := h.Service.List(r.Context(), filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emps)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identityNumber := chi.URLParam(r, "identityNumber")

	var dto UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Update(r.Context(), identityNumber, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identityNumber := chi.URLParam(r, "identityNumber")

	if err := h.Service.Delete(r.Context(), identityNumber); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("employee deleted", "identity_number", identityNumber)
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "employee deleted successfully"})
}
