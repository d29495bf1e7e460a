package department

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/frahmantamala/employee-management/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateDepartmentDTO) (*Response, error)
	List(ctx context.Context, filter Filter) ([]*Department, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateDepartmentDTO) (*Response, error)
	Delete(ctx context.Context, id uuid.UUID) error
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
	var dto CreateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("department created", "department_id", resp.DepartmentID, "name", resp.Name)
	h.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := Filter{Limit: 5, Offset: 0}

	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			filter.Limit = l
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	depts, err := h.Service.List(r.Context(), filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, depts)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid department ID")
		return
	}

	var dto UpdateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid department ID")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("department deleted", "department_id", id)
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "department deleted successfully"})
}
