package user

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/frahmantamala/employee-management/pkg/logger"
	"github.com/google/uuid"
)

type ServiceAPI interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*Profile, error)
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

// GetProfile handles GET /v1/user. The subject is resolved from the token by
// the auth middleware; there is no path parameter.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	authUser, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.Service.GetProfile(r.Context(), authUser.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PATCH /v1/user.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	authUser, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.Service.UpdateProfile(r.Context(), authUser.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("profile updated", "user_id", authUser.ID)
	h.WriteJSON(w, http.StatusOK, profile)
}
