package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/frahmantamala/employee-management/pkg/logger"
	"github.com/google/uuid"
)

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

// Authenticate handles POST /v1/auth. action=create registers and returns
// 201; action=login returns 200.
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var dto AuthDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch strings.ToLower(dto.Action) {
	case ActionCreate:
		resp, err := h.Service.Register(r.Context(), dto)
		if err != nil {
			h.Logger.Warn("registration failed", "email", dto.Email, "error", err)
			h.HandleServiceError(w, err)
			return
		}
		h.Logger.Info("user registered", "email", dto.Email)
		h.WriteJSON(w, http.StatusCreated, resp)

	case ActionLogin:
		resp, err := h.Service.Login(r.Context(), dto)
		if err != nil {
			h.Logger.Warn("login failed", "email", dto.Email, "error", err)
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, resp)

	default:
		h.WriteError(w, http.StatusBadRequest, "action must be one of [create login]")
	}
}

// AuthMiddleware is the authorization gate for every protected route. The
// order is fixed: extract the bearer token, verify it, parse the claimed
// subject. All three failure modes are 401 — the subject is client-supplied
// data, so a malformed UUID is never a server error. Payload validation only
// happens after this gate so unauthenticated callers learn nothing about
// body requirements.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			h.Logger.Warn("malformed subject in token", "subject", claims.Subject)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := ContextWithUser(r.Context(), &AuthUser{ID: userID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
