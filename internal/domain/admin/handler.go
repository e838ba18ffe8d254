package admin

import (
	"errors"
	"net/http"

	"cattery-cms/internal/platform/logger"
	"cattery-cms/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, requireAdmin func(http.Handler) http.Handler) {
	r.Post("/api/admin/login", loginHandler(svc))
	r.With(requireAdmin).Post("/api/admin/change-password", changePasswordHandler(svc))
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Message       string `json:"message"`
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// loginHandler godoc
// @Summary Login de admin
// @Description Intercambia la contraseña compartida por un bearer token.
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body loginRequest true "contraseña"
// @Success 200 {object} loginResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /api/admin/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		tok, err := svc.Login(r.Context(), req.Password)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				logger.FromContext(r.Context()).Warn("admin login rejected", nil)
				respond.Error(w, http.StatusUnauthorized, "Incorrect password")
				return
			}
			logger.FromContext(r.Context()).Error("admin login failed", map[string]any{"err": err})
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		respond.JSON(w, http.StatusOK, loginResponse{
			Message:       "Login successful",
			Authenticated: true,
			Token:         tok.Value,
		})
	}
}

// changePasswordHandler godoc
// @Summary Cambiar contraseña de admin
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body changePasswordRequest true "actual y nueva"
// @Success 200 {object} respond.MessageBody
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /api/admin/change-password [post]
func changePasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changePasswordRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		err := svc.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword)
		switch {
		case err == nil:
			logger.FromContext(r.Context()).Info("admin password changed", nil)
			respond.Message(w, "Password changed successfully")
		case errors.Is(err, ErrUnauthorized):
			respond.Error(w, http.StatusUnauthorized, "Current password is incorrect")
		case errors.Is(err, ErrPasswordTooLong):
			respond.Error(w, http.StatusBadRequest, "New password must be at most 72 bytes")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(w, http.StatusBadRequest, "New password must be at least 6 characters")
		default:
			logger.FromContext(r.Context()).Error("change password failed", map[string]any{"err": err})
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}
	}
}
