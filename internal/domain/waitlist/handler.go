package waitlist

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cattery-cms/internal/platform/logger"
	"cattery-cms/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/waiting-list", func(wr chi.Router) {
		// Alta pública
		wr.Post("/", appendEntryHandler(svc))

		wr.With(requireAdmin).Get("/", listEntriesHandler(svc))
		wr.With(requireAdmin).Delete("/{id}", deleteEntryHandler(svc))
	})
}

type appendEntryRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Preferences string `json:"preferences"`
}

type entryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Preferences string    `json:"preferences"`
	CreatedAt   time.Time `json:"created_at"`
}

// appendEntryHandler godoc
// @Summary Anotarse en la lista de espera
// @Description Endpoint público. El servidor asigna id y created_at.
// @Tags waiting-list
// @Accept json
// @Produce json
// @Param payload body appendEntryRequest true "datos de contacto"
// @Success 201 {object} entryResponse
// @Failure 400 {object} respond.ErrorBody
// @Router /api/waiting-list [post]
func appendEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appendEntryRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		e, err := svc.Append(r.Context(), AppendInput{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			Preferences: req.Preferences,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.FromContext(r.Context()).Error("waiting list append failed", map[string]any{"err": err})
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		logger.FromContext(r.Context()).Info("waiting list entry added", map[string]any{"id": e.ID})
		respond.JSON(w, http.StatusCreated, toEntryResponse(e))
	}
}

// listEntriesHandler godoc
// @Summary Listar lista de espera
// @Tags waiting-list
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entryResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /api/waiting-list [get]
func listEntriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("waiting list failed", map[string]any{"err": err})
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// deleteEntryHandler godoc
// @Summary Quitar de la lista de espera
// @Tags waiting-list
// @Produce json
// @Security BearerAuth
// @Param id path int true "id"
// @Success 200 {object} respond.MessageBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /api/waiting-list/{id} [delete]
func deleteEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "Entry not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Error(w, http.StatusNotFound, "Entry not found")
				return
			}
			logger.FromContext(r.Context()).Error("waiting list delete failed", map[string]any{"err": err, "id": id})
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond.Message(w, "Entry removed successfully")
	}
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Preferences: e.Preferences,
		CreatedAt:   e.CreatedAt,
	}
}
