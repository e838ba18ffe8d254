package content

import (
	"errors"
	"net/http"
	"time"

	"cattery-cms/internal/platform/logger"
	"cattery-cms/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, requireAdmin func(http.Handler) http.Handler) {
	r.Get("/api/content/{pageName}", getContentHandler(svc))
	r.With(requireAdmin).Put("/api/content", putContentHandler(svc))
}

// envelopeRequest es el cuerpo del PUT: el documento viaja serializado en "content".
type envelopeRequest struct {
	PageName string `json:"page_name"`
	Content  string `json:"content"`
}

type envelopeResponse struct {
	ID        int64     `json:"id"`
	PageName  string    `json:"page_name"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// getContentHandler godoc
// @Summary Obtener contenido de una página
// @Description Devuelve el envelope {page_name, content}; content es un JSON serializado que el servidor no interpreta.
// @Tags content
// @Produce json
// @Param pageName path string true "home | care | about | social_media"
// @Success 200 {object} envelopeResponse
// @Failure 404 {object} respond.ErrorBody
// @Router /api/content/{pageName} [get]
func getContentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.Get(r.Context(), chi.URLParam(r, "pageName"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusNotFound, "Page content not found")
			default:
				logger.FromContext(r.Context()).Error("get content failed", map[string]any{"err": err})
				respond.Error(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		respond.JSON(w, http.StatusOK, toEnvelopeResponse(e))
	}
}

// putContentHandler godoc
// @Summary Sobrescribir contenido de una página
// @Description Reemplaza el documento completo (last write wins). Crea la página si no existe.
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body envelopeRequest true "page_name + content serializado"
// @Success 200 {object} envelopeResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /api/content [put]
func putContentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req envelopeRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		e, err := svc.Put(r.Context(), req.PageName, req.Content)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.FromContext(r.Context()).Error("put content failed", map[string]any{"err": err, "page": req.PageName})
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		logger.FromContext(r.Context()).Info("content updated", map[string]any{"page": e.PageName, "bytes": len(e.Content)})
		respond.JSON(w, http.StatusOK, toEnvelopeResponse(e))
	}
}

func toEnvelopeResponse(e Envelope) envelopeResponse {
	return envelopeResponse{
		ID:        e.ID,
		PageName:  e.PageName,
		Content:   e.Content,
		UpdatedAt: e.UpdatedAt,
	}
}
