package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cattery-cms/internal/platform/logger"
	"cattery-cms/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// handlers son los cinco endpoints de una colección.
type handlers struct {
	list, get, create, update, remove http.HandlerFunc
}

// mount registra el CRUD bajo path. Las lecturas son públicas; las escrituras pasan por requireAdmin.
func mount(r chi.Router, path string, h handlers, requireAdmin func(http.Handler) http.Handler) {
	r.Route(path, func(cr chi.Router) {
		cr.Get("/", h.list)
		cr.Get("/{id}", h.get)

		cr.Group(func(ar chi.Router) {
			ar.Use(requireAdmin)
			ar.Post("/", h.create)
			ar.Put("/{id}", h.update)
			ar.Delete("/{id}", h.remove)
		})
	})
}

// Cada colección tiene sus propios wrappers para que swag documente la ruta y
// el tipo concretos. La lógica es la genérica de más abajo.

// RegisterKittenRoutes monta /api/kittens.
func RegisterKittenRoutes(r chi.Router, svc *Service[Kitten], requireAdmin func(http.Handler) http.Handler) {
	mount(r, "/api/kittens", handlers{
		list:   listKittens(svc),
		get:    getKitten(svc),
		create: createKitten(svc),
		update: updateKitten(svc),
		remove: deleteKitten(svc),
	}, requireAdmin)
}

// listKittens godoc
// @Summary Listar kittens
// @Tags kittens
// @Produce json
// @Param available_only query bool false "solo disponibles"
// @Success 200 {array} Kitten
// @Router /api/kittens [get]
func listKittens(svc *Service[Kitten]) http.HandlerFunc { return listHandler(svc) }

// getKitten godoc
// @Summary Obtener Kitten
// @Tags kittens
// @Produce json
// @Param id path int true "id"
// @Success 200 {object} Kitten
// @Failure 404 {object} respond.ErrorBody
// @Router /api/kittens/{id} [get]
func getKitten(svc *Service[Kitten]) http.HandlerFunc { return getHandler(svc, "Kitten") }

// createKitten godoc
// @Summary Crear Kitten
// @Tags kittens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body Kitten true "Kitten"
// @Success 201 {object} Kitten
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /api/kittens [post]
func createKitten(svc *Service[Kitten]) http.HandlerFunc { return createHandler(svc, "Kitten") }

// updateKitten godoc
// @Summary Actualizar Kitten
// @Tags kittens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "id"
// @Param payload body Kitten true "Kitten"
// @Success 200 {object} Kitten
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /api/kittens/{id} [put]
func updateKitten(svc *Service[Kitten]) http.HandlerFunc { return updateHandler(svc, "Kitten") }

// deleteKitten godoc
// @Summary Borrar Kitten
// @Tags kittens
// @Produce json
// @Security BearerAuth
// @Param id path int true "id"
// @Success 200 {object} respond.MessageBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /api/kittens/{id} [delete]
func deleteKitten(svc *Service[Kitten]) http.HandlerFunc { return deleteHandler(svc, "Kitten") }

// RegisterParentRoutes monta /api/parents.
func RegisterParentRoutes(r chi.Router, svc *Service[Parent], requireAdmin func(http.Handler) http.Handler) {
	mount(r, "/api/parents", handlers{
		list:   listParents(svc),
		get:    getParent(svc),
		create: createParent(svc),
		update: updateParent(svc),
		remove: deleteParent(svc),
	}, requireAdmin)
}

// listParents godoc
// @Summary Listar parents
// @Tags parents
// @Produce json
// @Success 200 {array} Parent
// @Router /api/parents [get]
func listParents(svc *Service[Parent]) http.HandlerFunc { return listHandler(svc) }

// getParent godoc
// @Summary Obtener Parent
// @Tags parents
// @Produce json
// @Param id path int true "id"
// @Success 200 {object} Parent
// @Failure 404 {object} respond.ErrorBody
// @Router /api/parents/{id} [get]
func getParent(svc *Service[Parent]) http.HandlerFunc { return getHandler(svc, "Parent") }

// createParent godoc
// @Summary Crear Parent
// @Tags parents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body Parent true "Parent"
// @Success 201 {object} Parent
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /api/parents [post]
func createParent(svc *Service[Parent]) http.HandlerFunc { return createHandler(svc, "Parent") }

// updateParent godoc
// @Summary Actualizar Parent
// @Tags parents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "id"
// @Param payload body Parent true "Parent"
// @Success 200 {object} Parent
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /api/parents/{id} [put]
func updateParent(svc *Service[Parent]) http.HandlerFunc { return updateHandler(svc, "Parent") }

// deleteParent godoc
// @Summary Borrar Parent
// @Tags parents
// @Produce json
// @Security BearerAuth
// @Param id path int true "id"
// @Success 200 {object} respond.MessageBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /api/parents/{id} [delete]
func deleteParent(svc *Service[Parent]) http.HandlerFunc { return deleteHandler(svc, "Parent") }

// RegisterProductRoutes monta /api/products.
func RegisterProductRoutes(r chi.Router, svc *Service[Product], requireAdmin func(http.Handler) http.Handler) {
	mount(r, "/api/products", handlers{
		list:   listProducts(svc),
		get:    getProduct(svc),
		create: createProduct(svc),
		update: updateProduct(svc),
		remove: deleteProduct(svc),
	}, requireAdmin)
}

// listProducts godoc
// @Summary Listar products
// @Tags products
// @Produce json
// @Param available_only query bool false "solo disponibles"
// @Param category query string false "categoría exacta"
// @Success 200 {array} Product
// @Router /api/products [get]
func listProducts(svc *Service[Product]) http.HandlerFunc { return listHandler(svc) }

// getProduct godoc
// @Summary Obtener Product
// @Tags products
// @Produce json
// @Param id path int true "id"
// @Success 200 {object} Product
// @Failure 404 {object} respond.ErrorBody
// @Router /api/products/{id} [get]
func getProduct(svc *Service[Product]) http.HandlerFunc { return getHandler(svc, "Product") }

// createProduct godoc
// @Summary Crear Product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body Product true "Product"
// @Success 201 {object} Product
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /api/products [post]
func createProduct(svc *Service[Product]) http.HandlerFunc { return createHandler(svc, "Product") }

// updateProduct godoc
// @Summary Actualizar Product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "id"
// @Param payload body Product true "Product"
// @Success 200 {object} Product
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /api/products/{id} [put]
func updateProduct(svc *Service[Product]) http.HandlerFunc { return updateHandler(svc, "Product") }

// deleteProduct godoc
// @Summary Borrar Product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "id"
// @Success 200 {object} respond.MessageBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /api/products/{id} [delete]
func deleteProduct(svc *Service[Product]) http.HandlerFunc { return deleteHandler(svc, "Product") }

// listHandler devuelve la colección en orden de creación, filtrada por query.
func listHandler[T Record[T]](svc *Service[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), parseFilter(r))
		if err != nil {
			logger.FromContext(r.Context()).Error("list failed", map[string]any{"err": err, "path": r.URL.Path})
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if items == nil {
			items = []T{}
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// getHandler busca por id; un id no numérico es 404, igual que uno inexistente.
func getHandler[T Record[T]](svc *Service[T], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			respond.Error(w, http.StatusNotFound, label+" not found")
			return
		}
		rec, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, label)
			return
		}
		respond.JSON(w, http.StatusOK, rec)
	}
}

func createHandler[T Record[T]](svc *Service[T], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec T
		if err := respond.Decode(r, &rec); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := svc.Create(r.Context(), rec)
		if err != nil {
			writeServiceError(w, r, err, label)
			return
		}

		logger.FromContext(r.Context()).Info(strings.ToLower(label)+" created", map[string]any{"id": created.GetID()})
		respond.JSON(w, http.StatusCreated, created)
	}
}

// updateHandler reemplaza el registro completo; id y created_at no cambian.
func updateHandler[T Record[T]](svc *Service[T], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			respond.Error(w, http.StatusNotFound, label+" not found")
			return
		}

		var rec T
		if err := respond.Decode(r, &rec); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		updated, err := svc.Update(r.Context(), id, rec)
		if err != nil {
			writeServiceError(w, r, err, label)
			return
		}
		respond.JSON(w, http.StatusOK, updated)
	}
}

// deleteHandler borra sin confirmar: confirmar es cosa del cliente.
func deleteHandler[T Record[T]](svc *Service[T], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			respond.Error(w, http.StatusNotFound, label+" not found")
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, label)
			return
		}

		logger.FromContext(r.Context()).Info(strings.ToLower(label)+" deleted", map[string]any{"id": id})
		respond.Message(w, label+" deleted successfully")
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, label string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, label+" not found")
	default:
		logger.FromContext(r.Context()).Error("catalog operation failed", map[string]any{"err": err, "path": r.URL.Path})
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseFilter(r *http.Request) Filter {
	q := r.URL.Query()
	available, _ := strconv.ParseBool(q.Get("available_only"))
	return Filter{
		AvailableOnly: available,
		Category:      strings.TrimSpace(q.Get("category")),
	}
}
