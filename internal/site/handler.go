// Package site sirve el frontend compilado: index.html con SEO inyectado,
// imágenes y assets estáticos, y el fallback de rutas del SPA.
package site

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cattery-cms/internal/domain/content"
	"cattery-cms/internal/platform/logger"
	"cattery-cms/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

type Options struct {
	SiteURL     string
	FrontendDir string
	ImagesDir   string
}

type Handler struct {
	content *content.Service
	opts    Options
}

func NewHandler(svc *content.Service, opts Options) *Handler {
	return &Handler{content: svc, opts: opts}
}

type statusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Mount registra "/", /images, /assets y el NotFound del router como fallback del SPA.
func (h *Handler) Mount(r chi.Router) {
	if isDir(h.opts.ImagesDir) {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(h.opts.ImagesDir))))
	}
	if assets := filepath.Join(h.opts.FrontendDir, "assets"); isDir(assets) {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(assets))))
	}

	r.Get("/", h.root)
	r.NotFound(h.spa)
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if h.serveIndex(w, r) {
		return
	}
	respond.JSON(w, http.StatusOK, statusResponse{Message: "Abyssinian Cat Breeder API", Status: "running"})
}

func (h *Handler) spa(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		respond.Error(w, http.StatusNotFound, "Not found")
		return
	}

	rel := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	for _, prefix := range []string{"api/", "images/", "assets/"} {
		if strings.HasPrefix(rel+"/", prefix) {
			respond.Error(w, http.StatusNotFound, "Not found")
			return
		}
	}

	// robots.txt, sitemap.xml y similares se sirven tal cual
	if rel != "" && !strings.HasSuffix(rel, ".html") && h.opts.FrontendDir != "" {
		file := filepath.Join(h.opts.FrontendDir, filepath.FromSlash(rel))
		if isFile(file) {
			http.ServeFile(w, r, file)
			return
		}
	}

	if h.serveIndex(w, r) {
		return
	}
	respond.Error(w, http.StatusNotFound, "Not found")
}

// serveIndex devuelve false si no hay build del frontend.
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) bool {
	if h.opts.FrontendDir == "" {
		return false
	}
	raw, err := os.ReadFile(filepath.Join(h.opts.FrontendDir, "index.html"))
	if err != nil {
		return false
	}

	blocks, err := BuildBlocks(h.opts.SiteURL, h.loadPages(r.Context()))
	if err != nil {
		// sin SEO la página igual sirve
		logger.FromContext(r.Context()).Error("seo build failed", map[string]any{"err": err})
	} else {
		raw = Inject(raw, blocks)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
	return true
}

func (h *Handler) loadPages(ctx context.Context) Pages {
	log := logger.FromContext(ctx)

	raw := func(page string) string {
		e, err := h.content.Get(ctx, page)
		if err != nil {
			if !errors.Is(err, content.ErrNotFound) {
				log.Warn("seo content unavailable", map[string]any{"page": page, "err": err})
			}
			return ""
		}
		return e.Content
	}

	// con error de parseo los Decode* devuelven el default de la página
	var (
		p   Pages
		err error
	)
	if p.Home, err = content.DecodeHome(raw(content.PageHome)); err != nil {
		log.Warn("seo decode failed", map[string]any{"page": content.PageHome, "err": err})
	}
	if p.About, err = content.DecodeAbout(raw(content.PageAbout)); err != nil {
		log.Warn("seo decode failed", map[string]any{"page": content.PageAbout, "err": err})
	}
	if p.Social, err = content.DecodeSocialMedia(raw(content.PageSocialMedia)); err != nil {
		log.Warn("seo decode failed", map[string]any{"page": content.PageSocialMedia, "err": err})
	}
	return p
}

func isDir(p string) bool {
	if p == "" {
		return false
	}
	st, err := os.Stat(p)
	return err == nil && st.IsDir()
}

func isFile(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.Mode().IsRegular()
}
