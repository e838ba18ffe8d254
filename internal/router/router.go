package router

import (
	"context"
	"fmt"
	"net/http"

	_ "cattery-cms/docs"
	"cattery-cms/internal/adapters/auth/jwt"
	"cattery-cms/internal/adapters/storage/sqldb"
	"cattery-cms/internal/domain/admin"
	"cattery-cms/internal/domain/catalog"
	"cattery-cms/internal/domain/content"
	"cattery-cms/internal/domain/waitlist"
	"cattery-cms/internal/middleware"
	"cattery-cms/internal/platform/config"
	"cattery-cms/internal/platform/logger"
	"cattery-cms/internal/platform/respond"
	"cattery-cms/internal/ports/auth"
	"cattery-cms/internal/seed"
	"cattery-cms/internal/site"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Tokens emite y verifica los bearer tokens de admin.
type Tokens interface {
	auth.TokenIssuer
	auth.AuthVerifier
}

type Options struct {
	Config config.Config
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa SQL. Si no, in-memory.
	DB *sqldb.DB

	// Opcional: si no viene se arma un firmador JWT con SECRET_KEY.
	Tokens Tokens

	// Si viene, se aplica al arrancar (idempotente).
	Seed *seed.File
}

type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

// healthHandler godoc
// @Summary Estado del servicio
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /api/health [get]
func healthHandler(environment string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, healthResponse{Status: "healthy", Environment: environment})
	}
}

func NewRouter(ctx context.Context, opts Options) (http.Handler, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	tokens := opts.Tokens
	if tokens == nil {
		signer, err := jwt.NewSigner(jwt.Config{SecretKey: cfg.SecretKey, TTL: cfg.TokenTTL})
		if err != nil {
			return nil, fmt.Errorf("router: %w", err)
		}
		tokens = signer
	}

	stores := NewStores(opts.DB)

	// Services por módulo
	contentSvc := content.NewService(stores.Content)
	kittensSvc := catalog.NewService(stores.Kittens)
	parentsSvc := catalog.NewService(stores.Parents)
	productsSvc := catalog.NewService(stores.Products)
	waitlistSvc := waitlist.NewService(stores.Waitlist)
	adminSvc := admin.NewService(stores.Settings, tokens)

	if opts.Seed != nil {
		err := seed.Apply(ctx, *opts.Seed, seed.Targets{
			Content:  contentSvc,
			Kittens:  kittensSvc,
			Parents:  parentsSvc,
			Admin:    adminSvc,
			Password: cfg.DefaultAdminPassword,
		}, log)
		if err != nil {
			return nil, err
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.AuthContext(tokens))

	r.Get("/api/health", healthHandler(cfg.Environment))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	content.RegisterRoutes(r, contentSvc, middleware.RequireAdmin)
	catalog.RegisterKittenRoutes(r, kittensSvc, middleware.RequireAdmin)
	catalog.RegisterParentRoutes(r, parentsSvc, middleware.RequireAdmin)
	catalog.RegisterProductRoutes(r, productsSvc, middleware.RequireAdmin)
	waitlist.RegisterRoutes(r, waitlistSvc, middleware.RequireAdmin)
	admin.RegisterRoutes(r, adminSvc, middleware.RequireAdmin)

	// Frontend: index con SEO, estáticos y fallback del SPA
	site.NewHandler(contentSvc, site.Options{
		SiteURL:     cfg.SiteURL,
		FrontendDir: cfg.FrontendDir,
		ImagesDir:   cfg.ImagesDir,
	}).Mount(r)

	return r, nil
}
