package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cattery-cms/internal/adapters/auth/jwt"
	"cattery-cms/internal/adapters/storage/sqldb"
	"cattery-cms/internal/domain/admin"
	"cattery-cms/internal/platform/config"
	"cattery-cms/internal/platform/logger"
	"cattery-cms/internal/router"
	"cattery-cms/internal/seed"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "cattery",
		Short:         "API y sitio del criadero",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "archivo .env opcional")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), envFile)
		},
	}

	var password string
	reset := &cobra.Command{
		Use:   "reset-admin-password",
		Short: "Reemplaza la contraseña de admin guardada",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResetPassword(cmd.Context(), envFile, password)
		},
	}
	reset.Flags().StringVar(&password, "password", "", "nueva contraseña (mínimo 6 caracteres)")
	_ = reset.MarkFlagRequired("password")

	root.AddCommand(serve, reset)
	// sin subcomando => serve
	root.RunE = serve.RunE
	return root
}

func setup(envFile string) (config.Config, logger.Logger, *sqldb.DB, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	format := logger.ParseFormat(cfg.LogFormat)
	if cfg.LogFormat == "" && cfg.IsProduction() {
		format = logger.FormatJSON
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: format,
		App:    cfg.AppName,
	})

	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, using in-memory storage", nil)
		return cfg, log, nil, nil
	}

	db, err := sqldb.Open(cfg.DatabaseURL)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqldb.Migrate(context.Background(), db); err != nil {
		_ = db.Close()
		return config.Config{}, nil, nil, err
	}
	log.Info("database ready", map[string]any{"dialect": string(db.Dialect())})
	return cfg, log, db, nil
}

func runServe(ctx context.Context, envFile string) error {
	cfg, log, db, err := setup(envFile)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	f, err := seed.Default()
	if err != nil {
		return err
	}

	h, err := router.NewRouter(ctx, router.Options{
		Config: cfg,
		Logger: log,
		DB:     db,
		Seed:   &f,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "environment": cfg.Environment})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runResetPassword(ctx context.Context, envFile, password string) error {
	cfg, log, db, err := setup(envFile)
	if err != nil {
		return err
	}
	if db == nil {
		return errors.New("reset-admin-password needs DATABASE_URL: in-memory storage does not persist")
	}
	defer db.Close()

	signer, err := jwt.NewSigner(jwt.Config{SecretKey: cfg.SecretKey, TTL: cfg.TokenTTL})
	if err != nil {
		return err
	}

	svc := admin.NewService(router.NewStores(db).Settings, signer)
	if err := svc.ResetPassword(ctx, password); err != nil {
		return err
	}
	log.Info("admin password reset", nil)
	return nil
}
