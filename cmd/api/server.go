package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/5w1tchy/nexus-admin/internal/api/handlers/admin"
	"github.com/5w1tchy/nexus-admin/internal/api/handlers/ui"
	"github.com/5w1tchy/nexus-admin/internal/api/router"
	"github.com/5w1tchy/nexus-admin/internal/audit"
	"github.com/5w1tchy/nexus-admin/internal/auth"
	"github.com/5w1tchy/nexus-admin/internal/catalog"
	"github.com/5w1tchy/nexus-admin/internal/config"
	"github.com/5w1tchy/nexus-admin/internal/logging"
	"github.com/5w1tchy/nexus-admin/internal/maintenance"
	"github.com/5w1tchy/nexus-admin/internal/metrics"
	"github.com/5w1tchy/nexus-admin/internal/profile"
	"github.com/5w1tchy/nexus-admin/internal/reports"
	"github.com/5w1tchy/nexus-admin/internal/security/password"
	"github.com/5w1tchy/nexus-admin/internal/settings"
	s3store "github.com/5w1tchy/nexus-admin/internal/storage/s3"
	"github.com/5w1tchy/nexus-admin/internal/uistate"
)

// demoPassword is accepted when ADMIN_PASSWORD_HASH is unset.
const demoPassword = "12345678"

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			for _, w := range cfg.HardeningWarnings() {
				logger.Warn(w)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	rdb, err := newRedis(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	var store *s3store.S3Client
	if cfg.S3.Enabled() {
		if store, err = s3store.NewFromConfig(ctx, cfg.S3); err != nil {
			return err
		}
		logger.Info("object storage enabled", zap.String("bucket", cfg.S3.Bucket))
	}

	m := metrics.New()
	prof := profile.NewStore(profile.Default())
	cat := catalog.New(catalog.Options{
		Fold:          cfg.FoldAccents,
		Delay:         cfg.ModalDelay,
		CommentAuthor: prof.DisplayName,
	})
	m.WatchCollections(cat.Counts)

	auditLog := audit.NewLog()
	queue := audit.NewQueue(auditLog, cfg.AuditBuffer, m, logger)
	queue.Start(cfg.AuditWorkers)

	reportOpts := reports.Options{Delay: cfg.ReportDelay, Placeholder: cfg.ReportPDFURL}
	adminH := admin.NewHandler(cat, auditLog, queue, rdb, logger)
	adminH.Profile = prof
	adminH.Settings = settings.NewStore(settings.Defaults(), cfg.SettingsDelay)
	adminH.StatsTTL = cfg.DashboardCacheTTL
	if store != nil {
		adminH.Uploader = store
		reportOpts.Signer = store
	}
	adminH.Reports = reports.New(reportOpts)
	adminH.RegisterMaintenance(cfg.CacheClearDelay, cfg.LogArchiveDelay, cfg.AuditKeep)

	hasher := password.NewHasher(password.ParamsFromEnv())
	hash := cfg.AdminPasswordHash
	if hash == "" {
		if hash, err = hasher.Hash(demoPassword); err != nil {
			return err
		}
	}
	authH := auth.New(auth.Credentials{Username: cfg.AdminUsername, PasswordHash: hash}, hasher, logger)

	handler, stopLimiters := router.Router(router.Deps{
		Cfg:     cfg,
		Log:     logger,
		RDB:     rdb,
		Catalog: cat,
		Admin:   adminH,
		Auth:    authH,
		UI:      ui.New(uistate.NewSidebar(), uistate.NewTheme(false)),
		Audit:   queue,
		Metrics: m,
	})
	defer stopLimiters()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
	}

	hour, minute, err := config.ParseClock(cfg.RetentionAt)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", cfg.Addr), zap.Bool("tls", cfg.TLSCert != ""))
		var err error
		if cfg.TLSCert != "" {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutCtx)
		queue.Shutdown()
		logger.Info("server stopped", zap.Uint64("audit_dropped", queue.Dropped()))
		return err
	})
	g.Go(func() error {
		return maintenance.RunAuditRetention(gctx, auditLog, cfg.AuditKeep, hour, minute, cfg.RetentionTZ, logger)
	})
	return g.Wait()
}
