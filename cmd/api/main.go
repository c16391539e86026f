// Command api levanta el backend HTTP de la criadería.
//
// @title Cattery Storefront API
// @version 1.0
// @description Catálogo público, consultas y back-office de la criadería.
// @BasePath /
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cattery-storefront/internal/adapters/auth/local"
	"cattery-storefront/internal/adapters/auth/supabase"
	"cattery-storefront/internal/adapters/mail"
	"cattery-storefront/internal/adapters/media/imagekit"
	pg "cattery-storefront/internal/adapters/storage/postgres"
	"cattery-storefront/internal/config"
	"cattery-storefront/internal/migrate"
	"cattery-storefront/internal/platform/httpclient"
	"cattery-storefront/internal/platform/logger"
	"cattery-storefront/internal/ports/auth"
	"cattery-storefront/internal/ports/notify"
	"cattery-storefront/internal/ports/store"
	"cattery-storefront/internal/router"

	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "path to config.yaml (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Store: Postgres si hay DSN, si no in-memory (dev)
	var st store.RecordStore
	if cfg.Database.DSN != "" {
		if cfg.Database.MigrateOnStart {
			if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
				log.Fatal("migrate up", zap.Error(err))
			}
		}
		db, err := pg.Open(ctx, cfg.Database.DSN)
		if err != nil {
			log.Fatal("open postgres", zap.Error(err))
		}
		defer db.Close()
		st = pg.NewRecordsRepo(db)
	} else {
		log.Warn("DB_DSN not set, using in-memory store (data is lost on restart)")
	}

	r := router.NewRouter(router.Options{
		Store:         st,
		Auth:          newAuthenticator(cfg, log),
		Uploader:      newUploader(cfg),
		Notifier:      newNotifier(cfg, log),
		OperatorEmail: cfg.Email.AdminEmail,
		AdminPrefix:   cfg.Auth.AdminPrefix,
		LoginPath:     cfg.Auth.LoginPath,
		Logger:        log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
			_ = srv.Close()
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	log.Info("shutdown complete")
}

// newAuthenticator devuelve nil si el proveedor elegido no está configurado;
// en ese caso el router no monta el back-office.
func newAuthenticator(cfg *config.Config, log *zap.Logger) auth.Authenticator {
	switch cfg.Auth.Provider {
	case "supabase":
		c, err := supabase.NewClient(supabase.Config{
			URL:          cfg.Auth.Supabase.URL,
			AnonKey:      cfg.Auth.Supabase.AnonKey,
			JWTSecret:    cfg.Auth.Supabase.JWTSecret,
			CookieSecure: cfg.Auth.CookieSecure,
		})
		if err != nil {
			log.Error("supabase auth disabled", zap.Error(err))
			return nil
		}
		return c
	default:
		a, err := local.New(local.Config{
			AdminEmail:        cfg.Auth.Local.AdminEmail,
			AdminPasswordHash: cfg.Auth.Local.AdminPasswordHash,
			SigningKey:        cfg.Auth.Local.SigningKey,
			TTL:               cfg.Auth.Local.TTL,
			CookieSecure:      cfg.Auth.CookieSecure,
		})
		if err != nil {
			log.Warn("local auth disabled", zap.Error(err))
			return nil
		}
		return a
	}
}

func newUploader(cfg *config.Config) *imagekit.Client {
	return imagekit.New(imagekit.Config{
		PublicKey:     cfg.ImageKit.PublicKey,
		PrivateKey:    cfg.ImageKit.PrivateKey,
		UploadURL:     cfg.ImageKit.UploadURL,
		DefaultFolder: cfg.ImageKit.Folder,
	}, httpclient.New(0))
}

// newNotifier: sin host SMTP los avisos solo quedan en el log.
func newNotifier(cfg *config.Config, log *zap.Logger) notify.Notifier {
	n, err := mail.NewSMTPNotifier(mail.SMTPOptions{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		UseSSL:   cfg.Email.UseSSL,
		User:     cfg.Email.User,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
		FromName: cfg.Email.FromName,
	})
	if err != nil {
		log.Warn("smtp disabled, notifications go to the log", zap.Error(err))
		return mail.NewLogNotifier(log)
	}
	return n
}
