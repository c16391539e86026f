package router

import (
	"net/http"

	_ "cattery-storefront/docs"
	mem "cattery-storefront/internal/adapters/storage/memory"
	"cattery-storefront/internal/domain/admin"
	"cattery-storefront/internal/domain/catalog"
	"cattery-storefront/internal/domain/inquiries"
	"cattery-storefront/internal/domain/session"
	"cattery-storefront/internal/domain/uploads"
	"cattery-storefront/internal/middleware"
	"cattery-storefront/internal/ports/auth"
	"cattery-storefront/internal/ports/media"
	"cattery-storefront/internal/ports/notify"
	"cattery-storefront/internal/ports/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Opcional: si no viene, store in-memory (dev).
	Store store.RecordStore

	// nil = sin back-office: no se montan /admin ni login.
	Auth auth.Authenticator

	Uploader media.Uploader  // puede ser nil (imagekit sin configurar)
	Notifier notify.Notifier // puede ser nil (no se avisa)

	OperatorEmail string
	AdminPrefix   string // default "/admin"
	LoginPath     string // default "/auth/login"

	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.AdminPrefix == "" {
		opts.AdminPrefix = "/admin"
	}
	if opts.LoginPath == "" {
		opts.LoginPath = "/auth/login"
	}

	st := opts.Store
	if st == nil {
		log.Warn("no store configured, using in-memory records")
		st = mem.NewRecordsRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLog(log))

	if opts.Auth != nil {
		r.Use(middleware.SessionGate(opts.Auth, middleware.GateConfig{
			AdminPrefix: opts.AdminPrefix,
			LoginPath:   opts.LoginPath,
		}, log))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	catalogSvc := catalog.NewService(st, log)
	inquiriesSvc := inquiries.NewService(st, opts.Notifier, opts.OperatorEmail, log)

	// Rutas públicas
	catalog.RegisterRoutes(r, catalogSvc)
	inquiries.RegisterRoutes(r, inquiriesSvc)
	uploads.RegisterRoutes(r, opts.Uploader, log)

	if opts.Auth == nil {
		log.Warn("no auth provider configured, admin area disabled")
		return r
	}

	session.RegisterRoutes(r, opts.Auth, session.Paths{
		AdminRoot: opts.AdminPrefix,
		LoginPath: opts.LoginPath,
	}, log)

	adminSvc := admin.NewService(st, catalogSvc, opts.Uploader, log)
	r.Route(opts.AdminPrefix, func(ar chi.Router) {
		admin.RegisterRoutes(ar, adminSvc, log)
		inquiries.RegisterAdminRoutes(ar, inquiriesSvc)
	})

	return r
}
