package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/auth"
	"github.com/Totarae/shortlink/internal/handlers"
	"github.com/Totarae/shortlink/internal/middleware"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/storage"
)

// Deps зависимости маршрутизатора.
type Deps struct {
	Handler   *handlers.Handler
	Verifier  *auth.Verifier
	Blacklist auth.Blacklist
	// RequestLog приёмник журнала запросов, nil отключает журнал.
	RequestLog storage.RequestLogStore
	Logger     *zap.Logger
}

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()
	h := d.Handler

	r.Use(chimw.RealIP)
	r.Use(middleware.LoggingMiddleware(d.Logger)) // Подключаем логирование
	r.Use(chimw.Recoverer)
	if d.RequestLog != nil {
		r.Use(middleware.RequestLogMiddleware(d.RequestLog, d.Logger))
	}
	r.Use(middleware.GzipMiddleware(d.Logger)) // Gzip-сжатие

	authenticated := middleware.Guards(d.Logger,
		middleware.Authenticate(d.Verifier),
		middleware.NotBlacklisted(d.Blacklist),
	)
	enterprise := middleware.Guards(d.Logger,
		middleware.Authenticate(d.Verifier),
		middleware.NotBlacklisted(d.Blacklist),
		middleware.RequireTier(model.TierEnterprise),
	)

	r.Get("/", h.Root)
	r.Get("/ping", h.Ping)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.GetUsers)
	})

	r.Route("/urls", func(r chi.Router) {
		r.Get("/redirect", h.Redirect)
		r.Get("/qrcode/{code}", h.QRCode)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/", h.ListURLs)
			r.Post("/shorten", h.Shorten)
			r.Delete("/shortcode/{code}", h.DeleteURL)
			r.Patch("/{id}", h.UpdateURL)
		})

		r.With(enterprise).Post("/shorten/batch", h.ShortenBatch)
	})

	return r
}
