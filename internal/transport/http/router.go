package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-site-showcase/internal/service"
	"github.com/pribylovaa/go-site-showcase/internal/transport/http/handlers"
	"github.com/pribylovaa/go-site-showcase/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	Metrics  *middleware.HTTPMetrics // nil — метрики выключены.
	BasePath string                  // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Metrics != nil {
		root.Use(middleware.Metrics(opts.Metrics, chiRoutePattern))
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// websites
	r.Get("/websites", h.ListWebsites)
	r.Get("/websites/sitemap", h.Sitemap)
	r.Get("/websites/{id}", h.GetWebsiteByID)
	r.Get("/websites/{id}/adjacent", h.AdjacentWebsites)
	r.Post("/websites/{id}/views", h.IncrementViews)

	// categories
	r.Get("/categories/counts", h.CategoryCounts)
}

// chiRoutePattern — шаблон маршрута для лейблов метрик
// (заполняется chi после маршрутизации).
func chiRoutePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		return rc.RoutePattern()
	}

	return ""
}
