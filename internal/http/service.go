package http

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/tvmai/merchant-admin/internal/config"
	"github.com/tvmai/merchant-admin/internal/form"
	"github.com/tvmai/merchant-admin/internal/http/metric"
	"github.com/tvmai/merchant-admin/internal/http/middleware"
	"github.com/tvmai/merchant-admin/internal/http/render"
	"github.com/tvmai/merchant-admin/internal/review"
	"github.com/tvmai/merchant-admin/internal/service"
	"github.com/tvmai/merchant-admin/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics

	catalogSvc service.CatalogService
	journal    *review.Journal
	decoder    *form.Decoder
	renderer   *render.Renderer
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	catalogSvc service.CatalogService,
	journal *review.Journal,
) (*Service, error) {
	v, err := validator.NewDefaultValidator()
	if err != nil {
		return nil, fmt.Errorf("create validator: %w", err)
	}

	renderer, err := render.New(log)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Service{
		cfg:        cfg,
		logger:     log.With(slog.String("service", "http")),
		metrics:    metric.New(),
		catalogSvc: catalogSvc,
		journal:    journal,
		decoder:    form.NewDecoder(v),
		renderer:   renderer,
	}, nil
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)
	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	handler := newProductHandler(s.catalogSvc, s.journal, s.decoder, s.renderer, s.logger)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, service.ListingPath, http.StatusSeeOther)
	})
	r.Get("/products", handler.ListProducts)
	r.Get("/products/new", handler.NewProduct)
	r.Post("/products/new", handler.CreateProduct)
	r.Get("/products/review", handler.ReviewProducts)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}
