// Package app wires together all dependencies of the storefront client.
package app

import (
	"log/slog"
	"time"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/api"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/config"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/form"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/session"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/store"
	"github.com/Srinath-230/e-commerce-frontend-app/pkg/httpclient"
)

// App holds the storefront's dependency graph: one backend client, one
// store per resource, and the session that coordinates them.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	API      *api.Client
	Products *store.ProductStore
	Cart     *store.CartStore
	Session  *session.Session
}

// New builds the application. confirm handles blocking yes/no prompts for
// destructive actions; notify delivers user-facing notices.
func New(cfg *config.Config, logger *slog.Logger, confirm session.Confirmer, notify store.Notifier) *App {
	base := httpclient.New(httpclient.Config{
		Timeout:         time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		MaxConnsPerHost: cfg.MaxConnsPerHost,
	})

	var doer api.Doer = base
	if cfg.CircuitBreakerEnabled {
		doer = httpclient.NewCircuitBreakerClient(
			base,
			httpclient.DefaultCircuitBreakerConfig("storefront-backend"),
			logger,
		)
		logger.Info("circuit breaker enabled for backend calls")
	}

	client := api.NewClient(cfg.APIBaseURL, doer, logger)

	products := store.NewProductStore(client, logger, notify)
	cart := store.NewCartStore(client, products, logger, notify)
	productForm := form.New(products)
	sess := session.New(products, cart, productForm, client, confirm, notify, logger)

	logger.Info("storefront client initialized",
		slog.String("backend", cfg.APIBaseURL),
		slog.String("environment", cfg.Environment),
	)

	return &App{
		cfg:      cfg,
		logger:   logger,
		API:      client,
		Products: products,
		Cart:     cart,
		Session:  sess,
	}
}
