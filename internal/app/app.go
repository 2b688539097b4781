// Package app wires the shop together: catalog seeding, in-memory state,
// HTTP surface, middleware, health probes, and graceful shutdown.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/shoplite/internal/catalog"
	"github.com/xenking/shoplite/internal/domain/bundle"
	"github.com/xenking/shoplite/internal/domain/cart"
	"github.com/xenking/shoplite/internal/domain/product"
	"github.com/xenking/shoplite/internal/domain/shop"
	"github.com/xenking/shoplite/internal/handler"
	"github.com/xenking/shoplite/internal/notify"
	"github.com/xenking/shoplite/internal/storage/memory"
	"github.com/xenking/shoplite/pkg/health"
	"github.com/xenking/shoplite/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	// Catalog seed: embedded sample data unless a file is configured.
	seed, err := catalog.Load(cfg.SeedFile)
	if err != nil {
		return errors.Wrap(err, "load catalog seed")
	}

	// In-memory state. Everything is explicitly constructed and injected;
	// state lives for the process lifetime only.
	inventory := memory.NewInventory()
	for _, sp := range seed.Products {
		inventory.Add(product.New(sp.Category, sp.Name, sp.Price, sp.Stock))
	}

	bundles := make([]*bundle.Bundle, 0, len(seed.Bundles))
	for _, sb := range seed.Bundles {
		members := make([]*product.Product, 0, len(sb.Products))
		for _, name := range sb.Products {
			p, err := inventory.GetByName(name)
			if err != nil {
				return errors.Wrapf(err, "resolve bundle %q member %q", sb.Name, name)
			}
			members = append(members, p)
		}
		bundles = append(bundles, bundle.New(sb.Name, members, sb.DiscountPercentage))
	}

	notifier := notify.New(lg.Named("notify"), cfg.NotifyBuffer)

	svc := shop.NewService(
		inventory,
		memory.NewBundles(bundles),
		cart.New(),
		memory.NewWishlist(),
		memory.NewReceipts(),
		notifier,
	)

	// Health probes.
	healthSvc := health.New()
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.SetReady(true)

	// Routes: health endpoints + API on one mux.
	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	handler.New(svc).Register(mux)

	wrapped := httpmiddleware.Wrap(mux,
		httpmiddleware.InjectLogger(lg),
		httpmiddleware.RequestID(),
		httpmiddleware.Recovery(),
		httpmiddleware.CORS(httpmiddleware.CORSConfig{
			AllowOrigins: cfg.CORS.Origins,
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       86400,
		}),
		httpmiddleware.RateLimit(ctx, httpmiddleware.RateLimitConfig{
			Max:    cfg.RateLimit.Max,
			Window: cfg.RateLimit.Window,
		}),
		httpmiddleware.Instrument("shoplite", m.MeterProvider()),
		httpmiddleware.LogRequests(),
	)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: otelhttp.NewHandler(wrapped, "shoplite",
			otelhttp.WithTracerProvider(m.TracerProvider()),
			otelhttp.WithMeterProvider(m.MeterProvider()),
		),
	}

	g, ctx := errgroup.WithContext(ctx)

	// Price-drop notification worker.
	g.Go(func() error {
		if err := notifier.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	// Graceful shutdown: flip readiness, drain, then stop the server.
	g.Go(func() error {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		lg.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server")
		}
		return nil
	})

	return g.Wait()
}
