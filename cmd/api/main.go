package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookingtour_backend/internal/adapters"
	"bookingtour_backend/internal/booking"
	bookingservice "bookingtour_backend/internal/booking/service"
	bookingclient "bookingtour_backend/internal/bookingsvc/client"
	catalogclient "bookingtour_backend/internal/catalog/client"
	catalogservice "bookingtour_backend/internal/catalog/service"
	discountclient "bookingtour_backend/internal/discount/client"
	discountservice "bookingtour_backend/internal/discount/service"
	"bookingtour_backend/internal/events"
	apphttp "bookingtour_backend/internal/http"
	"bookingtour_backend/internal/http/router"
	"bookingtour_backend/platform/config"
	"bookingtour_backend/platform/httpkit"
	"bookingtour_backend/platform/logger"
	"bookingtour_backend/platform/validator"

	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	val := validator.New()
	bus := events.NewInMemoryBus(log)
	subscribeAuditLog(bus, log)

	// ========================================================================
	// External service clients and their adapters
	// ========================================================================

	catalogSvc := catalogservice.New(catalogclient.New(cfg, log))
	negotiator := discountservice.New(discountclient.New(cfg, log), log)
	bookingAPI := bookingclient.New(cfg, log)

	// ========================================================================
	// Booking engine
	// ========================================================================

	bookingSvc := bookingservice.New(
		adapters.NewCatalogOfferProvider(catalogSvc),
		adapters.NewDiscountNegotiator(negotiator),
		adapters.NewDraftSubmitter(bookingAPI),
		bookingservice.NewDraftBuilder(val),
		cfg.SessionTTL,
		log,
	)
	bookingSvc.SetEventBus(bus)
	bookingSvc.StartSweeper(ctx, cfg.SessionSweepInterval)

	modules := []apphttp.Module{
		booking.NewModule(bookingSvc, val),
	}

	discountLimiter := httpkit.NewIPRateLimiter(rate.Limit(cfg.DiscountRateLimit), cfg.DiscountRateBurst, log)
	engine := router.New(cfg, log, modules, discountLimiter)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// subscribeAuditLog writes an audit line for the booking flow's domain
// events. Notification channels can subscribe the same way later.
func subscribeAuditLog(bus events.Bus, log *logger.Logger) {
	bus.Subscribe(events.BookingSubmitted{}.EventName(), events.HandlerFunc(func(_ context.Context, e events.Event) error {
		if ev, ok := e.(events.BookingSubmitted); ok {
			log.Info("booking submitted",
				"session_id", ev.SessionID,
				"booking_id", ev.BookingID,
				"kind", ev.Kind,
				"final_amount", ev.FinalAmount,
				"payment_type", ev.PaymentType,
			)
		}
		return nil
	}))

	bus.Subscribe(events.DiscountApplied{}.EventName(), events.HandlerFunc(func(_ context.Context, e events.Event) error {
		if ev, ok := e.(events.DiscountApplied); ok {
			log.Info("discount applied",
				"session_id", ev.SessionID,
				"code", ev.Code,
				"discount_amount", ev.DiscountAmount,
			)
		}
		return nil
	}))
}
