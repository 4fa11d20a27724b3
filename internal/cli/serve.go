package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
)

// serve runs an HTTP server until SIGINT/SIGTERM, then drains for up to 5s.
func serve(name, addr string, h http.Handler, log *logger.ZapLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Log(logger.LogEntry{
		Level:   "info",
		Message: name + " started",
		Fields:  map[string]any{"addr": addr},
	})

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Log(logger.LogEntry{
			Level:   "error",
			Message: name + " crashed",
			Error:   err,
		})
		return err
	}

	log.Log(logger.LogEntry{Level: "info", Message: name + " stopped"})
	return nil
}
