// Package main implements a three-tier application status dashboard.
// It renders a fixed status snapshot of the web, application and database
// tiers as an HTML page, or once to the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// now is a variable to allow a fixed clock in tests
var now = time.Now

// dashboardHandler renders the dashboard for a fresh snapshot on every request.
func dashboardHandler(w http.ResponseWriter, r *http.Request) {
	view := buildView(sampleSnapshot(), now())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderDashboard(w, view); err != nil {
		log.Printf("Error rendering dashboard: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

// newMux registers the dashboard routes. Unknown paths fall through to 404.
func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", dashboardHandler)
	mux.HandleFunc("GET /healthz", healthHandler)
	return mux
}

// printDashboard renders the dashboard once for a terminal.
func printDashboard(w io.Writer) error {
	_, err := io.WriteString(w, renderTerminal(buildView(sampleSnapshot(), now())))
	return err
}

// serve runs the dashboard server until ctx is cancelled.
func serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Printf("Server running at %s", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Println("Shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// main is the entry point of the application.
// It loads configuration and either prints the dashboard or serves it.
func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.SetPrefix(cfg.LogPrefix)

	if cfg.Print {
		if err := printDashboard(os.Stdout); err != nil {
			log.Fatalf("Failed to print dashboard: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg.Addr); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
