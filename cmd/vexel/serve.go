package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vexel-dev/vexel/internal/config"
	"github.com/vexel-dev/vexel/pkg/live"
	_ "github.com/vexel-dev/vexel/pkg/shape"
)

func serveCmd() *cobra.Command {
	var (
		port   int
		host   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Share a document with live WebSocket viewers",
		Long: `Serve an SVG document over HTTP with a live WebSocket channel.

Viewers receive the document on connect and incremental patches as it
changes; their input events route back to the document's handlers.
The document markup is available at /, the live channel at /live, and
Prometheus metrics at /metrics.

Examples:
  vexel serve drawing.svg
  vexel serve drawing.svg --port=8080 --host=0.0.0.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(args[0], port, host, strict)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from vexel.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vexel.json)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unsupported content instead of skipping it")

	return cmd
}

func runServe(input string, port int, host string, strict bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		cfg = config.New()
	}
	if port > 0 {
		cfg.Serve.Port = port
	}
	if host != "" {
		cfg.Serve.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := parseInput(input, strict)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := live.NewServer(doc, live.Config{
		Logger:            logger,
		MaxSessions:       cfg.Serve.MaxSessions,
		HeartbeatInterval: cfg.HeartbeatInterval(),
	})
	defer srv.Close()

	handler := srv.Handler()
	if !cfg.Serve.Metrics {
		handler = hideMetrics(handler)
	}

	httpSrv := &http.Server{
		Addr:    cfg.ServeAddress(),
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving document", "file", input, "addr", httpSrv.Addr)
		info("serving %s at http://%s", input, httpSrv.Addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		success("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func hideMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
