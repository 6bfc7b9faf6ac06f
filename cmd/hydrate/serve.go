package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/vango-dev/hydrate/internal/config"
	"github.com/vango-dev/hydrate/internal/dev"
	"github.com/vango-dev/hydrate/pkg/htmldom"
	"github.com/vango-dev/hydrate/pkg/hydration"
	"github.com/vango-dev/hydrate/pkg/middleware"
	"github.com/vango-dev/hydrate/pkg/report"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the hydration check server",
		Long: `Start an HTTP server that runs hydration checks on demand.

Endpoints:
  POST /check             Run a check on posted markup and tree
  GET  /metrics           Prometheus metrics
  GET  /healthz           Liveness probe
  GET  /_hydrate/overlay  WebSocket mismatch overlay (when enabled)

Examples:
  hydrate serve
  hydrate serve --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from hydrate.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from hydrate.json)")

	return cmd
}

// checkRequest is the POST /check body.
type checkRequest struct {
	// Source names the page being checked, for reports.
	Source string `json:"source,omitempty"`

	// Markup is the server-rendered HTML fragment.
	Markup string `json:"markup"`

	// Tree is the expected render tree in wire form.
	Tree json.RawMessage `json:"tree"`
}

// checkResponse is the check result, shared with the check command's
// --json output.
type checkResponse struct {
	OK         bool     `json:"ok"`
	Claimed    int      `json:"claimed"`
	Patches    int      `json:"patches"`
	Mismatches []string `json:"mismatches,omitempty"`
}

func marshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// checkServer carries the shared pieces every check uses.
type checkServer struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *hydration.Metrics
	overlay *dev.OverlayServer
	reports report.Store
}

func runServe(port int, host string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		// The server runs fine on defaults; a missing config is not
		// an error here.
		cfg = config.New()
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.Default().With("component", "hydrate-server")

	srv := &checkServer{
		cfg:     cfg,
		logger:  logger,
		metrics: hydration.NewMetrics(hydration.WithNamespace(cfg.Metrics.Namespace), hydration.WithSubsystem(cfg.Metrics.Subsystem)),
	}
	if cfg.Diagnostics.Overlay {
		srv.overlay = dev.NewOverlayServer()
		defer srv.overlay.Close()
	}
	if cfg.HasReportStore() {
		client := s3.New(s3.Options{Region: cfg.Report.Region})
		srv.reports = report.NewS3Store(client, cfg.Report.Bucket, cfg.Report.Prefix)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Prometheus(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithSubsystem("http"),
		))
	}
	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("hydrate/server")))

	r.Post("/check", srv.handleCheck)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if srv.overlay != nil {
		r.Get("/_hydrate/overlay", srv.overlay.HandleWebSocket)
	}

	httpSrv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	printBanner()
	info("Listening on %s", cfg.ServerURL())
	if cfg.Diagnostics.Overlay {
		info("Overlay at %s/_hydrate/overlay", cfg.ServerURL())
	}

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
	return nil
}

func (s *checkServer) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("invalid check request", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	container, err := htmldom.ParseFragment(req.Markup)
	if err != nil {
		http.Error(w, "invalid markup", http.StatusBadRequest)
		return
	}

	expected, err := vdom.DecodeJSON(strings.NewReader(string(req.Tree)))
	if err != nil {
		http.Error(w, "invalid expected tree: "+err.Error(), http.StatusBadRequest)
		return
	}

	collector := report.NewCollector(req.Source)
	sink := hydration.Sink(collector)
	if s.overlay != nil {
		sink = fanoutSink{collector, s.overlay}
	}

	h := hydration.New(
		hydration.WithDiagnostics(s.cfg.Diagnostics.Enabled),
		hydration.WithSink(sink),
		hydration.WithLogger(s.logger),
		hydration.WithMetrics(s.metrics),
		hydration.WithTracer(otel.Tracer("hydrate/server")),
	)

	res := h.Hydrate(r.Context(), container, expected, htmldom.Differ{})
	rep := collector.Finish(res.OK, res.Claimed)

	if s.reports != nil && (!res.OK || len(rep.Mismatches) > 0) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			key, err := s.reports.Put(ctx, rep)
			if err != nil {
				s.logger.Error("report upload failed", "error", err)
				return
			}
			s.logger.Info("report uploaded", "key", key, "source", rep.Source)
		}()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checkResponse{
		OK:         res.OK,
		Claimed:    res.Claimed,
		Patches:    len(res.Patches),
		Mismatches: rep.Mismatches,
	})
}

// fanoutSink forwards each diagnostic to every sink.
type fanoutSink []hydration.Sink

func (f fanoutSink) Emit(msg string) {
	for _, s := range f {
		s.Emit(msg)
	}
}
