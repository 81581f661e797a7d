package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/esg-leads-cli/internal/config"
	"github.com/sells-group/esg-leads-cli/internal/engine"
	"github.com/sells-group/esg-leads-cli/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoring HTTP server",
	Long: `Serve the classification engine over HTTP. POST raw records to
/v1/score and receive ranked, deduplicated leads. No provider is called.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := config.Validate(cfg); err != nil {
			return err
		}

		eng, err := newEngine(cfg)
		if err != nil {
			return eris.Wrap(err, "serve: load keyword library")
		}

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", handleHealth)
		r.Post("/v1/score", handleScore(eng))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScore classifies a posted batch of raw records and returns the
// ranked leads.
func handleScore(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Records []model.ProspectRecord `json:"records"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if len(req.Records) == 0 {
			http.Error(w, `{"error":"records is required"}`, http.StatusBadRequest)
			return
		}

		// Posted records may omit the derived domain.
		for i := range req.Records {
			if req.Records[i].Domain == "" {
				req.Records[i].Domain = engine.ParseDomain(req.Records[i].URL)
			}
		}

		leads := eng.ClassifyAll(req.Records)

		zap.L().Info("scored batch",
			zap.Int("raw_records", len(req.Records)),
			zap.Int("leads", len(leads)))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"leads": leads,
			"count": len(leads),
		})
	}
}
