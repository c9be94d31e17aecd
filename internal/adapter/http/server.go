package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/cloud-top-etl/internal/domain"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes health, readiness, metrics, and on-demand evaluation
// HTTP endpoints.
type Server struct {
	httpServer *http.Server
	model      *domain.AdiabatModel
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// /v1/cloudtop routes. Evaluation uses the same adiabat model as the
// pipeline so ad-hoc queries match the published estimates.
func NewServer(addr string, ready ReadinessChecker, model *domain.AdiabatModel, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		model:  model,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/cloudtop", s.handleCloudTop)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

type cloudTopRequest struct {
	Temp      *float64 `json:"temp_c"`
	Dewpoint  *float64 `json:"dewpoint_c"`
	Pressure  *float64 `json:"pressure_hpa"`
	ThetaEMax *float64 `json:"theta_e_max_k"`
	BT        *float64 `json:"bt_c"`
}

type cloudTopResponse struct {
	Tier        string  `json:"tier"`
	Source      string  `json:"source"`
	Pressure    float64 `json:"pressure_hpa"`
	Height      float64 `json:"height_m"`
	FlightLevel int     `json:"flight_level"`
	InEnvelope  bool    `json:"in_envelope"`
}

// handleCloudTop evaluates a single cloud top estimate from either a parcel
// (temp_c, dewpoint_c, pressure_hpa) or a theta-e maximum (theta_e_max_k),
// plus the raw brightness temperature (bt_c).
func (s *Server) handleCloudTop(w http.ResponseWriter, r *http.Request) {
	var req cloudTopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if req.BT == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bt_c is required"})
		return
	}

	var (
		ct     domain.CloudTop
		source string
	)
	switch {
	case req.ThetaEMax != nil:
		ct = domain.EstimateCloudTopFromThetaE(s.model, *req.ThetaEMax, *req.BT)
		source = "theta_e"
	case req.Temp != nil && req.Dewpoint != nil && req.Pressure != nil:
		ct = domain.EstimateCloudTop(s.model, *req.Temp, *req.Dewpoint, *req.Pressure, *req.BT)
		source = "parcel"
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "provide either theta_e_max_k or all of temp_c, dewpoint_c, pressure_hpa",
		})
		return
	}

	if !ct.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "inputs are outside the physical domain of the thermodynamic chain",
		})
		return
	}

	writeJSON(w, http.StatusOK, cloudTopResponse{
		Tier:        s.model.Name(),
		Source:      source,
		Pressure:    ct.Pressure,
		Height:      ct.Height,
		FlightLevel: ct.FlightLevel,
		InEnvelope:  ct.InEnvelope,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
