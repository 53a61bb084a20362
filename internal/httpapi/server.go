// Package httpapi is the thin HTTP adapter over the simulation engine:
// it parses the flat request schema, invokes parameterization,
// sampling and analysis, and forwards the result verbatim as JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/cors"

	"venture-sim-lab/internal/config"
	"venture-sim-lab/internal/domain"
	"venture-sim-lab/internal/metrics"
	"venture-sim-lab/internal/observability"
	"venture-sim-lab/internal/params"
	"venture-sim-lab/internal/simulation"
)

// Server is the simulation HTTP API.
type Server struct {
	httpServer *http.Server
	engine     *simulation.Engine
	cfg        config.Config
	logger     *log.Logger
	startedAt  time.Time

	mu             sync.Mutex
	simulationRuns int
	lastRun        time.Time
}

// NewServer creates an API server bound to cfg.ListenAddr.
func NewServer(cfg config.Config, engine *simulation.Engine, logger *log.Logger) *Server {
	s := &Server{
		engine:    engine,
		cfg:       cfg,
		logger:    logger,
		startedAt: time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/run_simulation", s.handleRunSimulation)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/status", s.handleStatus)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the full middleware-wrapped handler, mainly for
// tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.logger.Printf("API listening on %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// simulationResponse is the core output schema: the ordered metric
// bundle plus the IRR and MOIC columns for plotting. Only those two
// columns cross the boundary; the rest of the trial table stays
// internal to the analyzer.
type simulationResponse struct {
	Metrics      *domain.SummaryMetrics `json:"metrics"`
	PlotDataIRR  floatColumn            `json:"plot_data_irr"`
	PlotDataMOIC floatColumn            `json:"plot_data_moic"`
}

func (s *Server) handleRunSimulation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		observability.RecordRequest("/run_simulation", time.Since(start).Seconds())
	}()

	if r.Method != http.MethodPost {
		s.writeError(w, "/run_simulation", http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var in params.Inputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, "/run_simulation", http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	n := in.NumSimulations
	if n <= 0 {
		n = s.cfg.DefaultTrials
	}
	if n > s.cfg.MaxTrials {
		s.logger.Printf("clamping num_simulations %d to configured maximum %d", n, s.cfg.MaxTrials)
		n = s.cfg.MaxTrials
	}

	deal, p, err := params.Build(in)
	if err != nil {
		s.writeError(w, "/run_simulation", http.StatusBadRequest, err.Error())
		return
	}

	runStart := time.Now()
	sample, err := s.engine.Run(r.Context(), deal, p, n)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Printf("simulation abandoned: client disconnected after %v", time.Since(runStart))
			observability.RecordSimulation("canceled", time.Since(runStart).Seconds(), 0)
			return
		}
		observability.RecordSimulation("error", time.Since(runStart).Seconds(), 0)
		s.writeError(w, "/run_simulation", http.StatusInternalServerError, "simulation failed: "+err.Error())
		return
	}
	observability.RecordSimulation("success", time.Since(runStart).Seconds(), n)

	summary := metrics.Analyze(sample, deal)

	s.mu.Lock()
	s.simulationRuns++
	s.lastRun = time.Now()
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, simulationResponse{
		Metrics:      summary,
		PlotDataIRR:  floatColumn(sample.IRR),
		PlotDataMOIC: floatColumn(sample.MOIC),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// statusResponse is the JSON response for the /status endpoint.
type statusResponse struct {
	Status         string    `json:"status"`
	Uptime         string    `json:"uptime"`
	SimulationRuns int       `json:"simulation_runs"`
	LastRun        time.Time `json:"last_run,omitempty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := statusResponse{
		Status:         "running",
		Uptime:         time.Since(s.startedAt).String(),
		SimulationRuns: s.simulationRuns,
		LastRun:        s.lastRun,
	}
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Printf("write response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, path string, code int, msg string) {
	observability.RecordRequestError(path, strconv.Itoa(code))
	s.writeJSON(w, code, map[string]string{"error": msg})
}
