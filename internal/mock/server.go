// Package mock serves a stand-in classification backend for development.
package mock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/sadopc/clicksnitch/internal/logging"
)

const (
	// DefaultPort matches the port the client expects by default.
	DefaultPort = 5000

	requestIDHeader = "X-Request-Id"
	maxBodySize     = 1 << 20
)

// Server is a mock /predict backend.
type Server struct {
	rules      Rules
	port       int
	latency    time.Duration
	errorRate  float64
	corsOrigin string
	log        logrus.FieldLogger

	registry *prometheus.Registry
	verdicts *prometheus.CounterVec
	requests *prometheus.CounterVec

	mu       sync.Mutex
	listener net.Listener
}

// Option configures a Server.
type Option func(*Server)

// WithPort sets the listening port. Zero picks a free port.
func WithPort(port int) Option {
	return func(s *Server) { s.port = port }
}

// WithLatency delays every response.
func WithLatency(d time.Duration) Option {
	return func(s *Server) { s.latency = d }
}

// WithErrorRate makes a fraction of requests fail with 500. The rate is
// clamped to [0, 1].
func WithErrorRate(rate float64) Option {
	return func(s *Server) {
		switch {
		case rate < 0:
			rate = 0
		case rate > 1:
			rate = 1
		}
		s.errorRate = rate
	}
}

// WithCORSOrigin sets Access-Control-Allow-Origin.
func WithCORSOrigin(origin string) Option {
	return func(s *Server) { s.corsOrigin = origin }
}

// WithLogger sets the request logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) { s.log = l }
}

// New creates a mock server answering with rules.
func New(rules Rules, opts ...Option) *Server {
	s := &Server{
		rules:      rules,
		port:       DefaultPort,
		corsOrigin: "*",
		log:        logging.Discard(),
		registry:   prometheus.NewRegistry(),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clicksnitch_mock_verdicts_total",
			Help: "Verdicts served by the mock backend.",
		}, []string{"result"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clicksnitch_mock_requests_total",
			Help: "Requests handled by the mock backend, by path and status code.",
		}, []string{"path", "code"}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registry.MustRegister(s.verdicts, s.requests)
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/predict", s.handlePredict)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/", s.handleIndex)
	return s.middleware(mux)
}

// Start listens on 127.0.0.1 and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(s.port)))
	if err != nil {
		return fmt.Errorf("listening: %w", err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.log.WithField("addr", ln.Addr().String()).Info("mock backend listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Port returns the bound port once Start is listening, or the configured
// port before that.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().(*net.TCPAddr).Port
	}
	return s.port
}

// Addr returns the predict URL for the bound port.
func (s *Server) Addr() string {
	return fmt.Sprintf("http://127.0.0.1:%d/predict", s.Port())
}

type predictRequest struct {
	URL string `json:"url"`
}

type predictResponse struct {
	Result  string `json:"result"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, predictResponse{Result: "error", Details: "not found"})
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ClickSnitch API is running")
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST, OPTIONS")
		writeJSON(w, http.StatusMethodNotAllowed, predictResponse{Result: "error", Details: "method not allowed"})
		return
	}

	if s.errorRate > 0 && rand.Float64() < s.errorRate {
		writeJSON(w, http.StatusInternalServerError, predictResponse{Result: "error", Details: "simulated server error"})
		return
	}

	var req predictRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		writeJSON(w, http.StatusInternalServerError, predictResponse{Result: "error", Details: err.Error()})
		return
	}
	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, predictResponse{Result: "error", Details: "URL not provided"})
		return
	}

	result := s.rules.Classify(req.URL)
	s.verdicts.WithLabelValues(result).Inc()
	s.log.WithFields(logrus.Fields{
		"url":        req.URL,
		"result":     result,
		"request_id": w.Header().Get(requestIDHeader),
	}).Info("verdict served")

	writeJSON(w, http.StatusOK, predictResponse{Result: result})
}

func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(requestIDHeader, uuid.NewString())
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			s.requests.WithLabelValues(r.URL.Path, strconv.Itoa(rec.code)).Inc()
		}()

		if r.Method == http.MethodOptions {
			rec.WriteHeader(http.StatusNoContent)
			return
		}

		if s.latency > 0 {
			select {
			case <-time.After(s.latency):
			case <-r.Context().Done():
				return
			}
		}

		next.ServeHTTP(rec, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
