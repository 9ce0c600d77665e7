// Package devserver is an in-memory implementation of the governance backend.
//
// It serves the same REST surface the client talks to and is used by tests
// and for local demos (cmd/styring-devserver). Nothing is persisted.
package devserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

type user struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
}

// Server holds all backend state behind a single mutex.
type Server struct {
	mu sync.Mutex

	secret   []byte
	hashCost int
	now      func() time.Time

	usersByEmail map[string]*user
	projects     []domain.Project
	owners       map[string]string // project id -> user id

	metrics   []domain.Metric
	actions   []domain.Action
	timeline  []domain.TimelineItem
	tasks     []domain.Task
	comments  []domain.Comment
	documents []domain.Document

	failures map[string]int // path prefix -> forced status
	requests int
}

// Option configures a Server.
type Option func(*Server)

// WithHashCost sets the bcrypt cost. Tests use bcrypt.MinCost.
func WithHashCost(cost int) Option {
	return func(s *Server) { s.hashCost = cost }
}

// WithClock overrides the time source used for timeline start dates.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates an empty backend signing tokens with secret.
func New(secret string, opts ...Option) *Server {
	s := &Server{
		secret:       []byte(secret),
		hashCost:     bcrypt.DefaultCost,
		now:          time.Now,
		usersByEmail: make(map[string]*user),
		owners:       make(map[string]string),
		failures:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailPath forces every request whose path starts with prefix to answer with
// status. A status of 0 removes the override.
func (s *Server) FailPath(prefix string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, prefix)
		return
	}
	s.failures[prefix] = status
}

// Requests returns how many requests the server has received.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Handler returns the HTTP handler serving the REST API.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	api := r.NewRoute().Subrouter()
	api.Use(s.requireUser)
	api.HandleFunc("/projects", s.handleListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects", s.handleCreateProject).Methods(http.MethodPost)
	api.HandleFunc("/metrics/{projectID}", s.handleListMetrics).Methods(http.MethodGet)
	api.HandleFunc("/metrics", s.handleCreateMetric).Methods(http.MethodPost)
	api.HandleFunc("/actions/{projectID}", s.handleListActions).Methods(http.MethodGet)
	api.HandleFunc("/actions", s.handleCreateAction).Methods(http.MethodPost)
	api.HandleFunc("/timeline/{projectID}", s.handleListTimeline).Methods(http.MethodGet)
	api.HandleFunc("/timeline", s.handleCreateTimelineItem).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{timelineItemID}", s.handleListTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", s.handleCreateTask).Methods(http.MethodPost)
	api.HandleFunc("/comments/{projectID}", s.handleListComments).Methods(http.MethodGet)
	api.HandleFunc("/comments", s.handleCreateComment).Methods(http.MethodPost)
	api.HandleFunc("/documents/{projectID}", s.handleListDocuments).Methods(http.MethodGet)
	api.HandleFunc("/documents", s.handleCreateDocument).Methods(http.MethodPost)

	return s.withFailures(r)
}

func (s *Server) withFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		status := 0
		for prefix, st := range s.failures {
			if strings.HasPrefix(r.URL.Path, prefix) {
				status = st
				break
			}
		}
		s.mu.Unlock()

		if status != 0 {
			writeDetail(w, status, http.StatusText(status))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func newID() string {
	return uuid.New().String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, contract.ErrorResponse{Detail: detail})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return false
	}
	return true
}
