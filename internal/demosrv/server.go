// Package demosrv is the bundled demo backend. It serves the same REST
// surface the app expects from a real deployment, backed by seeded
// in-memory data, so `rollcall demo` gives a full live-mode experience
// without any infrastructure.
package demosrv

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

type ctxKey int

const userKey ctxKey = 0

// Server is the demo HTTP backend.
type Server struct {
	store    *memStore
	secret   string
	validate *validator.Validate
	log      zerolog.Logger
}

// New builds a Server with freshly seeded data.
func New(jwtSecret string, log zerolog.Logger) *Server {
	return &Server{
		store:    newMemStore(),
		secret:   jwtSecret,
		validate: validator.New(),
		log:      log.With().Str("component", "demosrv").Logger(),
	}
}

// Handler assembles the router. Everything except /api/auth/login and
// /api/auth/register requires a bearer token.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/auth/me", s.handleMe)

			r.Get("/students", s.handleListStudents)
			r.Post("/students", s.handleCreateStudent)
			r.Get("/students/{id}", s.handleGetStudent)
			r.Put("/students/{id}", s.handleUpdateStudent)
			r.Delete("/students/{id}", s.handleDeleteStudent)

			r.Post("/attendance", s.handleMarkAttendance)
			r.Get("/attendance", s.handleListAttendance)
			r.Get("/attendance/stats/{classId}", s.handleClassStats)
			r.Get("/attendance/student/{studentId}", s.handleStudentStats)
			r.Put("/attendance/{id}", s.handleUpdateAttendance)
			r.Delete("/attendance/{id}", s.handleDeleteAttendance)

			r.Get("/classes", s.handleListClasses)
			r.Post("/classes", s.handleCreateClass)
			r.Get("/classes/{id}", s.handleGetClass)
			r.Put("/classes/{id}", s.handleUpdateClass)
			r.Delete("/classes/{id}", s.handleDeleteClass)

			r.Post("/leaves", s.handleApplyLeave)
			r.Get("/leaves", s.handleListLeaves)
			r.Put("/leaves/{id}/approve", s.handleApproveLeave)
			r.Put("/leaves/{id}/reject", s.handleRejectLeave)

			r.Get("/reports/daily", s.handleDailyReport)
			r.Get("/reports/weekly", s.handleWeeklyReport)
			r.Get("/reports/monthly", s.handleMonthlyReport)
			r.Get("/reports/student/{studentId}", s.handleStudentReport)
		})
	})
	return r
}

// ListenAndServe runs the demo backend until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Info().Str("addr", addr).Msg("demo backend listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		user, err := parseToken(s.secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

func requestUser(r *http.Request) domain.User {
	u, _ := r.Context().Value(userKey).(domain.User)
	return u
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// decode unmarshals the body into v and runs struct validation.
func (s *Server) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return s.validate.Struct(v)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin teacher student"`
	SchoolID string `json:"schoolId"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	user, ok := s.store.authenticate(req.Email, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	token, err := issueToken(s.secret, user)
	if err != nil {
		s.log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid registration payload")
		return
	}
	user := domain.User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Name:     req.Name,
		Role:     domain.Role(req.Role),
		SchoolID: req.SchoolID,
	}
	if !s.store.addAccount(user, req.Password) {
		writeError(w, http.StatusConflict, "an account with that email already exists")
		return
	}
	token, err := issueToken(s.secret, user)
	if err != nil {
		s.log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusCreated, loginResponse{Token: token, User: user})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, requestUser(r))
}
