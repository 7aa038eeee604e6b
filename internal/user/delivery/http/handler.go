package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/YarenOpuz/smart-stock/internal/user/domain"
	"github.com/YarenOpuz/smart-stock/internal/user/usecase/command"
	"github.com/YarenOpuz/smart-stock/internal/user/usecase/query"
	"github.com/YarenOpuz/smart-stock/pkg/logger"
)

// UserHandler handles HTTP requests for users and authentication
type UserHandler struct {
	// Command handlers
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	updateHandler   *command.UpdateUserHandler
	deleteHandler   *command.DeleteUserHandler

	// Query handlers
	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler

	repo           domain.UserRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	activeUsers    prometheus.Gauge
}

// NewUserHandler creates a new user handler (manual DI for backwards compatibility)
func NewUserHandler(repo domain.UserRepository, events command.EventPublisher, tokenTTL time.Duration) *UserHandler {
	return NewUserHandlerWithDI(
		command.NewRegisterUserHandler(repo, events),
		command.NewLoginUserHandler(repo, tokenTTL),
		command.NewUpdateUserHandler(repo),
		command.NewDeleteUserHandler(repo),
		query.NewGetUserHandler(repo),
		query.NewListUsersHandler(repo),
		repo,
	)
}

// NewUserHandlerWithDI creates a new user handler using dependency injection
func NewUserHandlerWithDI(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	updateHandler *command.UpdateUserHandler,
	deleteHandler *command.DeleteUserHandler,
	getUserHandler *query.GetUserHandler,
	listHandler *query.ListUsersHandler,
	repo domain.UserRepository,
) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_requests_total",
			Help: "Total number of requests to user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_request_duration_seconds",
			Help:    "Duration of user endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	activeUsers := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "user_active_total",
			Help: "Number of registered users in the system",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(activeUsers)

	return &UserHandler{
		registerHandler: registerHandler,
		loginHandler:    loginHandler,
		updateHandler:   updateHandler,
		deleteHandler:   deleteHandler,
		getUserHandler:  getUserHandler,
		listHandler:     listHandler,
		repo:            repo,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		activeUsers:     activeUsers,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email         string `json:"email"`
		Password      string `json:"password"`
		FullName      string `json:"full_name"`
		OfficeAddress string `json:"office_address"`
		PhoneNumber   string `json:"phone_number"`
		UserType      string `json:"user_type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.RegisterUserCommand{
		Email:         req.Email,
		Password:      req.Password,
		FullName:      req.FullName,
		OfficeAddress: req.OfficeAddress,
		PhoneNumber:   req.PhoneNumber,
		UserType:      req.UserType,
	}

	user, err := h.registerHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.updateActiveUsersMetric()
	h.respondJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.loginHandler.Handle(command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Me handles GET /auth/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.getUserHandler.Handle(query.GetUserQuery{ID: id})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, err := h.listHandler.Handle(query.ListUsersQuery{Limit: limit, Offset: skip})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list users")
		h.respondError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	h.respondJSON(w, http.StatusOK, users)
}

// UpdateUser handles PUT /users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		Email         string `json:"email"`
		Password      string `json:"password"`
		FullName      string `json:"full_name"`
		OfficeAddress string `json:"office_address"`
		PhoneNumber   string `json:"phone_number"`
		UserType      string `json:"user_type"`
		IsActive      bool   `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.updateHandler.Handle(command.UpdateUserCommand{
		ID:            id,
		Email:         req.Email,
		Password:      req.Password,
		FullName:      req.FullName,
		OfficeAddress: req.OfficeAddress,
		PhoneNumber:   req.PhoneNumber,
		UserType:      req.UserType,
		IsActive:      req.IsActive,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteUserCommand{ID: id}); err != nil {
		h.handleError(w, err)
		return
	}

	h.updateActiveUsersMetric()
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// handleError maps domain errors to HTTP status codes
func (h *UserHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInactiveUser):
		w.Header().Set("WWW-Authenticate", "Bearer")
		h.respondError(w, http.StatusUnauthorized, err.Error())
	default:
		h.respondError(w, http.StatusBadRequest, err.Error())
	}
}

// updateActiveUsersMetric updates the registered users gauge
func (h *UserHandler) updateActiveUsersMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.activeUsers.Set(float64(count))
	}
}

func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *UserHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router, authMW Middleware) {
	// Public routes
	router.HandleFunc("/auth/register", h.metricsMiddleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")

	// Authenticated routes
	router.HandleFunc("/auth/me", h.metricsMiddleware("/auth/me", authMW(h.Me))).Methods("GET")
	router.HandleFunc("/users", h.metricsMiddleware("/users", authMW(h.ListUsers))).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", h.metricsMiddleware("/users/{id}", authMW(h.GetUser))).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", h.metricsMiddleware("/users/{id}", authMW(h.UpdateUser))).Methods("PUT")
	router.HandleFunc("/users/{id:[0-9]+}", h.metricsMiddleware("/users/{id}", authMW(h.DeleteUser))).Methods("DELETE")
}

// RegisterHealthCheck registers the health check endpoint
func (h *UserHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
