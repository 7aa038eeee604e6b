package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	userhttp "github.com/YarenOpuz/smart-stock/internal/user/delivery/http"
	userdomain "github.com/YarenOpuz/smart-stock/internal/user/domain"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/usecase/command"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/usecase/query"
	"github.com/YarenOpuz/smart-stock/pkg/logger"
)

// WarehouseHandler handles HTTP requests for warehouses
type WarehouseHandler struct {
	createHandler *command.CreateWarehouseHandler
	updateHandler *command.UpdateWarehouseHandler
	deleteHandler *command.DeleteWarehouseHandler

	getHandler        *query.GetWarehouseHandler
	listHandler       *query.ListWarehousesHandler
	listByUserHandler *query.ListUserWarehousesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewWarehouseHandler creates a new warehouse handler (manual DI for backwards compatibility)
func NewWarehouseHandler(repo domain.WarehouseRepository, users userdomain.UserRepository) *WarehouseHandler {
	return NewWarehouseHandlerWithDI(
		command.NewCreateWarehouseHandler(repo),
		command.NewUpdateWarehouseHandler(repo),
		command.NewDeleteWarehouseHandler(repo),
		query.NewGetWarehouseHandler(repo),
		query.NewListWarehousesHandler(repo),
		query.NewListUserWarehousesHandler(repo, users),
	)
}

// NewWarehouseHandlerWithDI creates a new warehouse handler using dependency injection
func NewWarehouseHandlerWithDI(
	createHandler *command.CreateWarehouseHandler,
	updateHandler *command.UpdateWarehouseHandler,
	deleteHandler *command.DeleteWarehouseHandler,
	getHandler *query.GetWarehouseHandler,
	listHandler *query.ListWarehousesHandler,
	listByUserHandler *query.ListUserWarehousesHandler,
) *WarehouseHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warehouse_requests_total",
			Help: "Total number of requests to warehouse endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "warehouse_request_duration_seconds",
			Help:    "Duration of warehouse endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &WarehouseHandler{
		createHandler:     createHandler,
		updateHandler:     updateHandler,
		deleteHandler:     deleteHandler,
		getHandler:        getHandler,
		listHandler:       listHandler,
		listByUserHandler: listByUserHandler,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
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
func (h *WarehouseHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateWarehouse handles POST /warehouses
func (h *WarehouseHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	caller, ok := userhttp.CurrentUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Location    string  `json:"location"`
		Capacity    int     `json:"capacity"`
		RentalPrice float64 `json:"rental_price"`
		Type        string  `json:"type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	warehouse, err := h.createHandler.Handle(command.CreateWarehouseCommand{
		Name:        req.Name,
		Location:    req.Location,
		Capacity:    req.Capacity,
		RentalPrice: req.RentalPrice,
		Type:        req.Type,
		OwnerID:     caller.ID,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, warehouse)
}

// GetWarehouse handles GET /warehouses/{id}
func (h *WarehouseHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid warehouse ID")
		return
	}

	warehouse, err := h.getHandler.Handle(query.GetWarehouseQuery{ID: id})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, warehouse)
}

// ListWarehouses handles GET /warehouses
func (h *WarehouseHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	warehouses, err := h.listHandler.Handle(query.ListWarehousesQuery{Limit: limit, Offset: skip})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list warehouses")
		h.respondError(w, http.StatusInternalServerError, "Failed to list warehouses")
		return
	}

	h.respondJSON(w, http.StatusOK, warehouses)
}

// ListUserWarehouses handles GET /users/{id}/warehouses
func (h *WarehouseHandler) ListUserWarehouses(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	warehouses, err := h.listByUserHandler.Handle(query.ListUserWarehousesQuery{UserID: userID})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, warehouses)
}

// UpdateWarehouse handles PUT /warehouses/{id}
func (h *WarehouseHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid warehouse ID")
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Location    string  `json:"location"`
		Capacity    int     `json:"capacity"`
		RentalPrice float64 `json:"rental_price"`
		Type        string  `json:"type"`
		IsAvailable bool    `json:"is_available"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	warehouse, err := h.updateHandler.Handle(command.UpdateWarehouseCommand{
		ID:          id,
		Name:        req.Name,
		Location:    req.Location,
		Capacity:    req.Capacity,
		RentalPrice: req.RentalPrice,
		Type:        req.Type,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, warehouse)
}

// DeleteWarehouse handles DELETE /warehouses/{id}
func (h *WarehouseHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid warehouse ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteWarehouseCommand{ID: id}); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleError maps domain errors to HTTP status codes
func (h *WarehouseHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrWarehouseNotFound), errors.Is(err, userdomain.ErrUserNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNameTaken):
		h.respondError(w, http.StatusConflict, err.Error())
	default:
		h.respondError(w, http.StatusBadRequest, err.Error())
	}
}

func (h *WarehouseHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *WarehouseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

func parseID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	return uint(id), err
}

// RegisterRoutes registers all warehouse routes
func (h *WarehouseHandler) RegisterRoutes(router *mux.Router, authMW userhttp.Middleware) {
	router.HandleFunc("/warehouses", h.metricsMiddleware("/warehouses", authMW(h.CreateWarehouse))).Methods("POST")
	router.HandleFunc("/warehouses", h.metricsMiddleware("/warehouses", authMW(h.ListWarehouses))).Methods("GET")
	router.HandleFunc("/warehouses/{id:[0-9]+}", h.metricsMiddleware("/warehouses/{id}", authMW(h.GetWarehouse))).Methods("GET")
	router.HandleFunc("/warehouses/{id:[0-9]+}", h.metricsMiddleware("/warehouses/{id}", authMW(h.UpdateWarehouse))).Methods("PUT")
	router.HandleFunc("/warehouses/{id:[0-9]+}", h.metricsMiddleware("/warehouses/{id}", authMW(h.DeleteWarehouse))).Methods("DELETE")
	router.HandleFunc("/users/{id:[0-9]+}/warehouses", h.metricsMiddleware("/users/{id}/warehouses", authMW(h.ListUserWarehouses))).Methods("GET")
}
