package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/YarenOpuz/smart-stock/internal/product/cache"
	"github.com/YarenOpuz/smart-stock/internal/product/domain"
	"github.com/YarenOpuz/smart-stock/internal/product/usecase/command"
	"github.com/YarenOpuz/smart-stock/internal/product/usecase/query"
	userhttp "github.com/YarenOpuz/smart-stock/internal/user/delivery/http"
	whdomain "github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
	"github.com/YarenOpuz/smart-stock/pkg/logger"
)

// ProductHandler handles HTTP requests for products using CQRS pattern
type ProductHandler struct {
	// Command handlers
	createHandler   *command.CreateProductHandler
	updateHandler   *command.UpdateProductHandler
	deleteHandler   *command.DeleteProductHandler
	transferHandler *command.TransferStockHandler

	// Query handlers
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler

	repo  domain.ProductRepository
	cache *cache.ProductCache

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
	transfersTotal *prometheus.CounterVec
}

// NewProductHandler creates a new product handler (manual DI for backwards compatibility)
func NewProductHandler(
	repo domain.ProductRepository,
	warehouses whdomain.WarehouseRepository,
	events command.EventPublisher,
	productCache *cache.ProductCache,
) *ProductHandler {
	return NewProductHandlerWithDI(
		command.NewCreateProductHandler(repo, warehouses),
		command.NewUpdateProductHandler(repo, warehouses),
		command.NewDeleteProductHandler(repo),
		command.NewTransferStockHandler(repo, events),
		query.NewGetProductHandler(repo),
		query.NewListProductsHandler(repo),
		repo,
		productCache,
	)
}

// NewProductHandlerWithDI creates a new product handler using dependency injection
func NewProductHandlerWithDI(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	transferHandler *command.TransferStockHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	repo domain.ProductRepository,
	productCache *cache.ProductCache,
) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_requests_total",
			Help: "Total number of requests to product endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "product_request_duration_seconds",
			Help:    "Duration of product endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "product_request_duration_summary",
			Help: "Summary of product request durations with client-side quantiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "product_lines_total",
			Help: "Total number of product lines in the system",
		},
	)

	transfersTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_transfers_total",
			Help: "Total number of stock transfer attempts by outcome",
		},
		[]string{"outcome"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalProducts)
	prometheus.MustRegister(transfersTotal)

	return &ProductHandler{
		createHandler:     createHandler,
		updateHandler:     updateHandler,
		deleteHandler:     deleteHandler,
		transferHandler:   transferHandler,
		getProductHandler: getProductHandler,
		listHandler:       listHandler,
		repo:              repo,
		cache:             productCache,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		requestSummary:    requestSummary,
		totalProducts:     totalProducts,
		transfersTotal:    transfersTotal,
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
func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Quantity    int    `json:"quantity"`
		WarehouseID uint   `json:"warehouse_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.createHandler.Handle(command.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		WarehouseID: req.WarehouseID,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.updateTotalProductsMetric()
	h.respondJSON(w, http.StatusCreated, product)
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if product, ok := h.cache.Get(r.Context(), id); ok {
		h.respondJSON(w, http.StatusOK, product)
		return
	}

	product, err := h.getProductHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.cache.Set(r.Context(), product)
	h.respondJSON(w, http.StatusOK, product)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	warehouseID, _ := strconv.ParseUint(r.URL.Query().Get("warehouse_id"), 10, 32)

	products, err := h.listHandler.Handle(query.ListProductsQuery{
		Limit:       limit,
		Offset:      skip,
		WarehouseID: uint(warehouseID),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		h.respondError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	h.respondJSON(w, http.StatusOK, products)
}

// UpdateProduct handles PUT /products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Quantity    int    `json:"quantity"`
		IsActive    bool   `json:"is_active"`
		WarehouseID uint   `json:"warehouse_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		IsActive:    req.IsActive,
		WarehouseID: req.WarehouseID,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.cache.Invalidate(r.Context(), id)
	h.respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		h.handleError(w, err)
		return
	}

	h.cache.Invalidate(r.Context(), id)
	h.updateTotalProductsMetric()
	w.WriteHeader(http.StatusNoContent)
}

// TransferStock handles POST /products/transfer.
// Precondition failures surface as 400 with an explanatory message.
func (h *ProductHandler) TransferStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID         uint `json:"product_id"`
		SourceWarehouseID uint `json:"source_warehouse_id"`
		TargetWarehouseID uint `json:"target_warehouse_id"`
		Quantity          int  `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.transferHandler.Handle(r.Context(), command.TransferStockCommand{
		ProductID:         req.ProductID,
		SourceWarehouseID: req.SourceWarehouseID,
		TargetWarehouseID: req.TargetWarehouseID,
		Quantity:          req.Quantity,
	})
	if err != nil {
		h.transfersTotal.WithLabelValues("failed").Inc()
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.transfersTotal.WithLabelValues("ok").Inc()
	h.cache.Invalidate(r.Context(), req.ProductID, result.ID)
	h.updateTotalProductsMetric()
	h.respondJSON(w, http.StatusOK, result)
}

// handleError maps domain errors to HTTP status codes
func (h *ProductHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, whdomain.ErrWarehouseNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.respondError(w, http.StatusBadRequest, err.Error())
	}
}

// updateTotalProductsMetric updates the product lines gauge
func (h *ProductHandler) updateTotalProductsMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalProducts.Set(float64(count))
	}
}

func (h *ProductHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *ProductHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router, authMW userhttp.Middleware) {
	router.HandleFunc("/products", h.metricsMiddleware("/products", authMW(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/products", h.metricsMiddleware("/products", authMW(h.ListProducts))).Methods("GET")
	router.HandleFunc("/products/transfer", h.metricsMiddleware("/products/transfer", authMW(h.TransferStock))).Methods("POST")
	router.HandleFunc("/products/{id:[0-9]+}", h.metricsMiddleware("/products/{id}", authMW(h.GetProduct))).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}", h.metricsMiddleware("/products/{id}", authMW(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/products/{id:[0-9]+}", h.metricsMiddleware("/products/{id}", authMW(h.DeleteProduct))).Methods("DELETE")
}
