package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	userhttp "github.com/YarenOpuz/smart-stock/internal/user/delivery/http"
	userdomain "github.com/YarenOpuz/smart-stock/internal/user/domain"
	userrepo "github.com/YarenOpuz/smart-stock/internal/user/repository"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/repository"
	"github.com/YarenOpuz/smart-stock/pkg/auth"
)

// The handler registers Prometheus collectors on construction, so the
// test router is built once and shared across tests.
var (
	routerOnce sync.Once
	testRouter *mux.Router
	testOwner  *userdomain.User
	testToken  string
)

func setupRouter(t *testing.T) (*mux.Router, string) {
	t.Helper()

	routerOnce.Do(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		if err != nil {
			t.Fatalf("failed to connect to in-memory db: %v", err)
		}
		if err := db.AutoMigrate(&userdomain.User{}, &domain.Warehouse{}); err != nil {
			t.Fatalf("failed to migrate tables: %v", err)
		}

		users := userrepo.NewGormUserRepository(db)
		hashed, err := auth.HashPassword("password")
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		testOwner = &userdomain.User{
			Email:    "owner@example.com",
			Password: hashed,
			IsActive: true,
		}
		if err := users.Create(testOwner); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}

		token, err := auth.GenerateToken("owner@example.com", 30*time.Minute)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		testToken = token

		handler := NewWarehouseHandler(repository.NewGormWarehouseRepository(db), users)

		testRouter = mux.NewRouter().StrictSlash(true)
		handler.RegisterRoutes(testRouter, userhttp.AuthMiddleware(users))
	})

	return testRouter, testToken
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateWarehouseTakesOwnerFromToken(t *testing.T) {
	router, token := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/warehouses", token, map[string]interface{}{
		"name":         "owned",
		"location":     "Izmir",
		"capacity":     200,
		"rental_price": 99.9,
		"type":         "dry storage",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Warehouse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, testOwner.ID, created.OwnerID, "owner must come from the token, not the body")
	require.True(t, created.IsAvailable)

	// Duplicate name conflicts
	rec = doJSON(t, router, http.MethodPost, "/warehouses", token, map[string]interface{}{
		"name":     "owned",
		"location": "Izmir",
		"capacity": 200,
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	// The warehouse shows up under the owner's listing
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/users/%d/warehouses", testOwner.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []domain.Warehouse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
}

func TestWarehouseNotFound(t *testing.T) {
	router, token := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/warehouses/99999", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/users/99999/warehouses", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWarehouseRoutesRequireAuth(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/warehouses", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
