package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/YarenOpuz/smart-stock/internal/user/domain"
	"github.com/YarenOpuz/smart-stock/internal/user/repository"
)

// The handler registers Prometheus collectors on construction, so the
// test router is built once and shared across tests.
var (
	routerOnce sync.Once
	testRouter *mux.Router
)

func setupRouter(t *testing.T) *mux.Router {
	t.Helper()

	routerOnce.Do(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		if err != nil {
			t.Fatalf("failed to connect to in-memory db: %v", err)
		}
		if err := db.AutoMigrate(&domain.User{}); err != nil {
			t.Fatalf("failed to migrate tables: %v", err)
		}

		repo := repository.NewGormUserRepository(db)
		handler := NewUserHandler(repo, nil, 30*time.Minute)

		testRouter = mux.NewRouter().StrictSlash(true)
		handler.RegisterRoutes(testRouter, AuthMiddleware(repo))
	})

	return testRouter
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

func TestRegisterAndLoginFlow(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"email":     "flow@example.com",
		"password":  "password",
		"full_name": "Flow Tester",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "flow@example.com", created.Email)
	require.NotZero(t, created.ID)
	require.NotContains(t, rec.Body.String(), "password", "password must never appear in responses")

	// Duplicate registration conflicts
	rec = doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "flow@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	// Login returns a bearer token
	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "flow@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		AccessToken string      `json:"access_token"`
		TokenType   string      `json:"token_type"`
		User        domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.AccessToken)
	require.Equal(t, "bearer", login.TokenType)

	// The token authenticates /auth/me
	rec = doJSON(t, router, http.MethodGet, "/auth/me", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	require.Equal(t, created.ID, me.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "wrongpass@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "wrongpass@example.com",
		"password": "not-the-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/users", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserCRUD(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "crud@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "crud@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	token := login.AccessToken

	// Read
	rec = doJSON(t, router, http.MethodGet, "/users/"+itoa(created.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Update
	rec = doJSON(t, router, http.MethodPut, "/users/"+itoa(created.ID), token, map[string]interface{}{
		"email":     "crud@example.com",
		"full_name": "Renamed",
		"is_active": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, "Renamed", updated.FullName)

	// Unknown user is a 404
	rec = doJSON(t, router, http.MethodGet, "/users/99999", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
