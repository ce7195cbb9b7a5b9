package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"freedaiy-backend/internal/config"
	blogHandler "freedaiy-backend/internal/domains/blog/handler"
	blogService "freedaiy-backend/internal/domains/blog/service"
	leadHandler "freedaiy-backend/internal/domains/lead/handler"
	leadService "freedaiy-backend/internal/domains/lead/service"
	productHandler "freedaiy-backend/internal/domains/product/handler"
	productService "freedaiy-backend/internal/domains/product/service"
	"freedaiy-backend/internal/infrastructure/database"
	"freedaiy-backend/pkg/container"
)

func testContainer(cfg *config.Config, store database.Store) *container.Container {
	ls := leadService.NewLeadService(store)
	bs := blogService.NewBlogService(store)
	ps := productService.NewProductService(store)

	return &container.Container{
		Config:         cfg,
		Store:          store,
		LeadService:    ls,
		BlogService:    bs,
		ProductService: ps,
		LeadHandler:    leadHandler.NewLeadHandler(ls),
		BlogHandler:    blogHandler.NewBlogHandler(bs),
		ProductHandler: productHandler.NewProductHandler(ps),
	}
}

func get(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRootProbe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.Load()
	require.NoError(t, err)
	router := SetupRouter(testContainer(cfg, database.NewMemoryStore()))

	w, body := get(t, router, "/")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "FreeDAIY backend is running", body["message"])
}

func TestDiagnosticsWithConnectedStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.Load()
	require.NoError(t, err)
	store := database.NewMemoryStore()
	_, err = store.Insert(context.Background(), "lead", map[string]interface{}{"email": "a@b.co"})
	require.NoError(t, err)

	router := SetupRouter(testContainer(cfg, store))

	w, body := get(t, router, "/test")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "✅ Running", body["backend"])
	require.Equal(t, "✅ Connected & Working", body["database"])
	require.Equal(t, "Connected", body["connection_status"])

	collections := body["collections"].([]interface{})
	require.Contains(t, collections, "lead")
}

func TestDiagnosticsWithDisabledStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.Load()
	require.NoError(t, err)
	router := SetupRouter(testContainer(cfg, database.NewMongoStore(config.MongoConfig{})))

	w, body := get(t, router, "/test")

	// Diagnostics never raise: degraded state is reported in the body.
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "✅ Running", body["backend"])
	require.Equal(t, "❌ Not Available", body["database"])
	require.Equal(t, "Not Connected", body["connection_status"])
	require.Equal(t, "❌ Not Set", body["database_url"])
	require.Equal(t, "❌ Not Set", body["database_name"])
	require.Empty(t, body["collections"].([]interface{}))
}

func TestDiagnosticsIsIdempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.Load()
	require.NoError(t, err)
	router := SetupRouter(testContainer(cfg, database.NewMongoStore(config.MongoConfig{})))

	_, first := get(t, router, "/test")
	_, second := get(t, router, "/test")
	require.Equal(t, first, second)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.Load()
	require.NoError(t, err)
	router := SetupRouter(testContainer(cfg, database.NewMemoryStore()))

	w, _ := get(t, router, "/")
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
