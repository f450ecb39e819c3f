package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoury-cyber-guide/backend/internal/config"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DB_DRIVER", config.DriverMemory)
	t.Setenv("SEED_ENABLED", "true")
	cfg, err := config.LoadConfig("does-not-exist.yaml")
	require.NoError(t, err)
	return cfg
}

func TestMemoryStack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	cfg := memoryConfig(t)

	store, err := SetupStore(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()
	assert.Nil(t, store.Postgres)

	router := SetupRouter(cfg, BuildDependencies(ctx, cfg, store, zerolog.Nop()), zerolog.Nop())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/topics", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), "Network Security")
}

func TestRunMigrations_RequiresPostgres(t *testing.T) {
	cfg := memoryConfig(t)
	assert.Error(t, RunMigrations(context.Background(), cfg, zerolog.Nop()))
}
