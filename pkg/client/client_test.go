package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bizops/internal/app"
	"bizops/internal/auth"
	"bizops/internal/model"
	"bizops/pkg/config"
	"bizops/pkg/database"
)

func newTestAPI(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))

	cfg := &config.Config{AuthJWTSecret: "client-secret"}
	a := app.New(cfg, db, nil, zap.NewNop())
	srv := httptest.NewServer(a.Router)
	t.Cleanup(srv.Close)

	token, err := auth.NewJWTVerifier("client-secret").IssueToken(auth.Caller{ID: "user-1"}, time.Hour)
	require.NoError(t, err)
	return srv, token
}

func TestStore_CRUD(t *testing.T) {
	srv, token := newTestAPI(t)
	ctx := context.Background()
	uoms := NewStore[model.UOM](New(srv.URL, token, Options{}), "/api/uoms")

	list, err := uoms.Fetch(ctx, map[string]string{"corporation_uuid": "corp-1"})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.True(t, uoms.Loaded())

	each, err := uoms.Create(ctx, map[string]string{"corporation_uuid": "corp-1", "uom_name": "Each", "short_name": "EA"})
	require.NoError(t, err)
	_, err = uoms.Create(ctx, map[string]string{"corporation_uuid": "corp-1", "uom_name": "Box", "short_name": "BX"})
	require.NoError(t, err)
	assert.Len(t, uoms.Items(), 2)

	updated, err := uoms.Update(ctx, each.UUID, map[string]string{"corporation_uuid": "corp-1", "uom_name": "Each", "short_name": "EA", "status": "INACTIVE"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, updated.Status)
	for _, it := range uoms.Items() {
		if it.UUID == each.UUID {
			assert.Equal(t, model.StatusInactive, it.Status)
		}
	}

	require.NoError(t, uoms.Delete(ctx, each.UUID))
	assert.Len(t, uoms.Items(), 1)

	got, err := uoms.Get(ctx, uoms.Items()[0].UUID)
	require.NoError(t, err)
	assert.Equal(t, "Box", got.UOMName)

	uoms.Invalidate()
	assert.False(t, uoms.Loaded())
	assert.Empty(t, uoms.Items())

	list, err = uoms.Fetch(ctx, map[string]string{"corporation_uuid": "corp-1"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStore_ItemsIsACopy(t *testing.T) {
	srv, token := newTestAPI(t)
	ctx := context.Background()
	freights := NewStore[model.Freight](New(srv.URL, token, Options{}), "/api/freights")

	_, err := freights.Create(ctx, map[string]interface{}{"ship_via": "UPS"})
	require.NoError(t, err)

	items := freights.Items()
	items[0].ShipVia = "changed"
	assert.Equal(t, "UPS", freights.Items()[0].ShipVia)
}

func TestStore_APIErrors(t *testing.T) {
	srv, token := newTestAPI(t)
	ctx := context.Background()
	charges := NewStore[model.Charge](New(srv.URL, token, Options{}), "/api/charges")

	_, err := charges.Create(ctx, map[string]string{"charge_type": "FREIGHT"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "charge_name is required", apiErr.Message)

	err = charges.Delete(ctx, "missing")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	anon := NewStore[model.Charge](New(srv.URL, "", Options{}), "/api/charges")
	_, err = anon.Fetch(ctx, nil)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.False(t, anon.Loaded())
}
