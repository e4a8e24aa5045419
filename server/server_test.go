package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationtime/audit"
	"github.com/katalvlaran/stationtime/server"
	"github.com/katalvlaran/stationtime/store"
	"github.com/katalvlaran/stationtime/traveltime"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memNetworks is an in-memory server.Networks.
type memNetworks struct {
	nets map[string]traveltime.BuildRequest
}

func newMemNetworks() *memNetworks {
	return &memNetworks{nets: map[string]traveltime.BuildRequest{}}
}

func (m *memNetworks) SaveNetwork(_ context.Context, name string, req traveltime.BuildRequest) error {
	if name == "" {
		return store.ErrInvalidName
	}
	m.nets[name] = req
	return nil
}

func (m *memNetworks) LoadNetwork(_ context.Context, name string) (traveltime.BuildRequest, error) {
	req, ok := m.nets[name]
	if !ok {
		return req, fmt.Errorf("%w: %q", store.ErrNetworkNotFound, name)
	}
	return req, nil
}

func (m *memNetworks) ListNetworks(context.Context) ([]string, error) {
	names := make([]string, 0, len(m.nets))
	for n := range m.nets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) server.QueryResponse {
	t.Helper()
	var resp server.QueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	w := do(t, server.NewRouter(server.Options{}), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestTravelTimes(t *testing.T) {
	r := server.NewRouter(server.Options{})
	body := server.QueryRequest{
		BuildRequest: traveltime.BuildRequest{StationCount: 3, Edges: []traveltime.Edge{
			{A: 1, B: 2, Time: 5}, {A: 2, B: 3, Time: 7},
		}},
		Queries: []traveltime.Query{{A: 1, B: 3}, {A: 2, B: 2}},
	}

	w := do(t, r, http.MethodPost, "/api/traveltimes", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode(t, w)
	assert.Equal(t, []int{12, 0}, resp.Times)
	assert.True(t, resp.Stats.Complete)
	assert.Empty(t, resp.Discrepancies)
}

func TestTravelTimes_BadInput(t *testing.T) {
	r := server.NewRouter(server.Options{})

	w := do(t, r, http.MethodPost, "/api/traveltimes", server.QueryRequest{
		BuildRequest: traveltime.BuildRequest{StationCount: 2, Edges: []traveltime.Edge{{A: 1, B: 3, Time: 1}}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/traveltimes", server.QueryRequest{
		BuildRequest: traveltime.BuildRequest{StationCount: 2, Edges: []traveltime.Edge{{A: 1, B: 2, Time: 1}}},
		Queries:      []traveltime.Query{{A: 5, B: 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/traveltimes", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTravelTimes_Audit(t *testing.T) {
	body := server.QueryRequest{
		BuildRequest: traveltime.BuildRequest{StationCount: 4, Edges: []traveltime.Edge{
			{A: 1, B: 2, Time: 100}, {A: 2, B: 3, Time: 1}, {A: 1, B: 4, Time: 1}, {A: 4, B: 3, Time: 1},
		}},
		Queries: []traveltime.Query{{A: 1, B: 3}, {A: 3, B: 4}},
		Audit:   true,
	}

	resp := decode(t, do(t, server.NewRouter(server.Options{}), http.MethodPost, "/api/traveltimes", body))
	assert.Equal(t, []int{101, 1}, resp.Times)
	assert.Equal(t, []audit.Discrepancy{{A: 1, B: 3, Wave: 101, Shortest: 2}}, resp.Discrepancies)

	limited := server.NewRouter(server.Options{AuditMaxStations: 3})
	resp = decode(t, do(t, limited, http.MethodPost, "/api/traveltimes", body))
	assert.True(t, resp.AuditSkipped)
	assert.Empty(t, resp.Discrepancies)
}

func TestNetworks_NoStore(t *testing.T) {
	r := server.NewRouter(server.Options{})
	assert.Equal(t, http.StatusServiceUnavailable, do(t, r, http.MethodGet, "/api/networks", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		do(t, r, http.MethodPut, "/api/networks/x", traveltime.BuildRequest{}).Code)
}

func TestNetworks_SaveAndQuery(t *testing.T) {
	mem := newMemNetworks()
	r := server.NewRouter(server.Options{Networks: mem})

	line := traveltime.BuildRequest{StationCount: 4, Edges: []traveltime.Edge{
		{A: 1, B: 2, Time: 1}, {A: 2, B: 3, Time: 1}, {A: 3, B: 4, Time: 1},
	}}
	w := do(t, r, http.MethodPut, "/api/networks/line", line)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/networks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"networks":["line"]}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/networks/line/queries", server.NetworkQueryRequest{
		Queries: []traveltime.Query{{A: 1, B: 4}, {A: 1, B: 3}, {A: 2, B: 4}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []int{3, 2, 2}, decode(t, w).Times)

	w = do(t, r, http.MethodPost, "/api/networks/missing/queries", server.NetworkQueryRequest{})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPut, "/api/networks/bad", traveltime.BuildRequest{StationCount: -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, stored := mem.nets["bad"]
	assert.False(t, stored)
}

func TestMaxStations(t *testing.T) {
	mem := newMemNetworks()
	r := server.NewRouter(server.Options{Networks: mem, MaxStations: 3})

	w := do(t, r, http.MethodPost, "/api/traveltimes", server.QueryRequest{
		BuildRequest: traveltime.BuildRequest{StationCount: 200000},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds limit")

	w = do(t, r, http.MethodPut, "/api/networks/big", traveltime.BuildRequest{StationCount: 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, stored := mem.nets["big"]
	assert.False(t, stored)

	// A network stored before the limit was lowered is still refused.
	mem.nets["old"] = traveltime.BuildRequest{StationCount: 10}
	w = do(t, r, http.MethodPost, "/api/networks/old/queries", server.NetworkQueryRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/traveltimes", server.QueryRequest{
		BuildRequest: traveltime.BuildRequest{StationCount: 3},
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestTravelTimes_UnaddressableTable(t *testing.T) {
	w := do(t, server.NewRouter(server.Options{}), http.MethodPost, "/api/traveltimes", server.QueryRequest{
		BuildRequest: traveltime.BuildRequest{StationCount: 1 << 32},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTravelTimes_IncludeTable(t *testing.T) {
	body := server.QueryRequest{
		BuildRequest: traveltime.BuildRequest{StationCount: 3, Edges: []traveltime.Edge{
			{A: 1, B: 2, Time: 5}, {A: 2, B: 3, Time: 7},
		}},
		IncludeTable: true,
	}
	resp := decode(t, do(t, server.NewRouter(server.Options{}), http.MethodPost, "/api/traveltimes", body))
	assert.Equal(t, [][]int{{0, 5, 12}, {5, 0, 7}, {12, 7, 0}}, resp.Table)

	body.IncludeTable = false
	resp = decode(t, do(t, server.NewRouter(server.Options{}), http.MethodPost, "/api/traveltimes", body))
	assert.Nil(t, resp.Table)
}
