package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpndash/vpndash/internal/application/connection/usecases"
	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/domain/server"
	"github.com/vpndash/vpndash/internal/domain/usage"
	"github.com/vpndash/vpndash/internal/interfaces/http/handlers/testutil"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

// =====================================================================
// Usage
// =====================================================================

type mockGetUsageStatsUC struct {
	result *usage.Stats
	err    error
}

func (m *mockGetUsageStatsUC) Execute(ctx context.Context, userSID string) (*usage.Stats, error) {
	return m.result, m.err
}

type mockGetTrendsUC struct{}

func (mockGetTrendsUC) Execute() []usage.TrendPoint { return usage.DailyTrend() }

func TestUsageHandler_GetStats(t *testing.T) {
	stats := usage.ReconstructStats(usage.StatsSnapshot{
		ID:            1,
		UserID:        1,
		TodayUsage:    1.234,
		WeekUsage:     5,
		MonthUsage:    20,
		UploadSpeed:   1024,
		DownloadSpeed: 2048,
		AverageSpeed:  42.5,
	})
	handler := NewUsageHandler(&mockGetUsageStatsUC{result: stats}, mockGetTrendsUC{}, logger.NewNopLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/api/usage/stats", nil)
	testutil.SetAuthContext(c, "usr_test123")

	handler.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.EqualValues(t, 1.23, data["todayUsage"])
	assert.EqualValues(t, 42.5, data["averageSpeed"])
	assert.Contains(t, data, "currentSpeed")
}

func TestUsageHandler_GetStats_NotFound(t *testing.T) {
	handler := NewUsageHandler(&mockGetUsageStatsUC{err: errors.NewNotFoundError("Usage stats not found")}, mockGetTrendsUC{}, logger.NewNopLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/api/usage/stats", nil)
	testutil.SetAuthContext(c, "usr_test123")

	handler.GetStats(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsageHandler_GetTrends(t *testing.T) {
	handler := NewUsageHandler(nil, mockGetTrendsUC{}, logger.NewNopLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/api/usage/trends", nil)
	testutil.SetAuthContext(c, "usr_test123")

	handler.GetTrends(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var points []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &points))
	require.Len(t, points, 7)
	assert.Equal(t, "00:00", points[0]["hour"])
	assert.Equal(t, "23:00", points[6]["hour"])
}

// =====================================================================
// Connections
// =====================================================================

type mockListLogsUC struct {
	logs  []*connection.Log
	err   error
	query usecases.ListLogsQuery
}

func (m *mockListLogsUC) Execute(ctx context.Context, query usecases.ListLogsQuery) ([]*connection.Log, error) {
	m.query = query
	return m.logs, m.err
}

type mockConnectionStatsUC struct {
	summary connection.Summary
	err     error
}

func (m *mockConnectionStatsUC) Execute(ctx context.Context, userSID string) (connection.Summary, error) {
	return m.summary, m.err
}

func createTestLogs(t *testing.T, n int) []*connection.Log {
	t.Helper()
	logs := make([]*connection.Log, 0, n)
	for i := n; i > 0; i-- {
		l, err := connection.ReconstructLog(connection.LogSnapshot{
			ID:             uint(i),
			SID:            fmt.Sprintf("log_%d", i),
			UserID:         1,
			Timestamp:      testStart.Add(time.Duration(i) * time.Minute),
			ServerLocation: "London, UK",
			IPAddress:      "104.21.1.2",
			DataUsed:       256,
			Duration:       60,
			Status:         string(connection.LogStatusDisconnected),
		})
		require.NoError(t, err)
		logs = append(logs, l)
	}
	return logs
}

func TestConnectionHandler_ListLogs(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		mockUC := &mockListLogsUC{logs: createTestLogs(t, 2)}
		handler := NewConnectionHandler(mockUC, nil, logger.NewNopLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/api/connections/logs", nil)
		testutil.SetAuthContext(c, "usr_test123")

		handler.ListLogs(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 50, mockUC.query.Limit)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var logs []map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Data, &logs))
		require.Len(t, logs, 2)
		assert.Equal(t, "log_2", logs[0]["id"])
		assert.Equal(t, "London, UK", logs[0]["serverLocation"])
		assert.EqualValues(t, 256, logs[0]["dataUsed"])
	})

	t.Run("explicit limit passed through", func(t *testing.T) {
		mockUC := &mockListLogsUC{}
		handler := NewConnectionHandler(mockUC, nil, logger.NewNopLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/api/connections/logs", nil)
		testutil.SetQueryParams(c, map[string]string{"limit": "10"})
		testutil.SetAuthContext(c, "usr_test123")

		handler.ListLogs(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 10, mockUC.query.Limit)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.JSONEq(t, `[]`, string(resp.Data))
	})

	t.Run("non-integer limit", func(t *testing.T) {
		handler := NewConnectionHandler(&mockListLogsUC{}, nil, logger.NewNopLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/api/connections/logs", nil)
		testutil.SetQueryParams(c, map[string]string{"limit": "ten"})
		testutil.SetAuthContext(c, "usr_test123")

		handler.ListLogs(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestConnectionHandler_GetStats(t *testing.T) {
	mockUC := &mockConnectionStatsUC{summary: connection.Summary{TotalConnections: 4, SuccessRate: 75, AverageDuration: 120}}
	handler := NewConnectionHandler(nil, mockUC, logger.NewNopLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/api/connections/stats", nil)
	testutil.SetAuthContext(c, "usr_test123")

	handler.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.JSONEq(t, `{"totalConnections":4,"successRate":75,"averageDuration":120}`, string(resp.Data))
}

// =====================================================================
// Servers
// =====================================================================

type stubServers struct {
	servers []server.Server
}

func (s stubServers) Execute() []server.Server { return s.servers }

type stubLocations []string

func (s stubLocations) Execute() []string { return s }

type stubRecommended struct {
	server server.Server
	err    error
}

func (s stubRecommended) Execute() (server.Server, error) { return s.server, s.err }

func testServer(id string, load int) server.Server {
	return server.Server{
		Definition: server.Definition{
			ID:       id,
			Name:     "US East",
			Location: "New York, USA",
			Country:  "US",
			IP:       "192.168.1.1",
			Protocol: "WireGuard",
			Status:   server.StatusOnline,
		},
		Load: load,
		Ping: 25,
	}
}

func TestServerHandler_List(t *testing.T) {
	handler := NewServerHandler(stubServers{servers: []server.Server{testServer("server1", 40), testServer("server2", 20)}}, nil, nil)
	c, w := testutil.NewTestContext(http.MethodGet, "/api/servers", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var servers []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &servers))
	require.Len(t, servers, 2)
	assert.Equal(t, "server1", servers[0]["id"])
	assert.Equal(t, "online", servers[0]["status"])
	assert.NotContains(t, servers[0], "notesHtml")
}

func TestServerHandler_Locations(t *testing.T) {
	handler := NewServerHandler(nil, stubLocations{"New York, USA", "London, UK"}, nil)
	c, w := testutil.NewTestContext(http.MethodGet, "/api/servers/locations", nil)

	handler.Locations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.JSONEq(t, `["New York, USA","London, UK"]`, string(resp.Data))
}

func TestServerHandler_Recommended(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler := NewServerHandler(nil, nil, stubRecommended{server: testServer("server2", 20)})
		c, w := testutil.NewTestContext(http.MethodGet, "/api/servers/recommended", nil)

		handler.Recommended(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"server2"`)
	})

	t.Run("none online", func(t *testing.T) {
		handler := NewServerHandler(nil, nil, stubRecommended{err: errors.NewNotFoundError("No server online")})
		c, w := testutil.NewTestContext(http.MethodGet, "/api/servers/recommended", nil)

		handler.Recommended(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =====================================================================
// Health
// =====================================================================

type stubPinger struct {
	err error
}

func (s stubPinger) PingContext(ctx context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/health", nil)

		NewHealthHandler(stubPinger{}).Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.JSONEq(t, `{"status":"ok"}`, string(resp.Data))
	})

	t.Run("database down", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/health", nil)

		NewHealthHandler(stubPinger{err: stderrors.New("closed")}).Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
