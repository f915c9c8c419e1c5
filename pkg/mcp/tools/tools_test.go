package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skytrack/skytrack-mcp/pkg/n2yo"
	"github.com/skytrack/skytrack-mcp/pkg/retry"
)

// newToolDeps builds tool deps backed by a fake upstream serving body.
func newToolDeps(t *testing.T, handler http.HandlerFunc) *SatelliteToolDeps {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := n2yo.New("TESTKEY", zap.NewNop(),
		n2yo.WithBaseURL(server.URL),
		n2yo.WithRetryConfig(&retry.Config{
			MaxRetries:   3,
			InitialDelay: time.Millisecond,
			MaxDelay:     10 * time.Millisecond,
			Multiplier:   2.0,
		}))
	require.NoError(t, err)

	return &SatelliteToolDeps{
		Client:  client,
		Logger:  zap.NewNop(),
		Version: "test",
	}
}

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func decodeError(t *testing.T, result *mcp.CallToolResult) ErrorResponse {
	t.Helper()
	require.True(t, result.IsError, "expected an error result")
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	return resp
}

func TestGetTLEHandler_Success(t *testing.T) {
	deps := newToolDeps(t, serveJSON(`{
		"info": {"satid": 25544, "satname": "ISS (ZARYA)", "transactionscount": 2},
		"tle": "L1\r\nL2"
	}`))

	result, err := newGetTLEHandler(deps)(context.Background(), callReq(map[string]any{
		"norad_id": float64(25544),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var tle n2yo.TLE
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &tle))
	assert.Equal(t, 25544, tle.SatID)
	assert.Equal(t, "ISS (ZARYA)", tle.Name)
}

func TestGetTLEHandler_RejectsBadID(t *testing.T) {
	var hits atomic.Int32
	deps := newToolDeps(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	for _, args := range []map[string]any{
		{},                               // missing
		{"norad_id": float64(0)},         // not positive
		{"norad_id": float64(-7)},        // negative
		{"norad_id": float64(25544.5)},   // fractional
		{"norad_id": "25544"},            // wrong type
	} {
		result, err := newGetTLEHandler(deps)(context.Background(), callReq(args))
		require.NoError(t, err)
		resp := decodeError(t, result)
		assert.Equal(t, "invalid_parameters", resp.Code)
	}

	assert.Equal(t, int32(0), hits.Load(), "validation failures must not reach upstream")
}

func TestGetPositionsHandler_RangeValidation(t *testing.T) {
	deps := newToolDeps(t, serveJSON(`{"info":{},"positions":[]}`))

	tests := []struct {
		name string
		args map[string]any
	}{
		{"latitude too high", map[string]any{"norad_id": float64(1), "observer_lat": float64(91), "observer_lng": float64(0)}},
		{"longitude too low", map[string]any{"norad_id": float64(1), "observer_lat": float64(0), "observer_lng": float64(-181)}},
		{"seconds out of range", map[string]any{"norad_id": float64(1), "observer_lat": float64(0), "observer_lng": float64(0), "seconds": float64(301)}},
		{"missing observer", map[string]any{"norad_id": float64(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newGetPositionsHandler(deps)(context.Background(), callReq(tt.args))
			require.NoError(t, err)
			resp := decodeError(t, result)
			assert.Equal(t, "invalid_parameters", resp.Code)
		})
	}
}

func TestGetPositionsHandler_Success(t *testing.T) {
	deps := newToolDeps(t, serveJSON(`{
		"info": {"satid": 25544, "satname": "ISS"},
		"positions": [{"satlatitude": 1, "satlongitude": 2, "sataltitude": 420,
			"azimuth": 3, "elevation": 4, "ra": 5, "dec": 6, "timestamp": 1700000000, "eclipsed": false}]
	}`))

	result, err := newGetPositionsHandler(deps)(context.Background(), callReq(map[string]any{
		"norad_id":     float64(25544),
		"observer_lat": float64(40.7),
		"observer_lng": float64(-74.0),
	}))
	require.NoError(t, err)

	var payload positionsResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, 1, payload.Count)
	require.Len(t, payload.Positions, 1)
	assert.Equal(t, "ISS", payload.Positions[0].Name)
}

func TestGetAboveHandler_EmptyResultIsNotError(t *testing.T) {
	deps := newToolDeps(t, serveJSON(`{"info": {"category": "ALL", "satcount": 0}}`))

	result, err := newGetAboveHandler(deps)(context.Background(), callReq(map[string]any{
		"observer_lat": float64(40.7),
		"observer_lng": float64(-74.0),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var payload aboveResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, 0, payload.Count)
	assert.NotNil(t, payload.Satellites)
	assert.Empty(t, payload.Satellites)
}

func TestSearchSatellitesHandler_Filters(t *testing.T) {
	deps := newToolDeps(t, serveJSON(`{
		"info": {"category": "ALL", "satcount": 2},
		"above": [
			{"satid": 25544, "satname": "ISS (ZARYA)", "intDesignator": "1998-067A"},
			{"satid": 33591, "satname": "NOAA 19", "intDesignator": "2009-005A"}
		]
	}`))

	result, err := newSearchSatellitesHandler(deps)(context.Background(), callReq(map[string]any{
		"query": "ISS",
	}))
	require.NoError(t, err)

	var payload searchResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, "ISS", payload.Query)
	require.Len(t, payload.Satellites, 1)
	assert.Equal(t, "ISS (ZARYA)", payload.Satellites[0].Name)
}

func TestHandler_RateLimitedRendersStructuredError(t *testing.T) {
	var attempts atomic.Int32
	deps := newToolDeps(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	result, err := newGetTLEHandler(deps)(context.Background(), callReq(map[string]any{
		"norad_id": float64(25544),
	}))
	require.NoError(t, err, "rate limiting is an actionable tool error, not a protocol error")

	resp := decodeError(t, result)
	assert.Equal(t, "rate_limited", resp.Code)
	assert.Equal(t, int32(4), attempts.Load())
}

func TestHandler_InvalidCredentialRendersStructuredError(t *testing.T) {
	deps := newToolDeps(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	result, err := newGetTLEHandler(deps)(context.Background(), callReq(map[string]any{
		"norad_id": float64(25544),
	}))
	require.NoError(t, err)

	resp := decodeError(t, result)
	assert.Equal(t, "invalid_credential", resp.Code)
}

func TestHandler_UpstreamErrorCarriesStatusDetails(t *testing.T) {
	deps := newToolDeps(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	result, err := newGetTLEHandler(deps)(context.Background(), callReq(map[string]any{
		"norad_id": float64(25544),
	}))
	require.NoError(t, err)

	resp := decodeError(t, result)
	assert.Equal(t, "upstream_error", resp.Code)
	details, ok := resp.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(http.StatusBadGateway), details["status_code"])
}
