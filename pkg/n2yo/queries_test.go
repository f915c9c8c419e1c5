package n2yo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream records every request path and serves a fixed body.
type fakeUpstream struct {
	*httptest.Server
	paths chan string
}

func newFakeUpstream(t *testing.T, body string) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{paths: make(chan string, 16)}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.paths <- r.URL.RequestURI()
		w.Write([]byte(body))
	}))
	t.Cleanup(f.Server.Close)
	return f
}

// lastPath returns the recorded request path with the credential marker
// stripped, so tests assert only the adapter-built portion.
func (f *fakeUpstream) lastPath(t *testing.T) string {
	t.Helper()
	select {
	case p := <-f.paths:
		marker := strings.Index(p, "&apiKey=")
		require.GreaterOrEqual(t, marker, 0, "request must carry the apiKey marker")
		return p[:marker]
	default:
		t.Fatal("no request recorded")
		return ""
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestGetTLE_FullEnvelope(t *testing.T) {
	upstream := newFakeUpstream(t, `{
		"info": {"satid": 25544, "satname": "ISS (ZARYA)", "transactionscount": 7},
		"tle": "1 25544U 98067A   ...\r\n2 25544  51.6400 ..."
	}`)
	c := newTestClient(t, upstream.Server)

	tle, err := c.GetTLE(context.Background(), 25544)
	require.NoError(t, err)

	assert.Equal(t, "/tle/25544", upstream.lastPath(t))
	assert.Equal(t, 25544, tle.SatID)
	assert.Equal(t, "ISS (ZARYA)", tle.Name)
	assert.Equal(t, 7, tle.TransactionCount)
	assert.Contains(t, tle.Lines, "\r\n")
}

func TestGetTLE_DefaultsOmittedFields(t *testing.T) {
	upstream := newFakeUpstream(t, `{"info": {"satid": 43013}, "tle": "L1\r\nL2"}`)
	c := newTestClient(t, upstream.Server)

	tle, err := c.GetTLE(context.Background(), 43013)
	require.NoError(t, err)

	assert.Equal(t, "Satellite 43013", tle.Name)
	assert.Equal(t, 0, tle.TransactionCount)
}

func TestGetTLE_MalformedResponse(t *testing.T) {
	upstream := newFakeUpstream(t, `<html>gateway error</html>`)
	c := newTestClient(t, upstream.Server)

	_, err := c.GetTLE(context.Background(), 25544)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindUpstream))
}

func TestGetPositions_AppliesDefaults(t *testing.T) {
	upstream := newFakeUpstream(t, `{"info": {"satid": 25544, "satname": "ISS"}, "positions": []}`)
	c := newTestClient(t, upstream.Server)

	_, err := c.GetPositions(context.Background(), 25544, 40.7, -74.0, nil)
	require.NoError(t, err)

	assert.Equal(t, "/positions/25544/40.7/-74/0/60", upstream.lastPath(t))
}

func TestGetPositions_ExplicitValuesAppearVerbatim(t *testing.T) {
	upstream := newFakeUpstream(t, `{"info": {"satid": 25544, "satname": "ISS"}, "positions": []}`)
	c := newTestClient(t, upstream.Server)

	opts := &PositionOptions{ObserverAlt: floatPtr(5000), Seconds: intPtr(120)}
	_, err := c.GetPositions(context.Background(), 25544, 40.7, -74.0, opts)
	require.NoError(t, err)

	assert.Equal(t, "/positions/25544/40.7/-74/5000/120", upstream.lastPath(t))
}

func TestGetPositions_ExplicitZeroIsNotDefaulted(t *testing.T) {
	upstream := newFakeUpstream(t, `{"info": {"satid": 25544, "satname": "ISS"}, "positions": []}`)
	c := newTestClient(t, upstream.Server)

	// seconds=0 was supplied on purpose, the adapter must not swap in 60.
	opts := &PositionOptions{ObserverAlt: floatPtr(0), Seconds: intPtr(0)}
	_, err := c.GetPositions(context.Background(), 25544, 0, 0, opts)
	require.NoError(t, err)

	assert.Equal(t, "/positions/25544/0/0/0/0", upstream.lastPath(t))
}

func TestGetPositions_UnwrapsRecords(t *testing.T) {
	upstream := newFakeUpstream(t, `{
		"info": {"satid": 25544, "satname": "ISS (ZARYA)"},
		"positions": [
			{"satlatitude": 41.1, "satlongitude": -73.2, "sataltitude": 420.5,
			 "azimuth": 120.5, "elevation": 45.2, "ra": 210.1, "dec": -12.4,
			 "timestamp": 1700000000, "eclipsed": false},
			{"satlatitude": 41.2, "satlongitude": -73.1, "sataltitude": 420.6,
			 "azimuth": 121.0, "elevation": 45.9, "ra": 210.3, "dec": -12.2,
			 "timestamp": 1700000001, "eclipsed": true}
		]
	}`)
	c := newTestClient(t, upstream.Server)

	positions, err := c.GetPositions(context.Background(), 25544, 40.7, -74.0, nil)
	require.NoError(t, err)
	require.Len(t, positions, 2)

	first := positions[0]
	assert.Equal(t, 25544, first.SatID)
	assert.Equal(t, "ISS (ZARYA)", first.Name)
	assert.Equal(t, 41.1, first.Latitude)
	assert.Equal(t, 420.5, first.Altitude)
	assert.Equal(t, int64(1700000000), first.Timestamp)
	assert.False(t, first.Eclipsed)
	assert.True(t, positions[1].Eclipsed)
}

func TestGetVisualPasses_PathAndDefaults(t *testing.T) {
	upstream := newFakeUpstream(t, `{"info": {"satid": 25544, "satname": "ISS"}, "passes": []}`)
	c := newTestClient(t, upstream.Server)

	passes, err := c.GetVisualPasses(context.Background(), 25544, 51.5, -0.1, nil)
	require.NoError(t, err)

	assert.Equal(t, "/visualpasses/25544/51.5/-0.1/0/7/10", upstream.lastPath(t))
	assert.NotNil(t, passes)
	assert.Empty(t, passes)
}

func TestGetVisualPasses_UnwrapsRecords(t *testing.T) {
	upstream := newFakeUpstream(t, `{
		"info": {"satid": 25544, "satname": "ISS (ZARYA)", "passescount": 1},
		"passes": [{
			"startAz": 290.1, "startAzCompass": "WNW", "startEl": 10.0, "startUTC": 1700001000,
			"maxAz": 20.4, "maxAzCompass": "NNE", "maxEl": 78.3, "maxUTC": 1700001300,
			"endAz": 110.8, "endAzCompass": "ESE", "endEl": 10.0, "endUTC": 1700001600,
			"mag": -3.1, "duration": 600
		}]
	}`)
	c := newTestClient(t, upstream.Server)

	passes, err := c.GetVisualPasses(context.Background(), 25544, 51.5, -0.1, nil)
	require.NoError(t, err)
	require.Len(t, passes, 1)

	p := passes[0]
	assert.Equal(t, "ISS (ZARYA)", p.Name)
	assert.Equal(t, "WNW", p.StartAzCompass)
	assert.Equal(t, 78.3, p.MaxEl)
	assert.Equal(t, -3.1, p.Magnitude)
	assert.Equal(t, 600, p.Duration)
}

func TestGetRadioPasses_PathAndDefaults(t *testing.T) {
	upstream := newFakeUpstream(t, `{"info": {"satid": 7530, "satname": "OSCAR 7"}, "passes": []}`)
	c := newTestClient(t, upstream.Server)

	_, err := c.GetRadioPasses(context.Background(), 7530, 51.5, -0.1, nil)
	require.NoError(t, err)

	assert.Equal(t, "/radiopasses/7530/51.5/-0.1/0/7/0", upstream.lastPath(t))
}

func TestGetRadioPasses_ExplicitOptions(t *testing.T) {
	upstream := newFakeUpstream(t, `{"info": {"satid": 7530, "satname": "OSCAR 7"}, "passes": []}`)
	c := newTestClient(t, upstream.Server)

	opts := &RadioPassOptions{ObserverAlt: floatPtr(150), Days: intPtr(2), MinElevation: intPtr(30)}
	_, err := c.GetRadioPasses(context.Background(), 7530, 51.5, -0.1, opts)
	require.NoError(t, err)

	assert.Equal(t, "/radiopasses/7530/51.5/-0.1/150/2/30", upstream.lastPath(t))
}

func TestGetAbove_PathAndDefaults(t *testing.T) {
	upstream := newFakeUpstream(t, `{"info": {"category": "ALL", "satcount": 0}, "above": []}`)
	c := newTestClient(t, upstream.Server)

	_, err := c.GetAbove(context.Background(), 40.7, -74.0, nil)
	require.NoError(t, err)

	assert.Equal(t, "/above/40.7/-74/0/90/0", upstream.lastPath(t))
}

func TestGetAbove_AbsentListYieldsEmptySlice(t *testing.T) {
	// No "above" field at all: well-formed but empty result, not an error.
	upstream := newFakeUpstream(t, `{"info": {"category": "Amateur radio", "satcount": 0}}`)
	c := newTestClient(t, upstream.Server)

	sats, err := c.GetAbove(context.Background(), 40.7, -74.0, nil)
	require.NoError(t, err)
	assert.NotNil(t, sats)
	assert.Empty(t, sats)
}

func TestGetAbove_NullListYieldsEmptySlice(t *testing.T) {
	upstream := newFakeUpstream(t, `{"info": {"category": "ALL", "satcount": 0}, "above": null}`)
	c := newTestClient(t, upstream.Server)

	sats, err := c.GetAbove(context.Background(), 40.7, -74.0, nil)
	require.NoError(t, err)
	assert.NotNil(t, sats)
	assert.Empty(t, sats)
}

func TestGetAbove_UnwrapsRecords(t *testing.T) {
	upstream := newFakeUpstream(t, `{
		"info": {"category": "ALL", "satcount": 1},
		"above": [{
			"satid": 25544, "satname": "ISS (ZARYA)", "intDesignator": "1998-067A",
			"launchDate": "1998-11-20", "satlat": 12.3, "satlng": 45.6, "satalt": 420.1
		}]
	}`)
	c := newTestClient(t, upstream.Server)

	sats, err := c.GetAbove(context.Background(), 0, 0, nil)
	require.NoError(t, err)
	require.Len(t, sats, 1)

	s := sats[0]
	assert.Equal(t, 25544, s.SatID)
	assert.Equal(t, "1998-067A", s.IntlDesignator)
	assert.Equal(t, "1998-11-20", s.LaunchDate)
	assert.Equal(t, 420.1, s.Altitude)
}

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5000, "5000"},
		{40.7, "40.7"},
		{-74, "-74"},
		{-0.1, "-0.1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCoord(tt.in))
	}
}
