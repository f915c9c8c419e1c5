package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSatelliteURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		wantID   int
		wantRest []string
		wantErr  bool
	}{
		{
			name:     "tle resource",
			uri:      "satellite://25544/tle",
			wantID:   25544,
			wantRest: []string{"tle"},
		},
		{
			name:     "positions resource",
			uri:      "satellite://43013/positions/40.7/-74",
			wantID:   43013,
			wantRest: []string{"positions", "40.7", "-74"},
		},
		{
			name:    "wrong scheme",
			uri:     "satellites://25544/tle",
			wantErr: true,
		},
		{
			name:    "non-numeric id",
			uri:     "satellite://iss/tle",
			wantErr: true,
		},
		{
			name:    "zero id",
			uri:     "satellite://0/tle",
			wantErr: true,
		},
		{
			name:    "negative id",
			uri:     "satellite://-5/tle",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, rest, err := parseSatelliteURI(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestParseObserverSegments(t *testing.T) {
	lat, lng, err := parseObserverSegments([]string{"positions", "51.5", "-0.1"})
	require.NoError(t, err)
	assert.Equal(t, 51.5, lat)
	assert.Equal(t, -0.1, lng)

	_, _, err = parseObserverSegments([]string{"positions", "91", "0"})
	assert.Error(t, err, "latitude beyond range must be rejected")

	_, _, err = parseObserverSegments([]string{"positions", "0", "181"})
	assert.Error(t, err, "longitude beyond range must be rejected")

	_, _, err = parseObserverSegments([]string{"tle"})
	assert.Error(t, err, "wrong segment shape must be rejected")
}
