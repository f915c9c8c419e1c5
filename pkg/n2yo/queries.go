package n2yo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Wire shapes as upstream sends them. Each response is an envelope with an
// "info" object plus one data field; the adapters below unwrap that envelope
// into the exported domain records.

type wireInfo struct {
	SatID             int    `json:"satid"`
	SatName           string `json:"satname"`
	TransactionsCount int    `json:"transactionscount"`
}

type wirePosition struct {
	SatLatitude  float64 `json:"satlatitude"`
	SatLongitude float64 `json:"satlongitude"`
	SatAltitude  float64 `json:"sataltitude"`
	Azimuth      float64 `json:"azimuth"`
	Elevation    float64 `json:"elevation"`
	RA           float64 `json:"ra"`
	Dec          float64 `json:"dec"`
	Timestamp    int64   `json:"timestamp"`
	Eclipsed     bool    `json:"eclipsed"`
}

type wirePass struct {
	StartAz        float64 `json:"startAz"`
	StartAzCompass string  `json:"startAzCompass"`
	StartEl        float64 `json:"startEl"`
	StartUTC       int64   `json:"startUTC"`
	MaxAz          float64 `json:"maxAz"`
	MaxAzCompass   string  `json:"maxAzCompass"`
	MaxEl          float64 `json:"maxEl"`
	MaxUTC         int64   `json:"maxUTC"`
	EndAz          float64 `json:"endAz"`
	EndAzCompass   string  `json:"endAzCompass"`
	EndEl          float64 `json:"endEl"`
	EndUTC         int64   `json:"endUTC"`
	Mag            float64 `json:"mag"`
	Duration       int     `json:"duration"`
}

type wireAbove struct {
	SatID         int     `json:"satid"`
	SatName       string  `json:"satname"`
	IntDesignator string  `json:"intDesignator"`
	LaunchDate    string  `json:"launchDate"`
	SatLat        float64 `json:"satlat"`
	SatLng        float64 `json:"satlng"`
	SatAlt        float64 `json:"satalt"`
}

// GetTLE fetches the current two-line element set for a satellite.
// When upstream omits the name or transaction count, the name defaults to
// "Satellite {id}" and the count to zero.
func (c *Client) GetTLE(ctx context.Context, satID int) (*TLE, error) {
	body, err := c.execute(ctx, "tle", fmt.Sprintf("/tle/%d", satID))
	if err != nil {
		return nil, err
	}

	var env struct {
		Info wireInfo `json:"info"`
		TLE  string   `json:"tle"`
	}
	if err := decodeEnvelope(body, &env); err != nil {
		return nil, err
	}

	id := env.Info.SatID
	if id == 0 {
		id = satID
	}
	name := env.Info.SatName
	if name == "" {
		name = fmt.Sprintf("Satellite %d", id)
	}

	return &TLE{
		SatID:            id,
		Name:             name,
		TransactionCount: env.Info.TransactionsCount,
		Lines:            env.TLE,
	}, nil
}

// GetPositions fetches future positions of a satellite as seen from an
// observer, one per second. Absent options default to alt=0 and seconds=60.
func (c *Client) GetPositions(ctx context.Context, satID int, lat, lng float64, opts *PositionOptions) ([]Position, error) {
	if opts == nil {
		opts = &PositionOptions{}
	}
	alt := floatOrDefault(opts.ObserverAlt, DefaultObserverAlt)
	seconds := intOrDefault(opts.Seconds, DefaultSeconds)

	path := fmt.Sprintf("/positions/%d/%s/%s/%s/%d",
		satID, formatCoord(lat), formatCoord(lng), formatCoord(alt), seconds)

	body, err := c.execute(ctx, "positions", path)
	if err != nil {
		return nil, err
	}

	var env struct {
		Info      wireInfo       `json:"info"`
		Positions []wirePosition `json:"positions"`
	}
	if err := decodeEnvelope(body, &env); err != nil {
		return nil, err
	}

	// Field absent or null means no data, not an error.
	positions := make([]Position, 0, len(env.Positions))
	for _, p := range env.Positions {
		positions = append(positions, Position{
			SatID:          env.Info.SatID,
			Name:           env.Info.SatName,
			Latitude:       p.SatLatitude,
			Longitude:      p.SatLongitude,
			Altitude:       p.SatAltitude,
			Azimuth:        p.Azimuth,
			Elevation:      p.Elevation,
			RightAscension: p.RA,
			Declination:    p.Dec,
			Timestamp:      p.Timestamp,
			Eclipsed:       p.Eclipsed,
		})
	}
	return positions, nil
}

// GetVisualPasses fetches optically visible passes for an observer.
// Absent options default to alt=0, days=7, minVisibility=10.
func (c *Client) GetVisualPasses(ctx context.Context, satID int, lat, lng float64, opts *VisualPassOptions) ([]Pass, error) {
	if opts == nil {
		opts = &VisualPassOptions{}
	}
	alt := floatOrDefault(opts.ObserverAlt, DefaultObserverAlt)
	days := intOrDefault(opts.Days, DefaultDays)
	minVisibility := intOrDefault(opts.MinVisibility, DefaultMinVisibility)

	path := fmt.Sprintf("/visualpasses/%d/%s/%s/%s/%d/%d",
		satID, formatCoord(lat), formatCoord(lng), formatCoord(alt), days, minVisibility)

	return c.fetchPasses(ctx, "visualpasses", path)
}

// GetRadioPasses fetches radio-communication passes for an observer.
// Absent options default to alt=0, days=7, minElevation=0.
func (c *Client) GetRadioPasses(ctx context.Context, satID int, lat, lng float64, opts *RadioPassOptions) ([]Pass, error) {
	if opts == nil {
		opts = &RadioPassOptions{}
	}
	alt := floatOrDefault(opts.ObserverAlt, DefaultObserverAlt)
	days := intOrDefault(opts.Days, DefaultDays)
	minElevation := intOrDefault(opts.MinElevation, DefaultMinElevation)

	path := fmt.Sprintf("/radiopasses/%d/%s/%s/%s/%d/%d",
		satID, formatCoord(lat), formatCoord(lng), formatCoord(alt), days, minElevation)

	return c.fetchPasses(ctx, "radiopasses", path)
}

func (c *Client) fetchPasses(ctx context.Context, endpoint, path string) ([]Pass, error) {
	body, err := c.execute(ctx, endpoint, path)
	if err != nil {
		return nil, err
	}

	var env struct {
		Info   wireInfo   `json:"info"`
		Passes []wirePass `json:"passes"`
	}
	if err := decodeEnvelope(body, &env); err != nil {
		return nil, err
	}

	passes := make([]Pass, 0, len(env.Passes))
	for _, p := range env.Passes {
		passes = append(passes, Pass{
			SatID:          env.Info.SatID,
			Name:           env.Info.SatName,
			StartAz:        p.StartAz,
			StartAzCompass: p.StartAzCompass,
			StartEl:        p.StartEl,
			StartUTC:       p.StartUTC,
			MaxAz:          p.MaxAz,
			MaxAzCompass:   p.MaxAzCompass,
			MaxEl:          p.MaxEl,
			MaxUTC:         p.MaxUTC,
			EndAz:          p.EndAz,
			EndAzCompass:   p.EndAzCompass,
			EndEl:          p.EndEl,
			EndUTC:         p.EndUTC,
			Magnitude:      p.Mag,
			Duration:       p.Duration,
		})
	}
	return passes, nil
}

// GetAbove fetches all satellites within a search radius of the observer's
// zenith. Absent options default to alt=0, radius=90, category=0 (all).
func (c *Client) GetAbove(ctx context.Context, lat, lng float64, opts *AboveOptions) ([]SatelliteAbove, error) {
	if opts == nil {
		opts = &AboveOptions{}
	}
	alt := floatOrDefault(opts.ObserverAlt, DefaultObserverAlt)
	radius := intOrDefault(opts.SearchRadius, DefaultSearchRadius)
	category := intOrDefault(opts.CategoryID, DefaultCategoryID)

	path := fmt.Sprintf("/above/%s/%s/%s/%d/%d",
		formatCoord(lat), formatCoord(lng), formatCoord(alt), radius, category)

	body, err := c.execute(ctx, "above", path)
	if err != nil {
		return nil, err
	}

	var env struct {
		Above []wireAbove `json:"above"`
	}
	if err := decodeEnvelope(body, &env); err != nil {
		return nil, err
	}

	sats := make([]SatelliteAbove, 0, len(env.Above))
	for _, s := range env.Above {
		sats = append(sats, SatelliteAbove{
			SatID:          s.SatID,
			Name:           s.SatName,
			IntlDesignator: s.IntDesignator,
			LaunchDate:     s.LaunchDate,
			Latitude:       s.SatLat,
			Longitude:      s.SatLng,
			Altitude:       s.SatAlt,
		})
	}
	return sats, nil
}

// decodeEnvelope parses an upstream JSON envelope; a body that does not
// parse is an upstream error, since a healthy N2YO always returns JSON.
func decodeEnvelope(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &Error{
			Kind:    KindUpstream,
			Message: "malformed upstream response",
			Body:    truncateBody(body),
			Cause:   err,
		}
	}
	return nil
}

// formatCoord renders a coordinate or altitude with the shortest exact
// decimal representation, so explicit values appear in the path verbatim.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatOrDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func intOrDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
