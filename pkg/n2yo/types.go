package n2yo

// Domain records returned by the query adapters. All are immutable value
// records populated from upstream responses; JSON tags are the names this
// server exposes to callers, not the upstream wire names.

// TLE is the current two-line element set for one satellite.
type TLE struct {
	SatID            int    `json:"norad_id"`
	Name             string `json:"name"`
	TransactionCount int    `json:"transaction_count"`
	Lines            string `json:"tle"` // raw CRLF-delimited TLE text
}

// Position is the satellite footprint and look angles at one time step.
type Position struct {
	SatID          int     `json:"norad_id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Altitude       float64 `json:"altitude_km"`
	Azimuth        float64 `json:"azimuth"`
	Elevation      float64 `json:"elevation"`
	RightAscension float64 `json:"right_ascension"`
	Declination    float64 `json:"declination"`
	Timestamp      int64   `json:"timestamp"`
	Eclipsed       bool    `json:"eclipsed"`
}

// Pass is one horizon crossing for an observer. Magnitude is only populated
// for visual passes; radio passes omit it along with the start/end elevations.
// Passes keep upstream's chronological order and are never re-sorted.
type Pass struct {
	SatID          int     `json:"norad_id"`
	Name           string  `json:"name"`
	StartAz        float64 `json:"start_azimuth"`
	StartAzCompass string  `json:"start_azimuth_compass"`
	StartEl        float64 `json:"start_elevation,omitempty"`
	StartUTC       int64   `json:"start_utc"`
	MaxAz          float64 `json:"max_azimuth"`
	MaxAzCompass   string  `json:"max_azimuth_compass"`
	MaxEl          float64 `json:"max_elevation"`
	MaxUTC         int64   `json:"max_utc"`
	EndAz          float64 `json:"end_azimuth"`
	EndAzCompass   string  `json:"end_azimuth_compass"`
	EndEl          float64 `json:"end_elevation,omitempty"`
	EndUTC         int64   `json:"end_utc"`
	Magnitude      float64 `json:"magnitude,omitempty"`
	Duration       int     `json:"duration_seconds"`
}

// SatelliteAbove is one satellite currently within the search radius of an
// observer's zenith.
type SatelliteAbove struct {
	SatID          int     `json:"norad_id"`
	Name           string  `json:"name"`
	IntlDesignator string  `json:"intl_designator"`
	LaunchDate     string  `json:"launch_date"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Altitude       float64 `json:"altitude_km"`
}

// Defaults applied by the adapters when the corresponding option is absent.
// An explicitly supplied value, including zero, is always used as-is.
const (
	DefaultObserverAlt   = 0.0
	DefaultSeconds       = 60
	DefaultDays          = 7
	DefaultMinVisibility = 10
	DefaultMinElevation  = 0
	DefaultSearchRadius  = 90
	DefaultCategoryID    = 0 // all categories
)

// PositionOptions are the optional parameters of GetPositions. Nil fields
// take the documented defaults.
type PositionOptions struct {
	ObserverAlt *float64 // observer altitude above sea level, meters
	Seconds     *int     // number of future positions, one per second
}

// VisualPassOptions are the optional parameters of GetVisualPasses.
type VisualPassOptions struct {
	ObserverAlt   *float64
	Days          *int // prediction window
	MinVisibility *int // minimum visible duration in seconds
}

// RadioPassOptions are the optional parameters of GetRadioPasses.
type RadioPassOptions struct {
	ObserverAlt  *float64
	Days         *int
	MinElevation *int // minimum max-elevation in degrees
}

// AboveOptions are the optional parameters of GetAbove.
type AboveOptions struct {
	ObserverAlt  *float64
	SearchRadius *int // angular radius from zenith, 0-90 degrees
	CategoryID   *int // 0 means all categories
}
