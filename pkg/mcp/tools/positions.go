package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/skytrack/skytrack-mcp/pkg/n2yo"
)

// positionsResult is the get_positions tool payload.
type positionsResult struct {
	NoradID   int             `json:"norad_id"`
	Count     int             `json:"count"`
	Positions []n2yo.Position `json:"positions"`
}

// registerGetPositionsTool adds the get_positions tool for future position lookups.
func registerGetPositionsTool(s *server.MCPServer, deps *SatelliteToolDeps) {
	tool := mcp.NewTool(
		"get_positions",
		mcp.WithDescription(
			"Get future positions of a satellite as seen from an observer location, one position per second. "+
				"Returns latitude/longitude/altitude of the satellite footprint plus look angles (azimuth, elevation) "+
				"and right ascension/declination for each time step. "+
				"Example: get_positions(norad_id=25544, observer_lat=40.7, observer_lng=-74.0, seconds=120).",
		),
		mcp.WithNumber(
			"norad_id",
			mcp.Required(),
			mcp.Description("NORAD catalog number of the satellite"),
		),
		mcp.WithNumber(
			"observer_lat",
			mcp.Required(),
			mcp.Description("Observer latitude in decimal degrees (-90 to 90)"),
		),
		mcp.WithNumber(
			"observer_lng",
			mcp.Required(),
			mcp.Description("Observer longitude in decimal degrees (-180 to 180)"),
		),
		mcp.WithNumber(
			"observer_alt",
			mcp.Description("Observer altitude above sea level in meters (default 0)"),
		),
		mcp.WithNumber(
			"seconds",
			mcp.Description("Number of future positions to return, 1-300 (default 60)"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)

	s.AddTool(tool, newGetPositionsHandler(deps))
}

func newGetPositionsHandler(deps *SatelliteToolDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, errResult := noradID(req)
		if errResult != nil {
			return errResult, nil
		}
		lat, lng, errResult := observer(req)
		if errResult != nil {
			return errResult, nil
		}

		alt, err := optionalFloat(req, "observer_alt")
		if err != nil {
			return NewErrorResult("invalid_parameters", err.Error()), nil
		}
		seconds, errResult := boundedOptionalInt(req, "seconds", 1, 300)
		if errResult != nil {
			return errResult, nil
		}

		positions, err := deps.Client.GetPositions(ctx, id, lat, lng, &n2yo.PositionOptions{
			ObserverAlt: alt,
			Seconds:     seconds,
		})
		if err != nil {
			if result := resultFromClientError(err); result != nil {
				return result, nil
			}
			return nil, err
		}

		return jsonResult(positionsResult{
			NoradID:   id,
			Count:     len(positions),
			Positions: positions,
		})
	}
}
