package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/skytrack/skytrack-mcp/pkg/n2yo"
)

// aboveResult is the get_above tool payload.
type aboveResult struct {
	Count      int                   `json:"count"`
	Satellites []n2yo.SatelliteAbove `json:"satellites"`
}

// registerGetAboveTool adds the get_above tool for zenith-radius queries.
func registerGetAboveTool(s *server.MCPServer, deps *SatelliteToolDeps) {
	tool := mcp.NewTool(
		"get_above",
		mcp.WithDescription(
			"List all satellites currently within an angular radius of the zenith at an observer location. "+
				"Optionally restrict to one satellite category (e.g., 18 for Amateur radio, 52 for Starlink; "+
				"0 means all categories). "+
				"Example: get_above(observer_lat=40.7, observer_lng=-74.0, search_radius=45, category_id=18).",
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
			"search_radius",
			mcp.Description("Angular search radius from the zenith in degrees, 0-90 (default 90)"),
		),
		mcp.WithNumber(
			"category_id",
			mcp.Description("Satellite category id to filter by; 0 means all categories (default 0)"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)

	s.AddTool(tool, newGetAboveHandler(deps))
}

func newGetAboveHandler(deps *SatelliteToolDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lat, lng, errResult := observer(req)
		if errResult != nil {
			return errResult, nil
		}

		alt, err := optionalFloat(req, "observer_alt")
		if err != nil {
			return NewErrorResult("invalid_parameters", err.Error()), nil
		}
		radius, errResult := boundedOptionalInt(req, "search_radius", 0, 90)
		if errResult != nil {
			return errResult, nil
		}
		category, err := optionalInt(req, "category_id")
		if err != nil {
			return NewErrorResult("invalid_parameters", err.Error()), nil
		}
		if category != nil && *category < 0 {
			return NewErrorResult("invalid_parameters", "category_id must not be negative"), nil
		}

		sats, err := deps.Client.GetAbove(ctx, lat, lng, &n2yo.AboveOptions{
			ObserverAlt:  alt,
			SearchRadius: radius,
			CategoryID:   category,
		})
		if err != nil {
			if result := resultFromClientError(err); result != nil {
				return result, nil
			}
			return nil, err
		}

		return jsonResult(aboveResult{
			Count:      len(sats),
			Satellites: sats,
		})
	}
}
