package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/skytrack/skytrack-mcp/pkg/n2yo"
)

// searchResult is the search_satellites tool payload.
type searchResult struct {
	Query      string                `json:"query"`
	Count      int                   `json:"count"`
	Satellites []n2yo.SatelliteAbove `json:"satellites"`
}

// registerSearchSatellitesTool adds the search_satellites tool.
func registerSearchSatellitesTool(s *server.MCPServer, deps *SatelliteToolDeps) {
	tool := mcp.NewTool(
		"search_satellites",
		mcp.WithDescription(
			"Search satellites by name or international designator, case-insensitive substring match. "+
				"The upstream API has no search endpoint, so this scans satellites currently above the "+
				"equator within the maximum radius; satellites whose orbits never cross that swath will "+
				"not appear. An empty query returns the unfiltered set, optionally restricted by category. "+
				"Example: search_satellites(query='ISS') or search_satellites(category_id=52).",
		),
		mcp.WithString(
			"query",
			mcp.Description("Name or designator fragment to match (e.g., 'ISS', 'NOAA', '1998-067A')"),
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

	s.AddTool(tool, newSearchSatellitesHandler(deps))
}

func newSearchSatellitesHandler(deps *SatelliteToolDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := ""
		if raw, ok := arguments(req)["query"].(string); ok {
			query = strings.TrimSpace(raw)
		}

		category, err := optionalInt(req, "category_id")
		if err != nil {
			return NewErrorResult("invalid_parameters", err.Error()), nil
		}
		if category != nil && *category < 0 {
			return NewErrorResult("invalid_parameters", "category_id must not be negative"), nil
		}

		sats, err := deps.Client.SearchSatellites(ctx, query, category)
		if err != nil {
			if result := resultFromClientError(err); result != nil {
				return result, nil
			}
			return nil, err
		}

		return jsonResult(searchResult{
			Query:      query,
			Count:      len(sats),
			Satellites: sats,
		})
	}
}
