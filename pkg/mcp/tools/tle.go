package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerGetTLETool adds the get_tle tool for fetching orbital elements.
func registerGetTLETool(s *server.MCPServer, deps *SatelliteToolDeps) {
	tool := mcp.NewTool(
		"get_tle",
		mcp.WithDescription(
			"Get the current two-line element set (TLE) for a satellite. "+
				"A TLE encodes the orbital state needed to propagate the satellite's trajectory. "+
				"Example: get_tle(norad_id=25544) returns the TLE for the International Space Station.",
		),
		mcp.WithNumber(
			"norad_id",
			mcp.Required(),
			mcp.Description("NORAD catalog number of the satellite (e.g., 25544 for the ISS)"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)

	s.AddTool(tool, newGetTLEHandler(deps))
}

func newGetTLEHandler(deps *SatelliteToolDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, errResult := noradID(req)
		if errResult != nil {
			return errResult, nil
		}

		tle, err := deps.Client.GetTLE(ctx, id)
		if err != nil {
			if result := resultFromClientError(err); result != nil {
				return result, nil
			}
			return nil, err
		}

		return jsonResult(tle)
	}
}
