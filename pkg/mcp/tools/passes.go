package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/skytrack/skytrack-mcp/pkg/n2yo"
)

// passesResult is the payload of both pass-prediction tools. Passes keep
// upstream's chronological order.
type passesResult struct {
	NoradID int         `json:"norad_id"`
	Count   int         `json:"count"`
	Passes  []n2yo.Pass `json:"passes"`
}

// registerGetVisualPassesTool adds the get_visual_passes tool for optical
// pass predictions.
func registerGetVisualPassesTool(s *server.MCPServer, deps *SatelliteToolDeps) {
	tool := mcp.NewTool(
		"get_visual_passes",
		mcp.WithDescription(
			"Predict upcoming optically visible passes of a satellite over an observer location. "+
				"A pass is visible when the satellite is sunlit while the observer is in darkness. "+
				"Each pass includes start/max/end azimuth, elevation, timestamps, visual magnitude and duration. "+
				"Example: get_visual_passes(norad_id=25544, observer_lat=51.5, observer_lng=-0.1, days=3).",
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
			"days",
			mcp.Description("Prediction window in days, 1-10 (default 7)"),
		),
		mcp.WithNumber(
			"min_visibility",
			mcp.Description("Minimum number of seconds the pass must be visible to be included (default 10)"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)

	s.AddTool(tool, newGetVisualPassesHandler(deps))
}

func newGetVisualPassesHandler(deps *SatelliteToolDeps) server.ToolHandlerFunc {
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
		days, errResult := boundedOptionalInt(req, "days", 1, 10)
		if errResult != nil {
			return errResult, nil
		}
		minVisibility, err := optionalInt(req, "min_visibility")
		if err != nil {
			return NewErrorResult("invalid_parameters", err.Error()), nil
		}

		passes, err := deps.Client.GetVisualPasses(ctx, id, lat, lng, &n2yo.VisualPassOptions{
			ObserverAlt:   alt,
			Days:          days,
			MinVisibility: minVisibility,
		})
		if err != nil {
			if result := resultFromClientError(err); result != nil {
				return result, nil
			}
			return nil, err
		}

		return jsonResult(passesResult{
			NoradID: id,
			Count:   len(passes),
			Passes:  passes,
		})
	}
}

// registerGetRadioPassesTool adds the get_radio_passes tool for
// radio-communication pass predictions.
func registerGetRadioPassesTool(s *server.MCPServer, deps *SatelliteToolDeps) {
	tool := mcp.NewTool(
		"get_radio_passes",
		mcp.WithDescription(
			"Predict upcoming passes of a satellite usable for radio communication from an observer location. "+
				"Unlike visual passes these do not require the satellite to be sunlit; the filter is the "+
				"maximum elevation the pass reaches. "+
				"Example: get_radio_passes(norad_id=7530, observer_lat=51.5, observer_lng=-0.1, min_elevation=30).",
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
			"days",
			mcp.Description("Prediction window in days, 1-10 (default 7)"),
		),
		mcp.WithNumber(
			"min_elevation",
			mcp.Description("Minimum max-elevation in degrees for a pass to be included (default 0)"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)

	s.AddTool(tool, newGetRadioPassesHandler(deps))
}

func newGetRadioPassesHandler(deps *SatelliteToolDeps) server.ToolHandlerFunc {
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
		days, errResult := boundedOptionalInt(req, "days", 1, 10)
		if errResult != nil {
			return errResult, nil
		}
		minElevation, err := optionalInt(req, "min_elevation")
		if err != nil {
			return NewErrorResult("invalid_parameters", err.Error()), nil
		}

		passes, err := deps.Client.GetRadioPasses(ctx, id, lat, lng, &n2yo.RadioPassOptions{
			ObserverAlt:  alt,
			Days:         days,
			MinElevation: minElevation,
		})
		if err != nil {
			if result := resultFromClientError(err); result != nil {
				return result, nil
			}
			return nil, err
		}

		return jsonResult(passesResult{
			NoradID: id,
			Count:   len(passes),
			Passes:  passes,
		})
	}
}
