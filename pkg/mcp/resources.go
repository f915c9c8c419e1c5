package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/skytrack/skytrack-mcp/pkg/n2yo"
)

// RegisterResources adds the satellite resource templates. They resolve
// through the same query adapters as the tools and return pretty-printed
// JSON documents.
func RegisterResources(s *Server, client *n2yo.Client) {
	registerTLEResource(s, client)
	registerPositionsResource(s, client)
}

func registerTLEResource(s *Server, client *n2yo.Client) {
	tmpl := mcp.NewResourceTemplate(
		"satellite://{norad_id}/tle",
		"Satellite TLE",
		mcp.WithTemplateDescription("Current two-line element set for a satellite identified by NORAD catalog number"),
		mcp.WithTemplateMIMEType("application/json"),
	)

	s.mcp.AddResourceTemplate(tmpl, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		satID, _, err := parseSatelliteURI(req.Params.URI)
		if err != nil {
			return nil, err
		}

		tle, err := client.GetTLE(ctx, satID)
		if err != nil {
			s.logger.Warn("TLE resource read failed",
				zap.Int("norad_id", satID),
				zap.Error(err))
			return nil, err
		}

		return jsonResourceContents(req.Params.URI, tle)
	})
}

func registerPositionsResource(s *Server, client *n2yo.Client) {
	tmpl := mcp.NewResourceTemplate(
		"satellite://{norad_id}/positions/{observer_lat}/{observer_lng}",
		"Satellite positions",
		mcp.WithTemplateDescription("Next 60 seconds of positions for a satellite as seen from an observer at the given coordinates"),
		mcp.WithTemplateMIMEType("application/json"),
	)

	s.mcp.AddResourceTemplate(tmpl, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		satID, rest, err := parseSatelliteURI(req.Params.URI)
		if err != nil {
			return nil, err
		}

		lat, lng, err := parseObserverSegments(rest)
		if err != nil {
			return nil, err
		}

		positions, err := client.GetPositions(ctx, satID, lat, lng, nil)
		if err != nil {
			s.logger.Warn("positions resource read failed",
				zap.Int("norad_id", satID),
				zap.Error(err))
			return nil, err
		}

		return jsonResourceContents(req.Params.URI, positions)
	})
}

// parseSatelliteURI splits "satellite://{norad_id}/..." into the catalog
// number and the remaining path segments.
func parseSatelliteURI(uri string) (int, []string, error) {
	trimmed, ok := strings.CutPrefix(uri, "satellite://")
	if !ok {
		return 0, nil, fmt.Errorf("unsupported resource URI %q", uri)
	}

	segments := strings.Split(trimmed, "/")
	satID, err := strconv.Atoi(segments[0])
	if err != nil || satID < 1 {
		return 0, nil, fmt.Errorf("invalid NORAD id in resource URI %q", uri)
	}

	return satID, segments[1:], nil
}

// parseObserverSegments extracts lat/lng from "positions/{lat}/{lng}".
func parseObserverSegments(segments []string) (float64, float64, error) {
	if len(segments) != 3 || segments[0] != "positions" {
		return 0, 0, fmt.Errorf("expected positions/{lat}/{lng}, got %q", strings.Join(segments, "/"))
	}

	lat, err := strconv.ParseFloat(segments[1], 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("invalid observer latitude %q", segments[1])
	}
	lng, err := strconv.ParseFloat(segments[2], 64)
	if err != nil || lng < -180 || lng > 180 {
		return 0, 0, fmt.Errorf("invalid observer longitude %q", segments[2])
	}

	return lat, lng, nil
}

func jsonResourceContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource contents: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
