package tools

import (
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// Parameter extraction helpers. Optional parameters must distinguish
// "absent" from "explicitly zero", so they are read straight from the
// arguments map and returned as pointers; the query adapters apply the
// documented defaults only for nil.

func arguments(req mcp.CallToolRequest) map[string]any {
	args, _ := req.Params.Arguments.(map[string]any)
	return args
}

func requiredFloat(req mcp.CallToolRequest, key string) (float64, error) {
	raw, ok := arguments(req)[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("missing required parameter %q", key)
	}
	f, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("parameter %q must be a number", key)
	}
	return f, nil
}

func requiredInt(req mcp.CallToolRequest, key string) (int, error) {
	f, err := requiredFloat(req, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("parameter %q must be an integer", key)
	}
	return int(f), nil
}

func optionalFloat(req mcp.CallToolRequest, key string) (*float64, error) {
	raw, ok := arguments(req)[key]
	if !ok || raw == nil {
		return nil, nil
	}
	f, ok := raw.(float64)
	if !ok {
		return nil, fmt.Errorf("parameter %q must be a number", key)
	}
	return &f, nil
}

func optionalInt(req mcp.CallToolRequest, key string) (*int, error) {
	f, err := optionalFloat(req, key)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	if *f != math.Trunc(*f) {
		return nil, fmt.Errorf("parameter %q must be an integer", key)
	}
	i := int(*f)
	return &i, nil
}

// noradID reads and range-checks the catalog number.
func noradID(req mcp.CallToolRequest) (int, *mcp.CallToolResult) {
	id, err := requiredInt(req, "norad_id")
	if err != nil {
		return 0, NewErrorResult("invalid_parameters", err.Error())
	}
	if id < 1 {
		return 0, NewErrorResult("invalid_parameters", "norad_id must be a positive catalog number")
	}
	return id, nil
}

// observer reads and range-checks the observer coordinates.
func observer(req mcp.CallToolRequest) (lat, lng float64, errResult *mcp.CallToolResult) {
	lat, err := requiredFloat(req, "observer_lat")
	if err != nil {
		return 0, 0, NewErrorResult("invalid_parameters", err.Error())
	}
	if lat < -90 || lat > 90 {
		return 0, 0, NewErrorResult("invalid_parameters", "observer_lat must be between -90 and 90")
	}

	lng, err = requiredFloat(req, "observer_lng")
	if err != nil {
		return 0, 0, NewErrorResult("invalid_parameters", err.Error())
	}
	if lng < -180 || lng > 180 {
		return 0, 0, NewErrorResult("invalid_parameters", "observer_lng must be between -180 and 180")
	}

	return lat, lng, nil
}

// boundedOptionalInt reads an optional integer and range-checks it when present.
func boundedOptionalInt(req mcp.CallToolRequest, key string, min, max int) (*int, *mcp.CallToolResult) {
	v, err := optionalInt(req, key)
	if err != nil {
		return nil, NewErrorResult("invalid_parameters", err.Error())
	}
	if v != nil && (*v < min || *v > max) {
		return nil, NewErrorResult("invalid_parameters",
			fmt.Sprintf("%s must be between %d and %d", key, min, max))
	}
	return v, nil
}
