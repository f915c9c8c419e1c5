package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/skytrack/skytrack-mcp/pkg/n2yo"
)

// ErrorResponse represents a structured error in tool results.
// Errors are returned as tool results rather than protocol errors so the
// assistant sees the details instead of the MCP client swallowing them.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// NewErrorResult creates a tool result containing a structured error.
// Use this for actionable errors the assistant can see and potentially
// work around (invalid parameters, rate limiting, empty data).
func NewErrorResult(code, message string) *mcp.CallToolResult {
	return NewErrorResultWithDetails(code, message, nil)
}

// NewErrorResultWithDetails creates an error result with additional context.
func NewErrorResultWithDetails(code, message string, details any) *mcp.CallToolResult {
	resp := ErrorResponse{
		Error:   true,
		Code:    code,
		Message: message,
		Details: details,
	}
	jsonBytes, _ := json.Marshal(resp)
	result := mcp.NewToolResultText(string(jsonBytes))
	result.IsError = true
	return result
}

// resultFromClientError renders an upstream access error as a structured
// tool result. Every kind the client can produce at call time has a stable
// code; unknown errors return nil so the handler surfaces them as Go errors.
func resultFromClientError(err error) *mcp.CallToolResult {
	switch n2yo.KindOf(err) {
	case n2yo.KindRateLimited:
		return NewErrorResult("rate_limited",
			"upstream rate limit exceeded after retries; wait before calling again")
	case n2yo.KindInvalidCredential:
		return NewErrorResult("invalid_credential",
			"the configured N2YO API key was rejected by upstream")
	case n2yo.KindNetwork:
		return NewErrorResult("network_error",
			"no response from the N2YO API; the service may be unreachable")
	case n2yo.KindUpstream:
		var apiErr *n2yo.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode > 0 {
			return NewErrorResultWithDetails("upstream_error",
				fmt.Sprintf("the N2YO API returned HTTP %d", apiErr.StatusCode),
				map[string]any{"status_code": apiErr.StatusCode})
		}
		return NewErrorResult("upstream_error", "the N2YO API returned an unexpected response")
	}
	return nil
}
