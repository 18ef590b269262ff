// Package mcptool holds the result and argument helpers shared by the MCP tool handlers.
package mcptool

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrorBody is the JSON carried by a failed tool result.
type ErrorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// JSON returns v encoded as the text content of a successful result.
func JSON(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcptool.JSON: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

// Error returns a tool error whose text is {"error": err, "code": code}.
func Error(err error, code int) *mcp.CallToolResult {
	b, _ := json.Marshal(ErrorBody{Error: err.Error(), Code: code})
	return mcp.NewToolResultError(string(b))
}

// OptionalString returns nil when key is absent, so callers can tell
// "not given" from "given as empty".
func OptionalString(req mcp.CallToolRequest, key string) *string {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	return &s
}

// ID reads an identifier that clients may send as a string or a number.
func ID(req mcp.CallToolRequest, key string) string {
	switch v := req.GetArguments()[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Text returns the first text content of res.
func Text(res *mcp.CallToolResult) string {
	if res == nil {
		return ""
	}
	for _, c := range res.Content {
		switch tc := c.(type) {
		case mcp.TextContent:
			return tc.Text
		case *mcp.TextContent:
			return tc.Text
		}
	}
	return ""
}
