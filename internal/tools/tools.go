// Package tools defines the catalogue of Twitter operations exposed over
// MCP. Each tool declares its input schema (with defaults) and performs
// exactly one remote action; identity-scoped actions resolve the
// authenticated user first.
package tools

import (
	"encoding/json"
	"errors"

	"github.com/tweetline/twitter-mcp-server/internal/auth"
	"github.com/tweetline/twitter-mcp-server/internal/protocol"
	"github.com/tweetline/twitter-mcp-server/internal/twitter"
)

// base carries the credential policy shared by every tool.
type base struct {
	factory auth.Factory
}

// resolve turns the call's credential material into an API client. A missing
// credential is the one failure class reported as a protocol error rather
// than enveloped output.
func (b base) resolve(raw json.RawMessage) (twitter.API, *protocol.ResponseError) {
	api, err := b.factory.Resolve(auth.FromArgs(raw))
	if err != nil {
		return nil, &protocol.ResponseError{Code: -32000, Message: err.Error()}
	}
	return api, nil
}

// inputSchema builds a tool schema with the per-call credential fields
// merged in. Every tool accepts them; the static factory ignores them.
func inputSchema(props map[string]protocol.JSONSchema, required ...string) *protocol.JSONSchema {
	merged := make(map[string]protocol.JSONSchema, len(props)+2)
	merged["accessToken"] = protocol.JSONSchema{
		Type:        "string",
		Description: "OAuth 2.0 bearer token for this call; required when the server runs in per-call credential mode",
	}
	merged["refreshToken"] = protocol.JSONSchema{
		Type:        "string",
		Description: "OAuth 2.0 refresh token; accepted but not used to refresh the access token",
	}
	for name, prop := range props {
		merged[name] = prop
	}
	return &protocol.JSONSchema{Type: "object", Properties: merged, Required: required}
}

// remoteResult envelopes the outcome of a remote call. API failures become
// the response payload with the platform's error object untouched; only the
// envelope itself never fails.
func remoteResult(raw json.RawMessage, err error) (protocol.CallResult, *protocol.ResponseError) {
	if err != nil {
		var apiErr *twitter.APIError
		if errors.As(err, &apiErr) && len(apiErr.Body) > 0 {
			return textResult(json.RawMessage(apiErr.Body)), nil
		}
		return textResult(map[string]string{"error": err.Error()}), nil
	}
	return textResult(raw), nil
}

// textResult serializes a value into the single-text-block envelope.
// Strings are assumed to be serialized already and pass through unchanged.
func textResult(v any) protocol.CallResult {
	var text string
	switch val := v.(type) {
	case string:
		text = val
	case json.RawMessage:
		pretty, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			text = string(val)
		} else {
			text = string(pretty)
		}
	default:
		pretty, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			text = "{}"
		} else {
			text = string(pretty)
		}
	}
	return protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: text}}}
}
