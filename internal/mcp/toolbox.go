package mcp

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/tweetline/twitter-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError)
}

// Toolbox stores and dispatches tools by name. It is built once at startup
// and read-only afterwards.
type Toolbox struct {
	tools map[string]Tool
}

// NewToolbox constructs a toolbox with the provided tools.
func NewToolbox(tools ...Tool) *Toolbox {
	m := make(map[string]Tool, len(tools))
	for _, t := range tools {
		desc := t.Descriptor()
		m[desc.Name] = t
	}
	return &Toolbox{tools: m}
}

// Describe returns all tool descriptors, sorted by name.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.tools))
	for _, t := range tb.tools {
		list = append(list, t.Descriptor())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Call invokes a named tool. Arguments are validated against the tool's
// schema and filled with declared defaults before the tool runs, so a call
// missing a required parameter never reaches tool code.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	tool, ok := tb.tools[name]
	if !ok {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32601, Message: "tool not found"}
	}
	prepared, err := protocol.PrepareArgs(tool.Descriptor().InputSchema, args)
	if err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: err.Error()}
	}
	return tool.Invoke(ctx, prepared)
}
