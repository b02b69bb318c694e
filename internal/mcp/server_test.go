package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/tweetline/twitter-mcp-server/internal/protocol"
)

func newTestServer(tools ...Tool) *Server {
	return NewServer(NewToolbox(tools...), nil)
}

func TestHandleInitialize(t *testing.T) {
	srv := newTestServer()
	resp, err := srv.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: 1, Method: "initialize"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Fatalf("protocol version: %v", result["protocolVersion"])
	}
}

func TestHandleToolsList(t *testing.T) {
	srv := newTestServer(&stubTool{name: "one"}, &stubTool{name: "two"})
	resp, err := srv.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: 2, Method: "tools/list"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	list, ok := resp.Result.(protocol.ListResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if len(list.Tools) != 2 {
		t.Fatalf("want 2 tools, got %d", len(list.Tools))
	}
}

func TestHandleToolsCall(t *testing.T) {
	stub := &stubTool{
		name:   "echo",
		result: protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: `{"ok":true}`}}},
	}
	srv := newTestServer(stub)

	params, _ := json.Marshal(protocol.CallParams{Name: "echo", Args: json.RawMessage(`{}`)})
	resp, err := srv.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: 3, Method: "tools/call", Params: params})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(protocol.CallResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if len(result.Content) != 1 || result.Content[0].Text != `{"ok":true}` {
		t.Fatalf("unexpected content: %+v", result.Content)
	}
}

func TestHandleToolsCallMissingName(t *testing.T) {
	srv := newTestServer()
	resp, _ := srv.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: 4, Method: "tools/call", Params: json.RawMessage(`{}`)})
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected -32602, got %+v", resp.Error)
	}
}

func TestHandleUnknownMethod(t *testing.T) {
	srv := newTestServer()
	resp, _ := srv.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: 5, Method: "bogus"})
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected -32601, got %+v", resp.Error)
	}
}

func TestHandleInvalidJSONRPCVersion(t *testing.T) {
	srv := newTestServer()
	resp, _ := srv.Handle(context.Background(), protocol.Request{JSONRPC: "1.0", ID: 6, Method: "ping"})
	if resp.Error == nil || resp.Error.Code != -32600 {
		t.Fatalf("expected -32600, got %+v", resp.Error)
	}
}
