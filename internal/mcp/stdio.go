package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/tweetline/twitter-mcp-server/internal/protocol"
)

// RunStdio serves JSON-RPC requests from in and writes responses to out,
// one JSON value per message, until EOF. Logging must go elsewhere; out
// carries protocol traffic only.
func RunStdio(ctx context.Context, server *Server, in io.Reader, out io.Writer) error {
	decoder := json.NewDecoder(bufio.NewReader(in))
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)

	for {
		var req protocol.Request
		if err := decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		// Notifications carry no id and expect no response.
		if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
			continue
		}

		resp, err := server.Handle(ctx, req)
		if err != nil {
			resp = WriteError(req.ID, -32603, "internal error", err)
		}
		if err := encoder.Encode(resp); err != nil {
			return err
		}
	}
}
