package tools

import (
	"context"
	"encoding/json"

	"github.com/tweetline/twitter-mcp-server/internal/auth"
	"github.com/tweetline/twitter-mcp-server/internal/protocol"
)

// getTrendingTopicsTool fetches the locations with trending topics.
// The woeid parameter is accepted for compatibility with existing callers;
// the response always covers every available location.
type getTrendingTopicsTool struct {
	base
}

// GetTrendingTopics constructs the tool.
func GetTrendingTopics(factory auth.Factory) *getTrendingTopicsTool {
	return &getTrendingTopicsTool{base{factory: factory}}
}

func (t *getTrendingTopicsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_trending_topics",
		Description: "Fetch the locations that have trending topics available.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"woeid": {Type: "integer", Default: 1, Description: "Where-on-earth location id; 1 is worldwide"},
		}),
	}
}

func (t *getTrendingTopicsTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	body, err := api.AvailableTrends(ctx)
	if err != nil {
		return remoteResult(nil, err)
	}
	// body is already serialized JSON; pass it through unencoded.
	return textResult(body), nil
}
