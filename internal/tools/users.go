package tools

import (
	"context"
	"encoding/json"

	"github.com/tweetline/twitter-mcp-server/internal/auth"
	"github.com/tweetline/twitter-mcp-server/internal/protocol"
	"github.com/tweetline/twitter-mcp-server/internal/twitter"
)

// getUserByUsernameTool looks up a user profile by handle.
type getUserByUsernameTool struct {
	base
}

// GetUserByUsername constructs the tool.
func GetUserByUsername(factory auth.Factory) *getUserByUsernameTool {
	return &getUserByUsernameTool{base{factory: factory}}
}

func (t *getUserByUsernameTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_user_by_username",
		Description: "Fetch a user profile by handle, without the leading @.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"username": {Type: "string", Description: "Handle of the user to look up"},
		}, "username"),
	}
}

func (t *getUserByUsernameTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	return remoteResult(api.UserByUsername(ctx, args.Username))
}

// searchTweetsTool runs a recent-tweet search.
type searchTweetsTool struct {
	base
}

// SearchTweets constructs the tool.
func SearchTweets(factory auth.Factory) *searchTweetsTool {
	return &searchTweetsTool{base{factory: factory}}
}

func (t *searchTweetsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "search_tweets",
		Description: "Search recent tweets matching a query.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"query":           {Type: "string", Description: "Search query, using the platform's query syntax"},
			"maxResults":      {Type: "integer", Default: 10, Description: "Number of tweets to return"},
			"paginationToken": {Type: "string", Description: "Opaque token from a previous page of results"},
		}, "query"),
	}
}

func (t *searchTweetsTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		Query           string `json:"query"`
		MaxResults      int    `json:"maxResults"`
		PaginationToken string `json:"paginationToken"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	return remoteResult(api.SearchRecent(ctx, args.Query, twitter.SearchOpts{
		MaxResults:      args.MaxResults,
		PaginationToken: args.PaginationToken,
	}))
}
