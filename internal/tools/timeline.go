package tools

import (
	"context"
	"encoding/json"

	"github.com/tweetline/twitter-mcp-server/internal/auth"
	"github.com/tweetline/twitter-mcp-server/internal/protocol"
	"github.com/tweetline/twitter-mcp-server/internal/twitter"
)

// getUserTweetsTool fetches a user's recent tweets.
type getUserTweetsTool struct {
	base
}

// GetUserTweets constructs the tool.
func GetUserTweets(factory auth.Factory) *getUserTweetsTool {
	return &getUserTweetsTool{base{factory: factory}}
}

func (t *getUserTweetsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_user_tweets",
		Description: "Fetch the most recent tweets posted by a user, excluding retweets by default.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"userId":          {Type: "string", Description: "Numeric id of the user whose timeline to fetch"},
			"maxResults":      {Type: "integer", Default: 10, Description: "Number of tweets to return"},
			"paginationToken": {Type: "string", Description: "Opaque token from a previous page of results"},
			"exclude": {
				Type:        "array",
				Items:       &protocol.JSONSchema{Type: "string", Enum: []string{"retweets", "replies"}},
				Default:     []string{"retweets"},
				Description: "Tweet categories to exclude from the timeline",
			},
		}, "userId"),
	}
}

type userTweetsArgs struct {
	UserID          string   `json:"userId"`
	MaxResults      int      `json:"maxResults"`
	PaginationToken string   `json:"paginationToken"`
	Exclude         []string `json:"exclude"`
}

func (t *getUserTweetsTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args userTweetsArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	return remoteResult(api.UserTimeline(ctx, args.UserID, twitter.TimelineOpts{
		MaxResults:      args.MaxResults,
		PaginationToken: args.PaginationToken,
		Exclude:         args.Exclude,
	}))
}

// getTweetByIDTool fetches a single tweet.
type getTweetByIDTool struct {
	base
}

// GetTweetByID constructs the tool.
func GetTweetByID(factory auth.Factory) *getTweetByIDTool {
	return &getTweetByIDTool{base{factory: factory}}
}

func (t *getTweetByIDTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_tweet_by_id",
		Description: "Fetch a single tweet by its id.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"tweetId": {Type: "string", Description: "Id of the tweet to fetch"},
		}, "tweetId"),
	}
}

func (t *getTweetByIDTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		TweetID string `json:"tweetId"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	return remoteResult(api.Tweet(ctx, args.TweetID))
}

// getUserMentionsTool fetches tweets mentioning a user.
type getUserMentionsTool struct {
	base
}

// GetUserMentions constructs the tool.
func GetUserMentions(factory auth.Factory) *getUserMentionsTool {
	return &getUserMentionsTool{base{factory: factory}}
}

func (t *getUserMentionsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_user_mentions",
		Description: "Fetch the most recent tweets mentioning a user.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"userId":          {Type: "string", Description: "Numeric id of the mentioned user"},
			"maxResults":      {Type: "integer", Default: 10, Description: "Number of tweets to return"},
			"paginationToken": {Type: "string", Description: "Opaque token from a previous page of results"},
		}, "userId"),
	}
}

func (t *getUserMentionsTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		UserID          string `json:"userId"`
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

	return remoteResult(api.Mentions(ctx, args.UserID, twitter.TimelineOpts{
		MaxResults:      args.MaxResults,
		PaginationToken: args.PaginationToken,
	}))
}
