package tools

import (
	"context"
	"encoding/json"

	"github.com/tweetline/twitter-mcp-server/internal/auth"
	"github.com/tweetline/twitter-mcp-server/internal/protocol"
)

// likeTweetTool likes a tweet as the authenticated user.
type likeTweetTool struct {
	base
}

// LikeTweet constructs the tool.
func LikeTweet(factory auth.Factory) *likeTweetTool {
	return &likeTweetTool{base{factory: factory}}
}

func (t *likeTweetTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "like_tweet",
		Description: "Like a tweet as the authenticated user.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"tweetId": {Type: "string", Description: "Id of the tweet to like"},
		}, "tweetId"),
	}
}

func (t *likeTweetTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
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

	me, err := api.Me(ctx)
	if err != nil {
		return remoteResult(nil, err)
	}
	return remoteResult(api.Like(ctx, me, args.TweetID))
}

// followUserTool follows a user as the authenticated user.
type followUserTool struct {
	base
}

// FollowUser constructs the tool.
func FollowUser(factory auth.Factory) *followUserTool {
	return &followUserTool{base{factory: factory}}
}

func (t *followUserTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "follow_user",
		Description: "Follow a user as the authenticated user.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"targetUserId": {Type: "string", Description: "Numeric id of the user to follow"},
		}, "targetUserId"),
	}
}

func (t *followUserTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		TargetUserID string `json:"targetUserId"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	me, err := api.Me(ctx)
	if err != nil {
		return remoteResult(nil, err)
	}
	return remoteResult(api.Follow(ctx, me, args.TargetUserID))
}

// unfollowUserTool unfollows a user as the authenticated user.
type unfollowUserTool struct {
	base
}

// UnfollowUser constructs the tool.
func UnfollowUser(factory auth.Factory) *unfollowUserTool {
	return &unfollowUserTool{base{factory: factory}}
}

func (t *unfollowUserTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "unfollow_user",
		Description: "Unfollow a user as the authenticated user.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"targetUserId": {Type: "string", Description: "Numeric id of the user to unfollow"},
		}, "targetUserId"),
	}
}

func (t *unfollowUserTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		TargetUserID string `json:"targetUserId"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	me, err := api.Me(ctx)
	if err != nil {
		return remoteResult(nil, err)
	}
	return remoteResult(api.Unfollow(ctx, me, args.TargetUserID))
}
