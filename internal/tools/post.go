package tools

import (
	"context"
	"encoding/json"

	"github.com/tweetline/twitter-mcp-server/internal/auth"
	"github.com/tweetline/twitter-mcp-server/internal/protocol"
	"github.com/tweetline/twitter-mcp-server/internal/twitter"
)

// postTweetTool posts a new tweet, optionally with one attached image.
type postTweetTool struct {
	base
}

// PostTweet constructs the tool.
func PostTweet(factory auth.Factory) *postTweetTool {
	return &postTweetTool{base{factory: factory}}
}

func (t *postTweetTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "post_tweet",
		Description: "Post a new tweet, optionally attaching one base64-encoded image.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"text":        {Type: "string", Description: "Text of the tweet"},
			"imageBase64": {Type: "string", Description: "Base64-encoded image, with or without a data:image/...;base64, prefix"},
		}, "text"),
	}
}

func (t *postTweetTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		Text        string `json:"text"`
		ImageBase64 string `json:"imageBase64"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	req := twitter.TweetRequest{Text: args.Text}
	if args.ImageBase64 != "" {
		data, mimeType, err := twitter.DecodeImage(args.ImageBase64)
		if err != nil {
			return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: err.Error()}
		}
		mediaID, err := api.UploadMedia(ctx, data, mimeType)
		if err != nil {
			return remoteResult(nil, err)
		}
		req.Media = &twitter.TweetMedia{MediaIDs: []string{mediaID}}
	}

	return remoteResult(api.CreateTweet(ctx, req))
}

// replyToTweetTool replies to an existing tweet.
type replyToTweetTool struct {
	base
}

// ReplyToTweet constructs the tool.
func ReplyToTweet(factory auth.Factory) *replyToTweetTool {
	return &replyToTweetTool{base{factory: factory}}
}

func (t *replyToTweetTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "reply_to_tweet",
		Description: "Reply to an existing tweet.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"tweetId": {Type: "string", Description: "Id of the tweet to reply to"},
			"text":    {Type: "string", Description: "Text of the reply"},
		}, "tweetId", "text"),
	}
}

func (t *replyToTweetTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		TweetID string `json:"tweetId"`
		Text    string `json:"text"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	return remoteResult(api.CreateTweet(ctx, twitter.TweetRequest{
		Text:  args.Text,
		Reply: &twitter.TweetReply{InReplyToTweetID: args.TweetID},
	}))
}

// quoteTweetTool quotes an existing tweet with a comment.
type quoteTweetTool struct {
	base
}

// QuoteTweet constructs the tool.
func QuoteTweet(factory auth.Factory) *quoteTweetTool {
	return &quoteTweetTool{base{factory: factory}}
}

func (t *quoteTweetTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "quote_tweet",
		Description: "Quote an existing tweet with a comment.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"tweetId": {Type: "string", Description: "Id of the tweet to quote"},
			"comment": {Type: "string", Description: "Comment to add above the quoted tweet"},
		}, "tweetId", "comment"),
	}
}

func (t *quoteTweetTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		TweetID string `json:"tweetId"`
		Comment string `json:"comment"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	return remoteResult(api.CreateTweet(ctx, twitter.TweetRequest{
		Text:         args.Comment,
		QuoteTweetID: args.TweetID,
	}))
}

// deleteTweetTool deletes a tweet owned by the authenticated user.
type deleteTweetTool struct {
	base
}

// DeleteTweet constructs the tool.
func DeleteTweet(factory auth.Factory) *deleteTweetTool {
	return &deleteTweetTool{base{factory: factory}}
}

func (t *deleteTweetTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "delete_tweet",
		Description: "Delete a tweet owned by the authenticated user.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"tweetId": {Type: "string", Description: "Id of the tweet to delete"},
		}, "tweetId"),
	}
}

func (t *deleteTweetTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
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

	return remoteResult(api.DeleteTweet(ctx, args.TweetID))
}
