package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/tweetline/twitter-mcp-server/internal/auth"
	"github.com/tweetline/twitter-mcp-server/internal/mcp"
	"github.com/tweetline/twitter-mcp-server/internal/protocol"
	"github.com/tweetline/twitter-mcp-server/internal/twitter"
)

// fakeAPI records every verb call and returns canned payloads.
type fakeAPI struct {
	calls []string

	result   json.RawMessage
	err      error
	meID     string
	meErr    error
	trends   string
	mediaID  string
	mediaErr error

	lastUserID       string
	lastTweetID      string
	lastTargetID     string
	lastListID       string
	lastMemberID     string
	lastQuery        string
	lastUsername     string
	lastTimelineOpts twitter.TimelineOpts
	lastSearchOpts   twitter.SearchOpts
	lastListOpts     twitter.ListOpts
	lastTweetReq     twitter.TweetRequest
	lastListReq      twitter.ListRequest
	lastMediaData    []byte
	lastMediaMime    string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		result:  json.RawMessage(`{"data":{"id":"1"}}`),
		meID:    "me-1",
		trends:  `[{"name":"Worldwide","woeid":1}]`,
		mediaID: "m-1",
	}
}

func (f *fakeAPI) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeAPI) UserTimeline(_ context.Context, userID string, opts twitter.TimelineOpts) (json.RawMessage, error) {
	f.record("UserTimeline")
	f.lastUserID = userID
	f.lastTimelineOpts = opts
	return f.result, f.err
}

func (f *fakeAPI) Tweet(_ context.Context, tweetID string) (json.RawMessage, error) {
	f.record("Tweet")
	f.lastTweetID = tweetID
	return f.result, f.err
}

func (f *fakeAPI) Mentions(_ context.Context, userID string, opts twitter.TimelineOpts) (json.RawMessage, error) {
	f.record("Mentions")
	f.lastUserID = userID
	f.lastTimelineOpts = opts
	return f.result, f.err
}

func (f *fakeAPI) CreateTweet(_ context.Context, req twitter.TweetRequest) (json.RawMessage, error) {
	f.record("CreateTweet")
	f.lastTweetReq = req
	return f.result, f.err
}

func (f *fakeAPI) DeleteTweet(_ context.Context, tweetID string) (json.RawMessage, error) {
	f.record("DeleteTweet")
	f.lastTweetID = tweetID
	return f.result, f.err
}

func (f *fakeAPI) Me(_ context.Context) (string, error) {
	f.record("Me")
	return f.meID, f.meErr
}

func (f *fakeAPI) Like(_ context.Context, userID, tweetID string) (json.RawMessage, error) {
	f.record("Like")
	f.lastUserID = userID
	f.lastTweetID = tweetID
	return f.result, f.err
}

func (f *fakeAPI) Follow(_ context.Context, userID, targetUserID string) (json.RawMessage, error) {
	f.record("Follow")
	f.lastUserID = userID
	f.lastTargetID = targetUserID
	return f.result, f.err
}

func (f *fakeAPI) Unfollow(_ context.Context, userID, targetUserID string) (json.RawMessage, error) {
	f.record("Unfollow")
	f.lastUserID = userID
	f.lastTargetID = targetUserID
	return f.result, f.err
}

func (f *fakeAPI) UserByUsername(_ context.Context, username string) (json.RawMessage, error) {
	f.record("UserByUsername")
	f.lastUsername = username
	return f.result, f.err
}

func (f *fakeAPI) SearchRecent(_ context.Context, query string, opts twitter.SearchOpts) (json.RawMessage, error) {
	f.record("SearchRecent")
	f.lastQuery = query
	f.lastSearchOpts = opts
	return f.result, f.err
}

func (f *fakeAPI) AvailableTrends(_ context.Context) (string, error) {
	f.record("AvailableTrends")
	return f.trends, f.err
}

func (f *fakeAPI) CreateList(_ context.Context, req twitter.ListRequest) (json.RawMessage, error) {
	f.record("CreateList")
	f.lastListReq = req
	return f.result, f.err
}

func (f *fakeAPI) AddListMember(_ context.Context, listID, userID string) (json.RawMessage, error) {
	f.record("AddListMember")
	f.lastListID = listID
	f.lastMemberID = userID
	return f.result, f.err
}

func (f *fakeAPI) RemoveListMember(_ context.Context, listID, userID string) (json.RawMessage, error) {
	f.record("RemoveListMember")
	f.lastListID = listID
	f.lastMemberID = userID
	return f.result, f.err
}

func (f *fakeAPI) OwnedLists(_ context.Context, userID string, opts twitter.ListOpts) (json.RawMessage, error) {
	f.record("OwnedLists")
	f.lastUserID = userID
	f.lastListOpts = opts
	return f.result, f.err
}

func (f *fakeAPI) UploadMedia(_ context.Context, data []byte, mimeType string) (string, error) {
	f.record("UploadMedia")
	f.lastMediaData = data
	f.lastMediaMime = mimeType
	return f.mediaID, f.mediaErr
}

var errMissingToken = &auth.MissingCredentialError{Name: "accessToken"}

// spyFactory counts resolutions and hands out a fixed API.
type spyFactory struct {
	api      twitter.API
	err      error
	resolves int
}

func (s *spyFactory) Resolve(_ auth.Credentials) (twitter.API, error) {
	s.resolves++
	return s.api, s.err
}

func newCatalogue(factory auth.Factory) *mcp.Toolbox {
	return mcp.NewToolbox(
		GetUserTweets(factory),
		GetTweetByID(factory),
		GetUserMentions(factory),
		QuoteTweet(factory),
		ReplyToTweet(factory),
		PostTweet(factory),
		DeleteTweet(factory),
		LikeTweet(factory),
		FollowUser(factory),
		UnfollowUser(factory),
		GetUserByUsername(factory),
		SearchTweets(factory),
		GetTrendingTopics(factory),
		CreateList(factory),
		AddListMember(factory),
		RemoveListMember(factory),
		GetOwnedLists(factory),
	)
}

func callTool(t *testing.T, tb *mcp.Toolbox, name string, args map[string]any) (protocol.CallResult, *protocol.ResponseError) {
	t.Helper()
	raw, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	return tb.Call(context.Background(), name, raw)
}

func textOf(t *testing.T, result protocol.CallResult) string {
	t.Helper()
	if len(result.Content) != 1 || result.Content[0].Type != "text" {
		t.Fatalf("unexpected envelope shape: %+v", result.Content)
	}
	return result.Content[0].Text
}
