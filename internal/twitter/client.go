// Package twitter implements a thin client for the X (Twitter) API: v2 for
// tweets, users, and lists, v1.1 for trends and media upload.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API enumerates every remote verb the tool catalogue needs. Tools depend on
// this interface so tests can substitute a fake without touching HTTP.
type API interface {
	UserTimeline(ctx context.Context, userID string, opts TimelineOpts) (json.RawMessage, error)
	Tweet(ctx context.Context, tweetID string) (json.RawMessage, error)
	Mentions(ctx context.Context, userID string, opts TimelineOpts) (json.RawMessage, error)
	CreateTweet(ctx context.Context, req TweetRequest) (json.RawMessage, error)
	DeleteTweet(ctx context.Context, tweetID string) (json.RawMessage, error)
	Me(ctx context.Context) (string, error)
	Like(ctx context.Context, userID, tweetID string) (json.RawMessage, error)
	Follow(ctx context.Context, userID, targetUserID string) (json.RawMessage, error)
	Unfollow(ctx context.Context, userID, targetUserID string) (json.RawMessage, error)
	UserByUsername(ctx context.Context, username string) (json.RawMessage, error)
	SearchRecent(ctx context.Context, query string, opts SearchOpts) (json.RawMessage, error)
	AvailableTrends(ctx context.Context) (string, error)
	CreateList(ctx context.Context, req ListRequest) (json.RawMessage, error)
	AddListMember(ctx context.Context, listID, userID string) (json.RawMessage, error)
	RemoveListMember(ctx context.Context, listID, userID string) (json.RawMessage, error)
	OwnedLists(ctx context.Context, userID string, opts ListOpts) (json.RawMessage, error)
	UploadMedia(ctx context.Context, data []byte, mimeType string) (string, error)
}

const (
	defaultBaseURL   = "https://api.twitter.com"
	defaultUploadURL = "https://upload.twitter.com"
)

// Client talks to the X API over an injected *http.Client. In static
// credential mode the http client signs requests itself (OAuth 1.0a
// transport); in per-call mode bearer carries the caller's token and is set
// on every request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	uploadURL  string
	bearer     string
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the API origin. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithUploadURL overrides the media upload origin. Used by tests.
func WithUploadURL(u string) Option {
	return func(c *Client) { c.uploadURL = strings.TrimSuffix(u, "/") }
}

// WithBearer sets a bearer token attached to every request.
func WithBearer(token string) Option {
	return func(c *Client) { c.bearer = token }
}

// NewClient wraps an HTTP client. A nil httpClient gets a 15s-timeout default.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		uploadURL:  defaultUploadURL,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// UserTimeline fetches a user's recent tweets.
func (c *Client) UserTimeline(ctx context.Context, userID string, opts TimelineOpts) (json.RawMessage, error) {
	q := url.Values{}
	if opts.MaxResults > 0 {
		q.Set("max_results", strconv.Itoa(opts.MaxResults))
	}
	if opts.PaginationToken != "" {
		q.Set("pagination_token", opts.PaginationToken)
	}
	if len(opts.Exclude) > 0 {
		q.Set("exclude", strings.Join(opts.Exclude, ","))
	}
	return c.do(ctx, http.MethodGet, "/2/users/"+url.PathEscape(userID)+"/tweets", q, nil)
}

// Tweet fetches a single tweet by id.
func (c *Client) Tweet(ctx context.Context, tweetID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/2/tweets/"+url.PathEscape(tweetID), nil, nil)
}

// Mentions fetches tweets mentioning a user.
func (c *Client) Mentions(ctx context.Context, userID string, opts TimelineOpts) (json.RawMessage, error) {
	q := url.Values{}
	if opts.MaxResults > 0 {
		q.Set("max_results", strconv.Itoa(opts.MaxResults))
	}
	if opts.PaginationToken != "" {
		q.Set("pagination_token", opts.PaginationToken)
	}
	return c.do(ctx, http.MethodGet, "/2/users/"+url.PathEscape(userID)+"/mentions", q, nil)
}

// CreateTweet posts a new tweet, quote, or reply.
func (c *Client) CreateTweet(ctx context.Context, req TweetRequest) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/2/tweets", nil, req)
}

// DeleteTweet removes a tweet owned by the authenticated user.
func (c *Client) DeleteTweet(ctx context.Context, tweetID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, "/2/tweets/"+url.PathEscape(tweetID), nil, nil)
}

// Me resolves the authenticated user's id.
func (c *Client) Me(ctx context.Context) (string, error) {
	raw, err := c.do(ctx, http.MethodGet, "/2/users/me", nil, nil)
	if err != nil {
		return "", err
	}
	var body struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", fmt.Errorf("decode /2/users/me: %v", err)
	}
	if body.Data.ID == "" {
		return "", fmt.Errorf("authenticated user id missing from /2/users/me response")
	}
	return body.Data.ID, nil
}

// Like marks a tweet as liked by userID.
func (c *Client) Like(ctx context.Context, userID, tweetID string) (json.RawMessage, error) {
	body := map[string]string{"tweet_id": tweetID}
	return c.do(ctx, http.MethodPost, "/2/users/"+url.PathEscape(userID)+"/likes", nil, body)
}

// Follow makes userID follow targetUserID.
func (c *Client) Follow(ctx context.Context, userID, targetUserID string) (json.RawMessage, error) {
	body := map[string]string{"target_user_id": targetUserID}
	return c.do(ctx, http.MethodPost, "/2/users/"+url.PathEscape(userID)+"/following", nil, body)
}

// Unfollow makes userID unfollow targetUserID.
func (c *Client) Unfollow(ctx context.Context, userID, targetUserID string) (json.RawMessage, error) {
	path := "/2/users/" + url.PathEscape(userID) + "/following/" + url.PathEscape(targetUserID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// UserByUsername looks up a user by handle.
func (c *Client) UserByUsername(ctx context.Context, username string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/2/users/by/username/"+url.PathEscape(username), nil, nil)
}

// SearchRecent runs a recent-tweet search.
func (c *Client) SearchRecent(ctx context.Context, query string, opts SearchOpts) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("query", query)
	if opts.MaxResults > 0 {
		q.Set("max_results", strconv.Itoa(opts.MaxResults))
	}
	if opts.PaginationToken != "" {
		q.Set("next_token", opts.PaginationToken)
	}
	return c.do(ctx, http.MethodGet, "/2/tweets/search/recent", q, nil)
}

// AvailableTrends fetches the v1.1 list of locations with trending topics.
// The body is returned as the already-serialized JSON string the API sent.
func (c *Client) AvailableTrends(ctx context.Context) (string, error) {
	raw, err := c.do(ctx, http.MethodGet, "/1.1/trends/available.json", nil, nil)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// CreateList creates a new list owned by the authenticated user.
func (c *Client) CreateList(ctx context.Context, req ListRequest) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/2/lists", nil, req)
}

// AddListMember adds a user to a list.
func (c *Client) AddListMember(ctx context.Context, listID, userID string) (json.RawMessage, error) {
	body := map[string]string{"user_id": userID}
	return c.do(ctx, http.MethodPost, "/2/lists/"+url.PathEscape(listID)+"/members", nil, body)
}

// RemoveListMember removes a user from a list.
func (c *Client) RemoveListMember(ctx context.Context, listID, userID string) (json.RawMessage, error) {
	path := "/2/lists/" + url.PathEscape(listID) + "/members/" + url.PathEscape(userID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// OwnedLists fetches lists owned by userID.
func (c *Client) OwnedLists(ctx context.Context, userID string, opts ListOpts) (json.RawMessage, error) {
	q := url.Values{}
	if opts.MaxResults > 0 {
		q.Set("max_results", strconv.Itoa(opts.MaxResults))
	}
	if opts.PaginationToken != "" {
		q.Set("pagination_token", opts.PaginationToken)
	}
	return c.do(ctx, http.MethodGet, "/2/users/"+url.PathEscape(userID)+"/owned_lists", q, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		enc, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %v", err)
		}
		reader = bytes.NewReader(enc)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: raw}
	}
	return raw, nil
}
