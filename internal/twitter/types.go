package twitter

import (
	"encoding/json"
	"fmt"
)

// TimelineOpts narrows timeline reads.
type TimelineOpts struct {
	MaxResults      int
	PaginationToken string
	Exclude         []string
}

// SearchOpts narrows recent-search reads.
type SearchOpts struct {
	MaxResults      int
	PaginationToken string
}

// ListOpts narrows owned-list reads.
type ListOpts struct {
	MaxResults      int
	PaginationToken string
}

// TweetRequest is the body for tweet creation, covering plain posts,
// quotes, replies, and media attachments.
type TweetRequest struct {
	Text         string      `json:"text"`
	QuoteTweetID string      `json:"quote_tweet_id,omitempty"`
	Reply        *TweetReply `json:"reply,omitempty"`
	Media        *TweetMedia `json:"media,omitempty"`
}

// TweetReply points a new tweet at the tweet it replies to.
type TweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

// TweetMedia references previously uploaded media ids.
type TweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

// ListRequest is the body for list creation.
type ListRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
}

// APIError carries a non-2xx response from the API with its raw body, so
// callers can surface the platform's error object unchanged.
type APIError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twitter api: unexpected status %d", e.StatusCode)
}
