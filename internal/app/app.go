package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tweetline/twitter-mcp-server/internal/auth"
	"github.com/tweetline/twitter-mcp-server/internal/mcp"
	"github.com/tweetline/twitter-mcp-server/internal/tools"
)

// NewFactory builds the credential policy for the chosen mode.
func NewFactory(mode string) (auth.Factory, error) {
	switch mode {
	case auth.ModeStatic, "":
		return auth.NewStaticFactory(auth.StaticFromEnv()), nil
	case auth.ModePerCall:
		return auth.NewPerCallFactory(), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q (want %q or %q)", mode, auth.ModeStatic, auth.ModePerCall)
	}
}

// NewToolbox builds the full Twitter tool catalogue.
func NewToolbox(factory auth.Factory) *mcp.Toolbox {
	return mcp.NewToolbox(
		// Reads
		tools.GetUserTweets(factory),
		tools.GetTweetByID(factory),
		tools.GetUserMentions(factory),
		tools.GetUserByUsername(factory),
		tools.SearchTweets(factory),
		tools.GetTrendingTopics(factory),

		// Writes
		tools.PostTweet(factory),
		tools.ReplyToTweet(factory),
		tools.QuoteTweet(factory),
		tools.DeleteTweet(factory),

		// Engagement
		tools.LikeTweet(factory),
		tools.FollowUser(factory),
		tools.UnfollowUser(factory),

		// Lists
		tools.CreateList(factory),
		tools.AddListMember(factory),
		tools.RemoveListMember(factory),
		tools.GetOwnedLists(factory),
	)
}

// NewMCPServer constructs an MCP server with the full catalogue.
func NewMCPServer(factory auth.Factory, log *logrus.Entry) *mcp.Server {
	return mcp.NewServer(NewToolbox(factory), log)
}
