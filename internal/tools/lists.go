package tools

import (
	"context"
	"encoding/json"

	"github.com/tweetline/twitter-mcp-server/internal/auth"
	"github.com/tweetline/twitter-mcp-server/internal/protocol"
	"github.com/tweetline/twitter-mcp-server/internal/twitter"
)

// createListTool creates a new list owned by the authenticated user.
type createListTool struct {
	base
}

// CreateList constructs the tool.
func CreateList(factory auth.Factory) *createListTool {
	return &createListTool{base{factory: factory}}
}

func (t *createListTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "create_list",
		Description: "Create a new list owned by the authenticated user.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"name":        {Type: "string", Description: "Name of the list"},
			"description": {Type: "string", Default: "", Description: "Description of the list"},
			"private":     {Type: "boolean", Default: false, Description: "Whether the list is private"},
		}, "name"),
	}
}

func (t *createListTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Private     bool   `json:"private"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	return remoteResult(api.CreateList(ctx, twitter.ListRequest{
		Name:        args.Name,
		Description: args.Description,
		Private:     args.Private,
	}))
}

// addListMemberTool adds a user to a list.
type addListMemberTool struct {
	base
}

// AddListMember constructs the tool.
func AddListMember(factory auth.Factory) *addListMemberTool {
	return &addListMemberTool{base{factory: factory}}
}

func (t *addListMemberTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "add_list_member",
		Description: "Add a user to a list owned by the authenticated user.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"listId": {Type: "string", Description: "Id of the list"},
			"userId": {Type: "string", Description: "Numeric id of the user to add"},
		}, "listId", "userId"),
	}
}

func (t *addListMemberTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		ListID string `json:"listId"`
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	return remoteResult(api.AddListMember(ctx, args.ListID, args.UserID))
}

// removeListMemberTool removes a user from a list.
type removeListMemberTool struct {
	base
}

// RemoveListMember constructs the tool.
func RemoveListMember(factory auth.Factory) *removeListMemberTool {
	return &removeListMemberTool{base{factory: factory}}
}

func (t *removeListMemberTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "remove_list_member",
		Description: "Remove a user from a list owned by the authenticated user.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"listId": {Type: "string", Description: "Id of the list"},
			"userId": {Type: "string", Description: "Numeric id of the user to remove"},
		}, "listId", "userId"),
	}
}

func (t *removeListMemberTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		ListID string `json:"listId"`
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
	}

	api, rerr := t.resolve(raw)
	if rerr != nil {
		return protocol.CallResult{}, rerr
	}

	return remoteResult(api.RemoveListMember(ctx, args.ListID, args.UserID))
}

// getOwnedListsTool fetches the lists owned by the authenticated user.
type getOwnedListsTool struct {
	base
}

// GetOwnedLists constructs the tool.
func GetOwnedLists(factory auth.Factory) *getOwnedListsTool {
	return &getOwnedListsTool{base{factory: factory}}
}

func (t *getOwnedListsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_owned_lists",
		Description: "Fetch all lists owned by the authenticated user.",
		InputSchema: inputSchema(map[string]protocol.JSONSchema{
			"maxResults":      {Type: "integer", Default: 100, Description: "Number of lists to return"},
			"paginationToken": {Type: "string", Description: "Opaque token from a previous page of results"},
		}),
	}
}

func (t *getOwnedListsTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
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

	me, err := api.Me(ctx)
	if err != nil {
		return remoteResult(nil, err)
	}
	return remoteResult(api.OwnedLists(ctx, me, twitter.ListOpts{
		MaxResults:      args.MaxResults,
		PaginationToken: args.PaginationToken,
	}))
}
