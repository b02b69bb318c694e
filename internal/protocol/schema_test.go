package protocol

import (
	"encoding/json"
	"strings"
	"testing"
)

func testSchema() *JSONSchema {
	return &JSONSchema{
		Type: "object",
		Properties: map[string]JSONSchema{
			"userId":     {Type: "string"},
			"maxResults": {Type: "integer", Default: 10},
			"exclude":    {Type: "array", Items: &JSONSchema{Type: "string"}, Default: []string{"retweets"}},
		},
		Required: []string{"userId"},
	}
}

func TestPrepareArgsMissingRequired(t *testing.T) {
	_, err := PrepareArgs(testSchema(), json.RawMessage(`{"maxResults": 5}`))
	if err == nil {
		t.Fatal("expected error for missing required parameter")
	}
	if !strings.Contains(err.Error(), "userId") {
		t.Fatalf("error should name the missing parameter: %v", err)
	}
}

func TestPrepareArgsAppliesDefaults(t *testing.T) {
	out, err := PrepareArgs(testSchema(), json.RawMessage(`{"userId": "123"}`))
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}

	var got struct {
		UserID     string   `json:"userId"`
		MaxResults int      `json:"maxResults"`
		Exclude    []string `json:"exclude"`
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal prepared args: %v", err)
	}
	if got.UserID != "123" {
		t.Fatalf("userId: want 123, got %q", got.UserID)
	}
	if got.MaxResults != 10 {
		t.Fatalf("maxResults default: want 10, got %d", got.MaxResults)
	}
	if len(got.Exclude) != 1 || got.Exclude[0] != "retweets" {
		t.Fatalf("exclude default: want [retweets], got %v", got.Exclude)
	}
}

func TestPrepareArgsKeepsExplicitValues(t *testing.T) {
	out, err := PrepareArgs(testSchema(), json.RawMessage(`{"userId":"123","maxResults":25}`))
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["maxResults"].(float64) != 25 {
		t.Fatalf("explicit maxResults overridden: %v", got["maxResults"])
	}
}

func TestPrepareArgsDropsUnknownFields(t *testing.T) {
	out, err := PrepareArgs(testSchema(), json.RawMessage(`{"userId":"123","bogus":true}`))
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := got["bogus"]; ok {
		t.Fatal("unknown field should be dropped")
	}
}

func TestPrepareArgsEmptyInput(t *testing.T) {
	schema := &JSONSchema{
		Type: "object",
		Properties: map[string]JSONSchema{
			"limit": {Type: "integer", Default: 100},
		},
	}
	out, err := PrepareArgs(schema, nil)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["limit"].(float64) != 100 {
		t.Fatalf("default not applied on empty input: %v", got)
	}
}

func TestPrepareArgsInvalidJSON(t *testing.T) {
	if _, err := PrepareArgs(testSchema(), json.RawMessage(`{`)); err == nil {
		t.Fatal("expected error for malformed arguments")
	}
}
