package app

import (
	"testing"

	"github.com/tweetline/twitter-mcp-server/internal/auth"
)

func TestNewFactoryModes(t *testing.T) {
	f, err := NewFactory(auth.ModeStatic)
	if err != nil {
		t.Fatalf("static: %v", err)
	}
	if _, ok := f.(*auth.StaticFactory); !ok {
		t.Fatalf("expected StaticFactory, got %T", f)
	}

	f, err = NewFactory("")
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if _, ok := f.(*auth.StaticFactory); !ok {
		t.Fatalf("default mode should be static, got %T", f)
	}

	f, err = NewFactory(auth.ModePerCall)
	if err != nil {
		t.Fatalf("per-call: %v", err)
	}
	if _, ok := f.(*auth.PerCallFactory); !ok {
		t.Fatalf("expected PerCallFactory, got %T", f)
	}

	if _, err := NewFactory("bogus"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestToolboxHasFullCatalogue(t *testing.T) {
	tb := NewToolbox(auth.NewPerCallFactory())
	if got := len(tb.Describe()); got != 17 {
		t.Fatalf("catalogue size: want 17, got %d", got)
	}
}
