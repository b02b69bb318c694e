package auth

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tweetline/twitter-mcp-server/internal/twitter"
)

func validStatic() StaticCredentials {
	return StaticCredentials{
		APIKey:       "k",
		APISecret:    "s",
		AccessToken:  "at",
		AccessSecret: "as",
	}
}

func TestStaticFactoryCachesHandle(t *testing.T) {
	builds := 0
	f := NewStaticFactory(validStatic())
	f.build = func(StaticCredentials) twitter.API {
		builds++
		return twitter.NewClient(nil)
	}

	first, err := f.Resolve(Credentials{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := f.Resolve(Credentials{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if first != second {
		t.Fatal("static mode must reuse the same client handle")
	}
	if builds != 1 {
		t.Fatalf("client built %d times, want 1", builds)
	}
}

func TestStaticFactoryMissingSecret(t *testing.T) {
	creds := validStatic()
	creds.AccessSecret = ""

	builds := 0
	f := NewStaticFactory(creds)
	f.build = func(StaticCredentials) twitter.API {
		builds++
		return twitter.NewClient(nil)
	}

	_, err := f.Resolve(Credentials{})
	var missing *MissingCredentialError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingCredentialError, got %v", err)
	}
	if missing.Name != EnvAccessSecret {
		t.Fatalf("wrong credential named: %s", missing.Name)
	}
	if builds != 0 {
		t.Fatal("client must not be built without full credentials")
	}
}

func TestPerCallFactoryNewHandlePerCall(t *testing.T) {
	builds := 0
	f := NewPerCallFactory()
	f.build = func(c Credentials) twitter.API {
		builds++
		return twitter.NewClient(nil, twitter.WithBearer(c.AccessToken))
	}

	first, err := f.Resolve(Credentials{AccessToken: "t1"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := f.Resolve(Credentials{AccessToken: "t2"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if first == second {
		t.Fatal("per-call mode must build a distinct handle per call")
	}
	if builds != 2 {
		t.Fatalf("client built %d times, want 2", builds)
	}
}

func TestPerCallFactoryMissingToken(t *testing.T) {
	builds := 0
	f := NewPerCallFactory()
	f.build = func(Credentials) twitter.API {
		builds++
		return twitter.NewClient(nil)
	}

	_, err := f.Resolve(Credentials{RefreshToken: "only-refresh"})
	var missing *MissingCredentialError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingCredentialError, got %v", err)
	}
	if missing.Name != "accessToken" {
		t.Fatalf("wrong credential named: %s", missing.Name)
	}
	if builds != 0 {
		t.Fatal("client must not be built without an access token")
	}
}

func TestStaticFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "k")
	t.Setenv(EnvAPISecret, " s ")
	t.Setenv(EnvAccessToken, "at")
	t.Setenv(EnvAccessSecret, "as")

	creds := StaticFromEnv()
	want := StaticCredentials{APIKey: "k", APISecret: "s", AccessToken: "at", AccessSecret: "as"}
	if creds != want {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestFromArgs(t *testing.T) {
	creds := FromArgs(json.RawMessage(`{"accessToken":"  tok  ","refreshToken":"r","tweetId":"1"}`))
	if creds.AccessToken != "tok" {
		t.Fatalf("accessToken: %q", creds.AccessToken)
	}
	if creds.RefreshToken != "r" {
		t.Fatalf("refreshToken: %q", creds.RefreshToken)
	}

	if got := FromArgs(nil); got.AccessToken != "" || got.RefreshToken != "" {
		t.Fatalf("empty args should yield zero credentials: %+v", got)
	}
}
