// Package auth resolves credential configuration into usable API clients.
// Two mutually exclusive deployment modes exist: static OAuth 1.0a
// credentials read from the environment and shared for the process
// lifetime, or a per-call bearer token carried in each tool invocation.
package auth

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dghubble/oauth1"

	"github.com/tweetline/twitter-mcp-server/internal/twitter"
)

// Mode names for the credential policy switch.
const (
	ModeStatic  = "static"
	ModePerCall = "per-call"
)

// Environment variables backing static mode.
const (
	EnvAPIKey       = "TWITTER_API_KEY"
	EnvAPISecret    = "TWITTER_API_SECRET"
	EnvAccessToken  = "TWITTER_ACCESS_TOKEN"
	EnvAccessSecret = "TWITTER_ACCESS_SECRET"
)

// Credentials is the per-call credential material a tool invocation may
// carry. RefreshToken is accepted for forward compatibility but never used
// to refresh an expired access token.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// FromArgs extracts per-call credentials from raw tool arguments. Absent or
// malformed fields yield zero values; the factory decides whether that is
// an error.
func FromArgs(raw json.RawMessage) Credentials {
	var c Credentials
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &c)
	}
	c.AccessToken = strings.TrimSpace(c.AccessToken)
	c.RefreshToken = strings.TrimSpace(c.RefreshToken)
	return c
}

// StaticCredentials is the long-lived OAuth 1.0a application 4-tuple.
type StaticCredentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// StaticFromEnv reads the static 4-tuple from the process environment.
func StaticFromEnv() StaticCredentials {
	return StaticCredentials{
		APIKey:       strings.TrimSpace(os.Getenv(EnvAPIKey)),
		APISecret:    strings.TrimSpace(os.Getenv(EnvAPISecret)),
		AccessToken:  strings.TrimSpace(os.Getenv(EnvAccessToken)),
		AccessSecret: strings.TrimSpace(os.Getenv(EnvAccessSecret)),
	}
}

// MissingCredentialError reports a required credential absent from the
// configuration. It is raised before any remote interaction.
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	return "missing credential: " + e.Name
}

// Factory turns per-call credential material into an API client. The static
// implementation ignores the per-call material and hands out one shared
// handle; the per-call implementation builds a fresh handle every time.
type Factory interface {
	Resolve(creds Credentials) (twitter.API, error)
}

// StaticFactory holds one client built lazily from static credentials and
// shared, read-only, for the rest of the process.
type StaticFactory struct {
	creds StaticCredentials
	build func(StaticCredentials) twitter.API

	once sync.Once
	api  twitter.API
	err  error
}

// NewStaticFactory wires static credentials into a factory. The client is
// not built until the first Resolve.
func NewStaticFactory(creds StaticCredentials) *StaticFactory {
	return &StaticFactory{creds: creds, build: newSignedClient}
}

// Resolve validates the 4-tuple on first use and returns the one shared
// handle afterwards. Per-call credentials are ignored in this mode.
func (f *StaticFactory) Resolve(_ Credentials) (twitter.API, error) {
	f.once.Do(func() {
		switch {
		case f.creds.APIKey == "":
			f.err = &MissingCredentialError{Name: EnvAPIKey}
		case f.creds.APISecret == "":
			f.err = &MissingCredentialError{Name: EnvAPISecret}
		case f.creds.AccessToken == "":
			f.err = &MissingCredentialError{Name: EnvAccessToken}
		case f.creds.AccessSecret == "":
			f.err = &MissingCredentialError{Name: EnvAccessSecret}
		default:
			f.api = f.build(f.creds)
		}
	})
	return f.api, f.err
}

func newSignedClient(creds StaticCredentials) twitter.API {
	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	httpClient.Timeout = 15 * time.Second
	return twitter.NewClient(httpClient)
}

// PerCallFactory builds a fresh bearer-token client for every call and
// caches nothing.
type PerCallFactory struct {
	build func(Credentials) twitter.API
}

// NewPerCallFactory constructs the per-call policy.
func NewPerCallFactory() *PerCallFactory {
	return &PerCallFactory{build: newBearerClient}
}

// Resolve requires an access token and returns a new handle bound to it.
func (f *PerCallFactory) Resolve(creds Credentials) (twitter.API, error) {
	if creds.AccessToken == "" {
		return nil, &MissingCredentialError{Name: "accessToken"}
	}
	return f.build(creds), nil
}

func newBearerClient(creds Credentials) twitter.API {
	httpClient := &http.Client{Timeout: 15 * time.Second}
	return twitter.NewClient(httpClient, twitter.WithBearer(creds.AccessToken))
}
