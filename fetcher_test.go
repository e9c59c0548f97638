package tweetsnap

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// fakeTransport records the outgoing request and serves a canned response.
type fakeTransport struct {
	gotMethod  string
	gotURL     string
	gotHeaders map[string]string

	body   []byte
	status int
	err    error
}

func (f *fakeTransport) DoWithHeaderOrder(method, url string, headers map[string]string, _ io.Reader, _ []string) ([]byte, map[string]string, int, error) {
	f.gotMethod = method
	f.gotURL = url
	f.gotHeaders = headers
	return f.body, nil, f.status, f.err
}

func testConfig() *Config {
	cfg := &Config{
		Auth: AuthConfig{AuthToken: "tok123", CSRFToken: "csrf456"},
	}
	cfg.defaults()
	return cfg
}

func TestFetch_BuildsDetailRequest(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"data":{}}`), status: 200}
	f := &Fetcher{client: ft, cfg: testConfig()}

	_, err := f.Fetch(context.Background(), ShapeTweetDetail, "123456")
	if err != nil {
		t.Fatal(err)
	}
	if ft.gotMethod != "GET" {
		t.Fatalf("expected GET, got %s", ft.gotMethod)
	}
	if !strings.HasPrefix(ft.gotURL, Endpoints[ShapeTweetDetail].URL()) {
		t.Fatalf("unexpected endpoint: %s", ft.gotURL)
	}
	if !strings.Contains(ft.gotURL, "%22focalTweetId%22%3A%22123456%22") {
		t.Fatalf("tweet ID not injected under focalTweetId: %s", ft.gotURL)
	}
	for _, param := range []string{"variables=", "&features=", "&fieldToggles="} {
		if !strings.Contains(ft.gotURL, param) {
			t.Fatalf("missing %s in URL: %s", param, ft.gotURL)
		}
	}
	if got := ft.gotHeaders["x-csrf-token"]; got != "csrf456" {
		t.Fatalf("expected csrf header, got %q", got)
	}
	if cookie := ft.gotHeaders["cookie"]; !strings.Contains(cookie, "auth_token=tok123") || !strings.Contains(cookie, "ct0=csrf456") {
		t.Fatalf("unexpected cookie: %q", cookie)
	}
}

func TestFetch_BuildsResultRequest(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"data":{}}`), status: 200}
	f := &Fetcher{client: ft, cfg: testConfig()}

	_, err := f.Fetch(context.Background(), ShapeTweetResult, "789")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(ft.gotURL, Endpoints[ShapeTweetResult].URL()) {
		t.Fatalf("unexpected endpoint: %s", ft.gotURL)
	}
	if !strings.Contains(ft.gotURL, "%22tweetId%22%3A%22789%22") {
		t.Fatalf("tweet ID not injected under tweetId: %s", ft.gotURL)
	}
}

func TestFetch_TemplateNotMutated(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"data":{}}`), status: 200}
	cfg := testConfig()
	f := &Fetcher{client: ft, cfg: cfg}

	if _, err := f.Fetch(context.Background(), ShapeTweetDetail, "123"); err != nil {
		t.Fatal(err)
	}
	if _, ok := cfg.TweetDetailVariables["focalTweetId"]; ok {
		t.Fatal("variable template mutated by fetch")
	}
}

func TestFetch_TransportError(t *testing.T) {
	ft := &fakeTransport{err: errors.New("connection refused")}
	f := &Fetcher{client: ft, cfg: testConfig()}

	_, err := f.Fetch(context.Background(), ShapeTweetDetail, "1")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestFetch_Non200(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"errors":[{"code":34}]}`), status: 404}
	f := &Fetcher{client: ft, cfg: testConfig()}

	_, err := f.Fetch(context.Background(), ShapeTweetDetail, "1")
	if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
		t.Fatalf("expected HTTP 404 error, got %v", err)
	}
}

func TestFetch_MalformedBody(t *testing.T) {
	ft := &fakeTransport{body: []byte(`<html>rate limited</html>`), status: 200}
	f := &Fetcher{client: ft, cfg: testConfig()}

	_, err := f.Fetch(context.Background(), ShapeTweetDetail, "1")
	if err == nil || !strings.Contains(err.Error(), "malformed") {
		t.Fatalf("expected malformed body error, got %v", err)
	}
}

func TestFetch_APIErrorWithoutData(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"errors":[{"code":144}],"data":null}`), status: 200}
	f := &Fetcher{client: ft, cfg: testConfig()}

	_, err := f.Fetch(context.Background(), ShapeTweetResult, "1")
	if err == nil {
		t.Fatal("expected error for api error without data")
	}
}

func TestFetch_APIErrorWithUsableData(t *testing.T) {
	body := `{"errors":[{"code":131}],"data":{"tweetResult":{}}}`
	ft := &fakeTransport{body: []byte(body), status: 200}
	f := &Fetcher{client: ft, cfg: testConfig()}

	got, err := f.Fetch(context.Background(), ShapeTweetResult, "1")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != body {
		t.Fatal("expected body passed through to the extractor")
	}
}

func TestFetch_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ft := &fakeTransport{body: []byte(`{"data":{}}`), status: 200}
	f := &Fetcher{client: ft, cfg: testConfig()}

	if _, err := f.Fetch(ctx, ShapeTweetDetail, "1"); err == nil {
		t.Fatal("expected context error")
	}
	if ft.gotURL != "" {
		t.Fatal("no request should be issued after cancellation")
	}
}
