package tweetsnap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	stealth "github.com/anatolykoptev/go-stealth"
)

// transport is the single-request surface of the underlying HTTP client.
// Satisfied by *stealth.BrowserClient; tests substitute a fake.
type transport interface {
	DoWithHeaderOrder(method, url string, headers map[string]string, body io.Reader, headerOrder []string) ([]byte, map[string]string, int, error)
}

// Fetcher issues one GraphQL read request per call against the endpoint
// selected by shape. No retries, no backoff, no timeout beyond the
// transport's defaults — one identifier, one request in flight.
type Fetcher struct {
	client transport
	cfg    *Config
}

// NewFetcher creates a Fetcher over a fresh stealth client.
func NewFetcher(cfg *Config) (*Fetcher, error) {
	bc, err := stealth.NewClient(stealth.WithHeaderOrder(twitterHeaderOrder))
	if err != nil {
		return nil, fmt.Errorf("stealth client: %w", err)
	}
	return &Fetcher{client: bc, cfg: cfg}, nil
}

// Fetch performs a single GET for the given tweet ID and shape and returns
// the raw JSON body. All failure modes — network error, non-200 status,
// malformed body — collapse into one error, logged with cause by the
// caller; the fallback policy is the only recovery mechanism.
func (f *Fetcher) Fetch(ctx context.Context, shape Shape, tweetID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endpointURL, varTemplate, features, fieldToggles := f.cfg.shapeConfig(shape)

	variables := make(map[string]any, len(varTemplate)+1)
	for k, v := range varTemplate {
		variables[k] = v
	}
	variables[shape.variableKey()] = tweetID

	url := addGraphQLParams(endpointURL, variables, features, fieldToggles)
	headers := requestHeaders(f.cfg)

	body, _, status, err := f.client.DoWithHeaderOrder("GET", url, headers, nil, twitterHeaderOrder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", shape, err)
	}
	if status != 200 {
		if cause := classifyError(body); cause != errNone {
			slog.Warn("api error in response",
				slog.String("endpoint", shape.String()),
				slog.String("cause", cause.String()))
		}
		return nil, fmt.Errorf("%s HTTP %d: %s", shape, status, truncateBytes(body, 200))
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: malformed JSON body: %s", shape, truncateBytes(body, 200))
	}

	// A 200 can still carry body-level error codes. With data alongside
	// them the extractor gets its chance; without data there is nothing
	// to extract.
	if cause := classifyError(body); cause != errNone {
		if !hasResponseData(body) {
			return nil, fmt.Errorf("%s: api error without data: %s", shape, cause)
		}
		slog.Debug("api error with usable data",
			slog.String("endpoint", shape.String()),
			slog.String("cause", cause.String()))
	}
	return body, nil
}

// addGraphQLParams builds the full URL with variables, features, and
// fieldToggles serialized as JSON query parameters.
func addGraphQLParams(url string, variables, features, fieldToggles map[string]any) string {
	v, _ := json.Marshal(variables)
	f, _ := json.Marshal(features)
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	result := url + sep + "variables=" + jsonEscape(v) + "&features=" + jsonEscape(f)
	if fieldToggles != nil {
		ft, _ := json.Marshal(fieldToggles)
		result += "&fieldToggles=" + jsonEscape(ft)
	}
	return result
}

func jsonEscape(b []byte) string {
	s := string(b)
	var result strings.Builder
	for _, ch := range s {
		switch {
		case ch == ' ':
			result.WriteString("%20")
		case ch == '"':
			result.WriteString("%22")
		case ch == '{':
			result.WriteString("%7B")
		case ch == '}':
			result.WriteString("%7D")
		case ch == '[':
			result.WriteString("%5B")
		case ch == ']':
			result.WriteString("%5D")
		case ch == ':':
			result.WriteString("%3A")
		case ch == ',':
			result.WriteString("%2C")
		case ch == '\'':
			result.WriteString("%27")
		case ch == '|':
			result.WriteString("%7C")
		default:
			result.WriteRune(ch)
		}
	}
	return result.String()
}

func truncateBytes(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
