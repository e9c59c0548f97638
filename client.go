package tweetsnap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// fetcher is the fetch boundary the orchestrator depends on.
type fetcher interface {
	Fetch(ctx context.Context, shape Shape, tweetID string) ([]byte, error)
}

// Client ties the fetcher and extractor together with the fallback
// policy: TweetDetail first (strictly richer payload), TweetResultByRestId
// only when the detail path yields nothing.
type Client struct {
	fetcher fetcher
	store   *Store
}

// NewClient creates a fully-wired client from a loaded settings document.
func NewClient(cfg *Config) (*Client, error) {
	f, err := NewFetcher(cfg)
	if err != nil {
		return nil, err
	}
	store, err := NewStore(cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	return &Client{fetcher: f, store: store}, nil
}

// FetchAndExtract fetches a tweet and normalizes it into an
// ExtractionResult. Raw responses are persisted after each successful
// fetch and the result after successful extraction. Any failure on the
// TweetDetail path — transport, status, malformed body, or a response
// without a usable tweet — routes to the TweetResultByRestId fallback;
// the causes are distinguished only in logs.
func (c *Client) FetchAndExtract(ctx context.Context, tweetID string) (*ExtractionResult, error) {
	slog.Info("fetching tweet", slog.String("tweet_id", tweetID))

	body, err := c.fetcher.Fetch(ctx, ShapeTweetDetail, tweetID)
	if err != nil {
		slog.Warn("TweetDetail fetch failed", slog.Any("error", err))
	} else {
		c.saveRaw(ShapeTweetDetail, tweetID, body)
		res, extractErr := Extract(body, ShapeTweetDetail)
		if extractErr != nil {
			slog.Debug("TweetDetail yielded no tweet", slog.Any("cause", extractErr))
		} else {
			c.saveResult(tweetID, res)
			return res, nil
		}
	}

	slog.Info("falling back to TweetResultByRestId", slog.String("tweet_id", tweetID))
	body, err = c.fetcher.Fetch(ctx, ShapeTweetResult, tweetID)
	if err != nil {
		return nil, fmt.Errorf("both endpoints failed for %s: %w", tweetID, err)
	}
	c.saveRaw(ShapeTweetResult, tweetID, body)

	res, err := Extract(body, ShapeTweetResult)
	if err != nil {
		return nil, fmt.Errorf("no extractable tweet for %s: %w", tweetID, err)
	}
	c.saveResult(tweetID, res)
	return res, nil
}

// ExtractFromFile re-runs extraction against a previously saved raw
// response, trying both shapes in the usual order. No network access.
// The result is written under outputName in the output directory.
func (c *Client) ExtractFromFile(inputPath, outputName string) (*ExtractionResult, error) {
	body, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", inputPath, err)
	}

	res, detailErr := Extract(body, ShapeTweetDetail)
	if detailErr != nil {
		slog.Debug("not a TweetDetail document", slog.Any("cause", detailErr))
		res, err = Extract(body, ShapeTweetResult)
		if err != nil {
			return nil, fmt.Errorf("no extractable tweet in %s: %w", inputPath, err)
		}
	}

	if _, err := c.store.SaveResult(outputName, res); err != nil {
		return nil, err
	}
	return res, nil
}

// saveRaw persists a raw response; persistence problems are logged, not
// fatal — the in-memory pipeline continues.
func (c *Client) saveRaw(shape Shape, tweetID string, body []byte) {
	path, err := c.store.SaveRaw(shape, tweetID, body)
	if err != nil {
		slog.Warn("raw response not saved", slog.String("endpoint", shape.String()), slog.Any("error", err))
		return
	}
	slog.Info("response saved", slog.String("path", path))
}

func (c *Client) saveResult(tweetID string, res *ExtractionResult) {
	path, err := c.store.SaveResult(fmt.Sprintf("extracted_%s.json", tweetID), res)
	if err != nil {
		slog.Warn("extracted data not saved", slog.Any("error", err))
		return
	}
	slog.Info("extracted data saved", slog.String("path", path))
}
