// Command tweetsnap fetches a single tweet from the Twitter/X GraphQL API
// and writes a normalized JSON record of the tweet and its author.
//
// Usage:
//
//	tweetsnap [tweet_id]
//	tweetsnap extract <input_file> <output_filename>
//
// Fetch mode tries the TweetDetail endpoint first and falls back to
// TweetResultByRestId. Extract mode re-processes a previously saved raw
// response with no network access. Authentication tokens and the default
// tweet ID come from settings/config.json, overridable via env.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/anatolykoptev/tweetsnap"
)

func main() {
	_ = godotenv.Load()
	setupLogging()

	cfg, err := tweetsnap.LoadConfig("settings")
	if err != nil {
		slog.Error("config load failed", slog.Any("error", err))
		os.Exit(1)
	}

	client, err := tweetsnap.NewClient(cfg)
	if err != nil {
		slog.Error("client init failed", slog.Any("error", err))
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "extract" {
		runExtract(client)
		return
	}
	runFetch(client, cfg)
}

func runExtract(client *tweetsnap.Client) {
	if len(os.Args) != 4 {
		fmt.Println("Usage: tweetsnap extract <input_file> <output_filename>")
		os.Exit(1)
	}
	inputFile, outputName := os.Args[2], os.Args[3]

	if _, err := os.Stat(inputFile); err != nil {
		fmt.Printf("Input file not found: %s\n", inputFile)
		os.Exit(1)
	}

	result, err := client.ExtractFromFile(inputFile, outputName)
	if err != nil {
		slog.Error("extraction failed", slog.Any("error", err))
		os.Exit(1)
	}
	printSummary(result)
}

func runFetch(client *tweetsnap.Client, cfg *tweetsnap.Config) {
	tweetID := cfg.DefaultTweetID
	if len(os.Args) > 1 {
		tweetID = os.Args[1]
	}
	if tweetID == "" {
		printUsage()
		os.Exit(1)
	}

	result, err := client.FetchAndExtract(context.Background(), tweetID)
	if err != nil {
		slog.Error("fetch and extract failed", slog.String("tweet_id", tweetID), slog.Any("error", err))
		os.Exit(1)
	}
	printSummary(result)
	fmt.Printf("Engagement: %d likes, %d retweets\n", result.Tweet.FavoriteCount, result.Tweet.RetweetCount)
}

func printSummary(result *tweetsnap.ExtractionResult) {
	text := result.Tweet.Text
	if len(text) > 100 {
		text = text[:100] + "..."
	}
	fmt.Printf("Tweet: @%s - %s\n", result.User.ScreenName, text)
	fmt.Printf("User: %s (%d followers)\n", result.User.Name, result.User.FollowersCount)
}

func printUsage() {
	fmt.Println("Usage: tweetsnap [tweet_id]")
	fmt.Println("       tweetsnap extract <input_file> <output_filename>")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tweetsnap 1975583212085932341")
	fmt.Println("  tweetsnap  # uses default_tweet_id from settings/config.json")
	fmt.Println("  tweetsnap extract output/tweet_detail_123.json extracted_123.json")
}

// setupLogging configures slog with a text handler; LOG_LEVEL env selects
// the level (default INFO).
func setupLogging() {
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level = slog.LevelInfo
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
