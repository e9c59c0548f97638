package tweetsnap

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// tweetEntryMarker identifies which timeline entries carry the tweet
// itself rather than surrounding thread content.
const tweetEntryMarker = "tweet-"

// Extract parses a raw API response of the given shape into an
// ExtractionResult. Pure function of its input: no I/O, no retries.
// A missing or non-Tweet target object is an error, never a partial
// record.
func Extract(body []byte, shape Shape) (*ExtractionResult, error) {
	if shape == ShapeTweetResult {
		return extractTweetResult(body)
	}
	return extractTweetDetail(body)
}

// --- Response types ---
//
// Every level is optional in the API; typed structs decode absent keys to
// zero values, so only genuine shape mismatches (a list where an object
// was expected) surface as errors.

type tweetDetailResponse struct {
	Data struct {
		ThreadedConversation struct {
			Instructions []timelineInstruction `json:"instructions"`
		} `json:"threaded_conversation_with_injections_v2"`
	} `json:"data"`
}

type tweetResultResponse struct {
	Data struct {
		TweetResult struct {
			Result tweetResult `json:"result"`
		} `json:"tweetResult"`
	} `json:"data"`
}

type timelineInstruction struct {
	Type    string          `json:"type"`
	Entries []timelineEntry `json:"entries"`
}

type timelineEntry struct {
	EntryID string `json:"entryId"`
	Content struct {
		ItemContent struct {
			TweetResults struct {
				Result tweetResult `json:"result"`
			} `json:"tweet_results"`
		} `json:"itemContent"`
	} `json:"content"`
}

type tweetResult struct {
	TypeName string `json:"__typename"`
	RestID   string `json:"rest_id"`
	Core     struct {
		UserResults struct {
			Result userResult `json:"result"`
		} `json:"user_results"`
	} `json:"core"`
	Legacy tweetLegacy `json:"legacy"`
	Views  struct {
		Count string `json:"count"`
	} `json:"views"`
}

type tweetLegacy struct {
	FullText         string `json:"full_text"`
	CreatedAt        string `json:"created_at"`
	RetweetCount     int    `json:"retweet_count"`
	FavoriteCount    int    `json:"favorite_count"`
	ReplyCount       int    `json:"reply_count"`
	QuoteCount       int    `json:"quote_count"`
	BookmarkCount    int    `json:"bookmark_count"`
	Lang             string `json:"lang"`
	Source           string `json:"source"`
	ExtendedEntities struct {
		Media []mediaEntity `json:"media"`
	} `json:"extended_entities"`
}

type mediaEntity struct {
	Type       string `json:"type"`
	MediaURL   string `json:"media_url_https"`
	DisplayURL string `json:"display_url"`
}

type userResult struct {
	TypeName       string     `json:"__typename"`
	RestID         string     `json:"rest_id"`
	IsBlueVerified bool       `json:"is_blue_verified"`
	Legacy         userLegacy `json:"legacy"`
}

type userLegacy struct {
	ScreenName       string `json:"screen_name"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	FollowersCount   int    `json:"followers_count"`
	FriendsCount     int    `json:"friends_count"`
	StatusesCount    int    `json:"statuses_count"`
	CreatedAt        string `json:"created_at"`
	Verified         bool   `json:"verified"`
	ProfileImageURL  string `json:"profile_image_url_https"`
	ProfileBannerURL string `json:"profile_banner_url"`
	URL              string `json:"url"`
}

// --- Locators ---

// extractTweetDetail locates the focal tweet inside a TweetDetail
// conversation response. The tweet sits in the entry list of the first
// TimelineAddEntries instruction; the first entry whose entryId carries
// the tweet marker and whose result is an actual Tweet wins.
func extractTweetDetail(body []byte) (*ExtractionResult, error) {
	var raw tweetDetailResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal TweetDetail: %w", err)
	}

	var entries []timelineEntry
	for _, instruction := range raw.Data.ThreadedConversation.Instructions {
		if instruction.Type == "TimelineAddEntries" {
			entries = instruction.Entries
			break
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("TweetDetail: no TimelineAddEntries instruction")
	}

	for _, entry := range entries {
		if !strings.Contains(entry.EntryID, tweetEntryMarker) {
			continue
		}
		result := entry.Content.ItemContent.TweetResults.Result
		if result.TypeName != "Tweet" {
			// Tombstone, withheld, or empty placeholder — keep scanning.
			continue
		}
		return extractTweet(result), nil
	}
	return nil, fmt.Errorf("TweetDetail: no focal tweet among %d entries", len(entries))
}

// extractTweetResult locates the tweet in a TweetResultByRestId response,
// where it sits at a fixed shallow path.
func extractTweetResult(body []byte) (*ExtractionResult, error) {
	var raw tweetResultResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal TweetResultByRestId: %w", err)
	}
	result := raw.Data.TweetResult.Result
	if result.TypeName != "Tweet" {
		return nil, fmt.Errorf("TweetResultByRestId: result is %q, not a Tweet", result.TypeName)
	}
	return extractTweet(result), nil
}

// --- Shared mapping ---

// extractTweet maps a resolved tweet object and its author into the flat
// output record. Both shapes converge here so the field mapping exists
// exactly once. Caller has already checked the type discriminant.
func extractTweet(r tweetResult) *ExtractionResult {
	legacy := r.Legacy
	user := r.Core.UserResults.Result

	media := make([]MediaItem, 0, len(legacy.ExtendedEntities.Media))
	for _, m := range legacy.ExtendedEntities.Media {
		media = append(media, MediaItem{
			Type:       m.Type,
			URL:        m.MediaURL,
			DisplayURL: m.DisplayURL,
		})
	}

	var views *int
	if r.Views.Count != "" {
		if n, err := strconv.Atoi(r.Views.Count); err == nil {
			views = &n
		}
	}

	return &ExtractionResult{
		ExtractedAt: time.Now(),
		Tweet: TweetRecord{
			TweetID:       r.RestID,
			Text:          legacy.FullText,
			CreatedAt:     legacy.CreatedAt,
			RetweetCount:  legacy.RetweetCount,
			FavoriteCount: legacy.FavoriteCount,
			ReplyCount:    legacy.ReplyCount,
			QuoteCount:    legacy.QuoteCount,
			BookmarkCount: legacy.BookmarkCount,
			Views:         views,
			Lang:          legacy.Lang,
			Source:        legacy.Source,
			Media:         media,
		},
		User: UserRecord{
			UserID:           user.RestID,
			ScreenName:       user.Legacy.ScreenName,
			Name:             user.Legacy.Name,
			Description:      user.Legacy.Description,
			Location:         user.Legacy.Location,
			FollowersCount:   user.Legacy.FollowersCount,
			FriendsCount:     user.Legacy.FriendsCount,
			StatusesCount:    user.Legacy.StatusesCount,
			CreatedAt:        user.Legacy.CreatedAt,
			Verified:         user.Legacy.Verified,
			IsBlueVerified:   user.IsBlueVerified,
			ProfileImageURL:  user.Legacy.ProfileImageURL,
			ProfileBannerURL: user.Legacy.ProfileBannerURL,
			URL:              user.Legacy.URL,
		},
	}
}
