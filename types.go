package tweetsnap

import "time"

// MediaItem is one attachment on a tweet, in source order.
type MediaItem struct {
	Type       string `json:"type"`
	URL        string `json:"url"`
	DisplayURL string `json:"display_url"`
}

// TweetRecord is the flat, normalized view of a single tweet. Timestamps
// stay as the vendor supplies them (opaque strings); counts default to
// zero when the source omits them.
type TweetRecord struct {
	TweetID       string      `json:"tweet_id"`
	Text          string      `json:"text"`
	CreatedAt     string      `json:"created_at"`
	RetweetCount  int         `json:"retweet_count"`
	FavoriteCount int         `json:"favorite_count"`
	ReplyCount    int         `json:"reply_count"`
	QuoteCount    int         `json:"quote_count"`
	BookmarkCount int         `json:"bookmark_count"`
	Views         *int        `json:"views"`
	Lang          string      `json:"lang"`
	Source        string      `json:"source"`
	Media         []MediaItem `json:"media"`
}

// UserRecord is the flat, normalized view of the tweet's author.
// Verified and IsBlueVerified are independent: the first comes from the
// author's legacy sub-object, the second from the author result itself.
type UserRecord struct {
	UserID           string `json:"user_id"`
	ScreenName       string `json:"screen_name"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	FollowersCount   int    `json:"followers_count"`
	FriendsCount     int    `json:"friends_count"`
	StatusesCount    int    `json:"statuses_count"`
	CreatedAt        string `json:"created_at"`
	Verified         bool   `json:"verified"`
	IsBlueVerified   bool   `json:"is_blue_verified"`
	ProfileImageURL  string `json:"profile_image_url"`
	ProfileBannerURL string `json:"profile_banner_url"`
	URL              string `json:"url"`
}

// ExtractionResult is the final output record: one tweet, its author, and
// the moment extraction ran. Never produced partially filled — either the
// target object resolved to a real Tweet or there is no result at all.
type ExtractionResult struct {
	ExtractedAt time.Time   `json:"extracted_at"`
	Tweet       TweetRecord `json:"tweet"`
	User        UserRecord  `json:"user"`
}
