package domain

import (
	"strings"
	"time"
)

// Listing is a posted trade offer: "have X, want Y". Listings are immutable
// once created except for photo attachment.
type Listing struct {
	ID                 string
	Title              string
	Description        string
	HaveCategory       string
	HaveCondition      string
	HaveEstimatedValue *int64
	HaveImageURL       *string
	WantText           string
	WantTags           []string
	Location           *string
	CreatedAt          time.Time
}

// JoinTags renders want-tags in their stored comma-delimited form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// SplitTags parses the stored comma-delimited tag string, dropping empties.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Proposal is a counter-offer against a listing. Created once, never mutated.
type Proposal struct {
	ID              string
	ListingID       string
	ProposerName    string
	ProposerContact string
	OfferText       string
	CreatedAt       time.Time
}

// ClientSession identifies one browser/device without an account. Sessions
// have no expiry.
type ClientSession struct {
	ID        string
	CreatedAt time.Time
}

// Like relates a client session to a listing. The (ClientID, ListingID) pair
// is unique.
type Like struct {
	ClientID  string
	ListingID string
	CreatedAt time.Time
}

// Filter narrows the listing feed.
type Filter struct {
	Query     string
	Category  string
	Condition string
}
