package clubs

import (
	"context"
	"io"
	"time"
)

// Reaction is one of the fixed post reactions.
type Reaction string

const (
	ReactionHeart  Reaction = "heart"
	ReactionLike   Reaction = "like"
	ReactionSprout Reaction = "sprout"
)

// Valid reports whether the reaction belongs to the fixed set.
func (r Reaction) Valid() bool {
	switch r {
	case ReactionHeart, ReactionLike, ReactionSprout:
		return true
	}
	return false
}

// Reactions holds per-post counters.
type Reactions struct {
	Heart  int64 `json:"heart"`
	Like   int64 `json:"like"`
	Sprout int64 `json:"sprout"`
}

// Club is a community group. Empty Members means open membership.
type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	Members     []string  `json:"members"`
	Cover       string    `json:"cover"`
	CreatedAt   time.Time `json:"created_at"`
}

// Post is one entry of a club feed, newest first.
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Reactions Reactions `json:"reactions"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository persists clubs and their posts.
type Repository interface {
	ListClubs(ctx context.Context) ([]Club, error)
	InsertClub(ctx context.Context, club Club) error
	AddMember(ctx context.Context, clubID, userID string) error
	Posts(ctx context.Context, clubID string) ([]Post, error)
	InsertPost(ctx context.Context, clubID string, post Post) error
	IncrementReaction(ctx context.Context, clubID, postID string, reaction Reaction) (Post, bool, error)
}

// StoredImage describes an uploaded post image.
type StoredImage struct {
	Key  string
	URL  string
	Size int64
}

// ImageStore keeps post images and serves them back by key.
type ImageStore interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredImage, error)
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
}
