package domain

import (
	"time"

	"github.com/google/uuid"
)

type Like struct {
	ID        int64
	PostID    int64
	UserID    uuid.UUID
	CreatedAt time.Time
}

// State is the answer to every like mutation: whether the caller likes the
// post now and the recounted total.
type State struct {
	Liked bool
	Count int
}

// LikedPost is one row of the caller's liked posts listing.
type LikedPost struct {
	LikeID      int64
	PostID      int64
	Title       string
	Description string
	Image       *string
	LikesCount  int
	LikedAt     time.Time
}
