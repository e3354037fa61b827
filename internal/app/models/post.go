package models

import (
	"time"
)

// PostTTL is how long a post stays up before the expiry sweep removes it.
const PostTTL = 48 * time.Hour

// Post defines the feed post model based on the 'posts' table.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"idUser" db:"user_id"` // Author
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"date" db:"created_at"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"` // CreatedAt + PostTTL
	Likes     int       `json:"likes" db:"likes"`          // Never below zero

	Comments []Comment `json:"comments"`
}

// Comment is one comment on a post, based on the 'post_comments' table.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"-" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"date" db:"created_at"`
}
