package dto

import (
	"github.com/tsiw/alumnet/internal/app/models"
)

// CreatePostRequest represents a new feed post.
type CreatePostRequest struct {
	Message string `json:"message" binding:"required" example:"hello"`
}

// CommentRequest represents a new comment on a post.
type CommentRequest struct {
	Comment string `json:"comment" binding:"required" example:"nice one"`
}

// PostFilter holds the feed list filters.
type PostFilter struct {
	UserID  *int64
	Message string
}

// PostEnvelope wraps a single post.
type PostEnvelope struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty"`
	Post    models.Post `json:"post"`
}

// CommentEnvelope wraps a single comment.
type CommentEnvelope struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message,omitempty"`
	Comment models.Comment `json:"comment"`
}

// LikesResponse reports the like counter after a like/dislike operation.
type LikesResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
	Likes   int    `json:"likes" example:"3"`
}
