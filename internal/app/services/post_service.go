package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/db"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
	"github.com/tsiw/alumnet/internal/pkg/logger"
)

// PointsPerAction is awarded to the acting user for each post, comment
// and like.
const PointsPerAction = 10

// PostService handles the social feed.
type PostService struct {
	postRepo PostRepository
	userRepo UserRepository
	tx       TxRunner
	q        db.Querier
}

// NewPostService creates a new post service instance.
func NewPostService(postRepo PostRepository, userRepo UserRepository, tx TxRunner, q db.Querier) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		tx:       tx,
		q:        q,
	}
}

// CreatePost publishes a feed post that expires after the post TTL. Posting
// awards the author points, in the same transaction.
func (s *PostService) CreatePost(ctx context.Context, authorID int64, req *dto.CreatePostRequest) (*models.Post, error) {
	now := time.Now()
	post := &models.Post{
		UserID:    authorID,
		Message:   req.Message,
		CreatedAt: now,
		ExpiresAt: now.Add(models.PostTTL),
		Comments:  []models.Comment{},
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := s.postRepo.CreatePost(ctx, tx, post)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		post.ID = id
		return s.userRepo.AddPoints(ctx, tx, authorID, PointsPerAction)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("postId", post.ID).Int64("userId", authorID).Msg("Post created")
	return post, nil
}

// ListPosts returns a page of the feed, newest first, comments embedded.
func (s *PostService) ListPosts(ctx context.Context, filter dto.PostFilter, page, limit int) ([]models.Post, int64, error) {
	posts, total, err := s.postRepo.ListPosts(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, total, nil
}

// GetPostByID returns one post with its comments.
func (s *PostService) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	return s.postRepo.GetPostByID(ctx, id)
}

// DeletePost removes a post. Only the author or an admin may do it.
func (s *PostService) DeletePost(ctx context.Context, callerID int64, callerType models.UserType, postID int64) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if callerType != models.TypeAdmin && post.UserID != callerID {
		return apperrors.NewForbiddenError("You can only delete your own posts")
	}
	if err := s.postRepo.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	logger.Info().Int64("postId", postID).Int64("userId", callerID).Msg("Post deleted")
	return nil
}

// AddComment comments on a post and awards the commenter points, in the
// same transaction.
func (s *PostService) AddComment(ctx context.Context, callerID, postID int64, req *dto.CommentRequest) (*models.Comment, error) {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:    postID,
		UserID:    callerID,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := s.postRepo.AddComment(ctx, tx, comment)
		if err != nil {
			return fmt.Errorf("failed to add comment: %w", err)
		}
		comment.ID = id
		return s.userRepo.AddPoints(ctx, tx, callerID, PointsPerAction)
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment removes a comment. Only its author or an admin may do it.
func (s *PostService) DeleteComment(ctx context.Context, callerID int64, callerType models.UserType, postID, commentID int64) error {
	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if callerType != models.TypeAdmin && comment.UserID != callerID {
		return apperrors.NewForbiddenError("You can only delete your own comments")
	}
	return s.postRepo.DeleteComment(ctx, postID, commentID)
}

// LikePost bumps the like counter and awards the liker points, in the
// same transaction. Returns the new counter value.
func (s *PostService) LikePost(ctx context.Context, callerID, postID int64) (int, error) {
	var likes int
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		n, err := s.postRepo.IncrementLikes(ctx, tx, postID)
		if err != nil {
			return err
		}
		likes = n
		return s.userRepo.AddPoints(ctx, tx, callerID, PointsPerAction)
	})
	if err != nil {
		return 0, err
	}
	return likes, nil
}

// DislikePost decrements the like counter. The counter never goes below
// zero; a dislike on a post with no likes is rejected. No points here.
func (s *PostService) DislikePost(ctx context.Context, callerID, postID int64) (int, error) {
	// Distinguish a missing post from an empty counter first.
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		return 0, err
	}
	likes, err := s.postRepo.DecrementLikes(ctx, s.q, postID)
	if err != nil {
		return 0, err
	}
	return likes, nil
}
