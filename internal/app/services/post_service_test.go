package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/db"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
)

func TestPostService_CreatePost(t *testing.T) {
	var pointsAwarded int
	var stored *models.Post
	postRepo := &mockPostRepository{
		createPost: func(ctx context.Context, q db.Querier, post *models.Post) (int64, error) {
			stored = post
			return 9, nil
		},
	}
	userRepo := &mockUserRepository{
		addPoints: func(ctx context.Context, q db.Querier, userID int64, delta int) error {
			pointsAwarded += delta
			return nil
		},
	}
	txRunner := &mockTxRunner{}
	service := NewPostService(postRepo, userRepo, txRunner, nil)

	post, err := service.CreatePost(context.Background(), 1, &dto.CreatePostRequest{Message: "hello"})
	require.NoError(t, err)

	assert.Equal(t, int64(9), post.ID)
	assert.Equal(t, models.PostTTL, stored.ExpiresAt.Sub(stored.CreatedAt))
	assert.Zero(t, stored.Likes)
	assert.Empty(t, stored.Comments)
	assert.Equal(t, PointsPerAction, pointsAwarded)
	assert.Equal(t, 1, txRunner.calls)
}

func TestPostService_DeletePost_Ownership(t *testing.T) {
	post := &models.Post{ID: 9, UserID: 1, Message: "hello"}
	tests := []struct {
		name       string
		callerID   int64
		callerType models.UserType
		wantErr    error
	}{
		{name: "author", callerID: 1, callerType: models.TypeAlumni},
		{name: "admin", callerID: 9, callerType: models.TypeAdmin},
		{name: "someone else", callerID: 2, callerType: models.TypeAlumni, wantErr: apperrors.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deleted bool
			postRepo := &mockPostRepository{
				getPostByID: func(ctx context.Context, id int64) (*models.Post, error) { return post, nil },
				deletePost: func(ctx context.Context, postID int64) error {
					deleted = true
					return nil
				},
			}
			service := NewPostService(postRepo, &mockUserRepository{}, &mockTxRunner{}, nil)

			err := service.DeletePost(context.Background(), tt.callerID, tt.callerType, post.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, deleted)
				return
			}
			require.NoError(t, err)
			assert.True(t, deleted)
		})
	}
}

func TestPostService_AddComment(t *testing.T) {
	var pointsAwarded int
	postRepo := &mockPostRepository{
		getPostByID: func(ctx context.Context, id int64) (*models.Post, error) {
			if id != 9 {
				return nil, apperrors.ErrPostNotFound
			}
			return &models.Post{ID: id}, nil
		},
		addComment: func(ctx context.Context, q db.Querier, comment *models.Comment) (int64, error) {
			return 21, nil
		},
	}
	userRepo := &mockUserRepository{
		addPoints: func(ctx context.Context, q db.Querier, userID int64, delta int) error {
			pointsAwarded += delta
			return nil
		},
	}
	service := NewPostService(postRepo, userRepo, &mockTxRunner{}, nil)

	t.Run("unknown post", func(t *testing.T) {
		_, err := service.AddComment(context.Background(), 1, 404, &dto.CommentRequest{Comment: "nice"})
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("awards points", func(t *testing.T) {
		comment, err := service.AddComment(context.Background(), 1, 9, &dto.CommentRequest{Comment: "nice"})
		require.NoError(t, err)
		assert.Equal(t, int64(21), comment.ID)
		assert.Equal(t, int64(9), comment.PostID)
		assert.WithinDuration(t, time.Now(), comment.CreatedAt, time.Second)
		assert.Equal(t, PointsPerAction, pointsAwarded)
	})
}

func TestPostService_DeleteComment_Ownership(t *testing.T) {
	comment := &models.Comment{ID: 21, PostID: 9, UserID: 1}
	postRepo := &mockPostRepository{
		getComment: func(ctx context.Context, postID, commentID int64) (*models.Comment, error) {
			return comment, nil
		},
		deleteComment: func(ctx context.Context, postID, commentID int64) error { return nil },
	}
	service := NewPostService(postRepo, &mockUserRepository{}, &mockTxRunner{}, nil)

	err := service.DeleteComment(context.Background(), 2, models.TypeAlumni, 9, 21)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	assert.NoError(t, service.DeleteComment(context.Background(), 1, models.TypeAlumni, 9, 21))
	assert.NoError(t, service.DeleteComment(context.Background(), 5, models.TypeAdmin, 9, 21))
}

func TestPostService_LikeDislike(t *testing.T) {
	likes := 0
	var pointsAwarded int
	postRepo := &mockPostRepository{
		getPostByID: func(ctx context.Context, id int64) (*models.Post, error) {
			return &models.Post{ID: id, Likes: likes}, nil
		},
		incrementLikes: func(ctx context.Context, q db.Querier, postID int64) (int, error) {
			likes++
			return likes, nil
		},
		decrementLikes: func(ctx context.Context, q db.Querier, postID int64) (int, error) {
			if likes == 0 {
				return 0, apperrors.ErrNoLikesToRemove
			}
			likes--
			return likes, nil
		},
	}
	userRepo := &mockUserRepository{
		addPoints: func(ctx context.Context, q db.Querier, userID int64, delta int) error {
			pointsAwarded += delta
			return nil
		},
	}
	service := NewPostService(postRepo, userRepo, &mockTxRunner{}, nil)
	ctx := context.Background()

	t.Run("dislike at zero is rejected", func(t *testing.T) {
		_, err := service.DislikePost(ctx, 1, 9)
		assert.ErrorIs(t, err, apperrors.ErrNoLikesToRemove)
		assert.Zero(t, likes)
	})

	t.Run("like then dislike", func(t *testing.T) {
		n, err := service.LikePost(ctx, 1, 9)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = service.LikePost(ctx, 2, 9)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 2*PointsPerAction, pointsAwarded)

		n, err = service.DislikePost(ctx, 1, 9)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		// Dislikes award nothing.
		assert.Equal(t, 2*PointsPerAction, pointsAwarded)
	})
}
