package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/db"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
	"github.com/tsiw/alumnet/internal/pkg/helpers"
)

// PostRepository handles feed post database operations
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreatePost inserts a new post and returns its ID.
func (r *PostRepository) CreatePost(ctx context.Context, q db.Querier, post *models.Post) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO posts (user_id, message, created_at, expires_at, likes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		post.UserID, post.Message, post.CreatedAt, post.ExpiresAt, post.Likes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}
	return id, nil
}

// GetPostByID retrieves a post by ID including its comments.
func (r *PostRepository) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	post := &models.Post{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, message, created_at, expires_at, likes
		FROM posts
		WHERE id = $1`,
		id).Scan(&post.ID, &post.UserID, &post.Message, &post.CreatedAt,
		&post.ExpiresAt, &post.Likes)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	post.Comments, err = r.getComments(ctx, id)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) getComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, post_id, user_id, comment, created_at
		FROM post_comments
		WHERE post_id = $1
		ORDER BY created_at ASC, id ASC`,
		postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Comment, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comment rows: %w", err)
	}

	return comments, nil
}

// ListPosts retrieves a page of posts matching the filter, newest first,
// with comments attached, plus the total match count.
func (r *PostRepository) ListPosts(ctx context.Context, filter dto.PostFilter, page, limit int) ([]models.Post, int64, error) {
	where := squirrel.And{}
	if filter.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Message != "" {
		where = append(where, squirrel.ILike{"message": "%" + strings.TrimSpace(filter.Message) + "%"})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("posts").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count posts query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}
	if total == 0 {
		return []models.Post{}, 0, nil
	}

	listSql, listArgs, err := r.sb.Select(
		"id", "user_id", "message", "created_at", "expires_at", "likes").
		From("posts").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Offset(helpers.Offset(page, limit)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	var ids []int64
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Message, &p.CreatedAt,
			&p.ExpiresAt, &p.Likes); err != nil {
			return nil, 0, fmt.Errorf("failed to scan post row: %w", err)
		}
		p.Comments = []models.Comment{}
		posts = append(posts, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read post rows: %w", err)
	}

	if err := r.attachComments(ctx, posts, ids); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *PostRepository) attachComments(ctx context.Context, posts []models.Post, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, post_id, user_id, comment, created_at
		FROM post_comments
		WHERE post_id = ANY($1)
		ORDER BY created_at ASC, id ASC`,
		ids)
	if err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}
	defer rows.Close()

	byPost := make(map[int64][]models.Comment, len(ids))
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Comment, &c.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan comment row: %w", err)
		}
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read comment rows: %w", err)
	}

	for i := range posts {
		if comments, ok := byPost[posts[i].ID]; ok {
			posts[i].Comments = comments
		}
	}
	return nil
}

// DeletePost removes a post; comments cascade.
func (r *PostRepository) DeletePost(ctx context.Context, postID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// AddComment inserts a comment and returns its server-assigned ID.
func (r *PostRepository) AddComment(ctx context.Context, q db.Querier, comment *models.Comment) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO post_comments (post_id, user_id, comment, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		comment.PostID, comment.UserID, comment.Comment, comment.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add comment: %w", err)
	}
	return id, nil
}

// GetComment retrieves one comment of a post.
func (r *PostRepository) GetComment(ctx context.Context, postID, commentID int64) (*models.Comment, error) {
	c := &models.Comment{}
	err := r.db.QueryRow(ctx, `
		SELECT id, post_id, user_id, comment, created_at
		FROM post_comments
		WHERE id = $1 AND post_id = $2`,
		commentID, postID).Scan(&c.ID, &c.PostID, &c.UserID, &c.Comment, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}

	return c, nil
}

// DeleteComment removes one comment of a post.
func (r *PostRepository) DeleteComment(ctx context.Context, postID, commentID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM post_comments WHERE id = $1 AND post_id = $2`,
		commentID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

// IncrementLikes atomically bumps the like counter and returns the new
// value.
func (r *PostRepository) IncrementLikes(ctx context.Context, q db.Querier, postID int64) (int, error) {
	var likes int
	err := q.QueryRow(ctx, `
		UPDATE posts SET likes = likes + 1 WHERE id = $1
		RETURNING likes`,
		postID).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrPostNotFound
		}
		return 0, fmt.Errorf("failed to like post: %w", err)
	}
	return likes, nil
}

// DecrementLikes atomically lowers the like counter, refusing to go below
// zero.
func (r *PostRepository) DecrementLikes(ctx context.Context, q db.Querier, postID int64) (int, error) {
	var likes int
	err := q.QueryRow(ctx, `
		UPDATE posts SET likes = likes - 1 WHERE id = $1 AND likes > 0
		RETURNING likes`,
		postID).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the post is gone or the counter is already at zero;
			// the caller checked existence just before.
			return 0, apperrors.ErrNoLikesToRemove
		}
		return 0, fmt.Errorf("failed to dislike post: %w", err)
	}
	return likes, nil
}

// DeleteExpired removes every post past its expiry timestamp and returns
// how many went away. Called by the expiry sweeper only.
func (r *PostRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired posts: %w", err)
	}
	return tag.RowsAffected(), nil
}
