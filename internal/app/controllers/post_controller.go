package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/app/services"
	"github.com/tsiw/alumnet/internal/middleware"
	"github.com/tsiw/alumnet/internal/pkg/helpers"
)

// PostController handles the social feed.
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController.
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// CreatePost publishes a post
// @Summary Create a post
// @Description Publishes a feed post that expires after 48 hours. Awards the author 10 points.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.PostEnvelope
// @Failure 400 {object} dto.APIResponse
// @Router /posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	callerID, _ := middleware.CallerIdentity(c)
	post, err := ctrl.postService.CreatePost(c.Request.Context(), callerID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PostEnvelope{
		Success: true,
		Message: "post created successfully",
		Post:    *post,
	})
}

// ListPosts lists the feed
// @Summary List posts
// @Description Returns a page of the feed, newest first, comments embedded. Filters by author and message substring.
// @Tags posts
// @Produce json
// @Param page query int false "0-based page" default(0)
// @Param limit query int false "Page size, must be 10" default(10)
// @Param userId query int false "Author filter"
// @Param message query string false "Message substring filter"
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.APIResponse
// @Router /posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	page, err := helpers.ParsePageParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	limit, err := helpers.ParseExactLimit(c, helpers.DefaultLimit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	filter := dto.PostFilter{Message: c.Query("message")}
	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("userId must be an integer"))
			return
		}
		filter.UserID = &userID
	}

	posts, total, err := ctrl.postService.ListPosts(c.Request.Context(), filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(helpers.NewPagination(total, page, limit), posts))
}

// GetPost returns one post
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.PostEnvelope
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id} [get]
func (ctrl *PostController) GetPost(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	post, err := ctrl.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostEnvelope{Success: true, Post: *post})
}

// DeletePost removes a post
// @Summary Delete a post
// @Description Only the author or an admin may delete a post.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	callerID, callerType := middleware.CallerIdentity(c)
	if err := ctrl.postService.DeletePost(c.Request.Context(), callerID, callerType, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("post deleted successfully"))
}

// AddComment comments on a post
// @Summary Comment on a post
// @Description Awards the commenter 10 points.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.CommentRequest true "Comment content"
// @Success 201 {object} dto.CommentEnvelope
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id}/comments [post]
func (ctrl *PostController) AddComment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	callerID, _ := middleware.CallerIdentity(c)
	comment, err := ctrl.postService.AddComment(c.Request.Context(), callerID, id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CommentEnvelope{
		Success: true,
		Message: "comment added successfully",
		Comment: *comment,
	})
}

// DeleteComment removes a comment
// @Summary Delete a comment
// @Description Only the comment author or an admin may delete a comment.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id}/comments/{commentId} [delete]
func (ctrl *PostController) DeleteComment(c *gin.Context) {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	callerID, callerType := middleware.CallerIdentity(c)
	if err := ctrl.postService.DeleteComment(c.Request.Context(), callerID, callerType, postID, commentID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("comment deleted successfully"))
}

// LikePost likes a post
// @Summary Like a post
// @Description Bumps the like counter and awards the liker 10 points.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.LikesResponse
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id}/like [post]
func (ctrl *PostController) LikePost(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	callerID, _ := middleware.CallerIdentity(c)
	likes, err := ctrl.postService.LikePost(c.Request.Context(), callerID, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikesResponse{Success: true, Message: "post liked", Likes: likes})
}

// DislikePost removes a like
// @Summary Dislike a post
// @Description Decrements the like counter, which never goes below zero.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.LikesResponse
// @Failure 400 {object} dto.APIResponse "No likes to remove"
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id}/dislike [post]
func (ctrl *PostController) DislikePost(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	callerID, _ := middleware.CallerIdentity(c)
	likes, err := ctrl.postService.DislikePost(c.Request.Context(), callerID, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikesResponse{Success: true, Message: "post disliked", Likes: likes})
}
