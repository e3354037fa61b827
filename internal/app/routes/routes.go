package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tsiw/alumnet/internal/app/controllers"
	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/middleware"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	alumniController *controllers.AlumniController,
	companyController *controllers.CompanyController,
	postController *controllers.PostController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Root banner and health probe
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("AlumNet API"))
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public credential routes ---
	users := router.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
	}

	// Reads are public; only mutations sit behind the token gate.
	requireAuth := authMiddleware.JWTAuth()
	adminOnly := authMiddleware.RoleRequired(models.TypeAdmin)

	alumni := router.Group("/alumni")
	{
		alumni.GET("", alumniController.ListAlumni)
		alumni.GET("/:id", alumniController.GetAlumni)
		alumni.PATCH("/:id", requireAuth, alumniController.UpdateAlumni)
		alumni.DELETE("/:id", requireAuth, alumniController.DeleteAlumni)
		alumni.POST("/:id/companies", requireAuth, alumniController.AddCompany)
		alumni.PATCH("/:id/companies", requireAuth, alumniController.ChangeCompany)
	}

	companies := router.Group("/companies")
	{
		companies.GET("", companyController.ListCompanies)
		companies.GET("/:id", companyController.GetCompany)
		companies.POST("", requireAuth, companyController.CreateCompany)
		companies.PATCH("/:id", requireAuth, adminOnly, companyController.UpdateCompany)
		companies.PUT("/:id/verify", requireAuth, adminOnly, companyController.VerifyCompany)
		companies.DELETE("/:id/associates/:alumniId", requireAuth, adminOnly, companyController.RemoveAlumni)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", postController.ListPosts)
		posts.GET("/:id", postController.GetPost)
		posts.POST("", requireAuth, postController.CreatePost)
		posts.DELETE("/:id", requireAuth, postController.DeletePost)
		posts.POST("/:id/comments", requireAuth, postController.AddComment)
		posts.DELETE("/:id/comments/:commentId", requireAuth, postController.DeleteComment)
		posts.POST("/:id/like", requireAuth, postController.LikePost)
		posts.POST("/:id/dislike", requireAuth, postController.DislikePost)
	}

	router.NoRoute(notFoundHandler)
}

// notFoundHandler keeps the per-section 404 messages the API has always
// answered with.
func notFoundHandler(c *gin.Context) {
	path := c.Request.URL.Path
	switch {
	case strings.HasPrefix(path, "/users"):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Users: what???"))
	case strings.HasPrefix(path, "/alumni"):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Alumni: what???"))
	case strings.HasPrefix(path, "/companies"):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Companies: what???"))
	case strings.HasPrefix(path, "/posts"):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Posts: what???"))
	default:
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("WHAT???"))
	}
}
