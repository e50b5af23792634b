package router

import (
	"github.com/chocolog/chocolog-backend/config"
	"github.com/chocolog/chocolog-backend/internal/app/controller"
	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController      *controller.AuthController
	userController      *controller.UserController
	brandController     *controller.BrandController
	chocolateController *controller.ChocolateController
	categoryController  *controller.CategoryController
	reviewController    *controller.ReviewController
	commentController   *controller.CommentController
	placeController     *controller.PlaceController
	uploadController    *controller.UploadController
	activityController  *controller.ActivityController
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	userController *controller.UserController,
	brandController *controller.BrandController,
	chocolateController *controller.ChocolateController,
	categoryController *controller.CategoryController,
	reviewController *controller.ReviewController,
	commentController *controller.CommentController,
	placeController *controller.PlaceController,
	uploadController *controller.UploadController,
	activityController *controller.ActivityController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:      authController,
		userController:      userController,
		brandController:     brandController,
		chocolateController: chocolateController,
		categoryController:  categoryController,
		reviewController:    reviewController,
		commentController:   commentController,
		placeController:     placeController,
		uploadController:    uploadController,
		activityController:  activityController,
		authMiddleware:      authMiddleware,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "CHOCOLOG API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
			auth.PUT("/me", r.authMiddleware.Authenticate(), r.authController.UpdateMe)
		}

		brands := v1.Group("/brands")
		{
			brands.GET("", r.brandController.ListBrands)
			brands.GET("/:id", r.brandController.GetBrand)
			brands.POST("", r.authMiddleware.Authenticate(), r.brandController.CreateBrand)
			brands.PUT("/:id", r.authMiddleware.Authenticate(), r.brandController.UpdateBrand)
			brands.DELETE("/:id", r.authMiddleware.Authenticate(), r.brandController.DeleteBrand)
		}

		chocolates := v1.Group("/chocolates")
		{
			chocolates.GET("", r.chocolateController.ListChocolates)
			chocolates.GET("/:id", r.chocolateController.GetChocolate)
			chocolates.GET("/:id/reviews", r.reviewController.ListChocolateReviews)
			chocolates.POST("", r.authMiddleware.Authenticate(), r.chocolateController.CreateChocolate)
			chocolates.PUT("/:id", r.authMiddleware.Authenticate(), r.chocolateController.UpdateChocolate)
			chocolates.DELETE("/:id", r.authMiddleware.Authenticate(), r.chocolateController.DeleteChocolate)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.ListCategories)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.GET("/:id", r.reviewController.GetReview)
			reviews.GET("/:id/comments", r.commentController.ListReviewComments)
			reviews.POST("", r.authMiddleware.Authenticate(), r.reviewController.CreateReview)
			reviews.PUT("/:id", r.authMiddleware.Authenticate(), r.reviewController.UpdateReview)
			reviews.DELETE("/:id", r.authMiddleware.Authenticate(), r.reviewController.DeleteReview)
		}

		comments := v1.Group("/comments")
		comments.Use(r.authMiddleware.Authenticate())
		{
			comments.POST("", r.commentController.CreateComment)
			comments.PUT("/:id", r.commentController.UpdateComment)
			comments.DELETE("/:id", r.commentController.DeleteComment)
		}

		places := v1.Group("/places")
		{
			places.GET("/:id", r.placeController.GetPlace)
		}

		users := v1.Group("/users")
		users.Use(r.authMiddleware.Authenticate())
		{
			users.GET("/me/reviews", r.reviewController.ListMyReviews)
		}

		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate())
		admin.Use(r.authMiddleware.RequireRole(model.RoleAdmin))
		{
			admin.GET("/users", r.userController.ListUsers)
			admin.GET("/users/export", r.userController.ExportUsers)
			admin.PUT("/users/:id/role", r.userController.UpdateUserRole)
			admin.DELETE("/users/:id", r.userController.DeleteUser)
		}

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/presigned-url", r.uploadController.GetPresignedURL)
		}

		v1.GET("/ws/activity", r.authMiddleware.Authenticate(), r.activityController.Subscribe)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
