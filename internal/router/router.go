package router

import (
	"github.com/gin-gonic/gin"
	"github.com/hcanhquan/royalvietnam-backend/config"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/controller"
	"github.com/hcanhquan/royalvietnam-backend/internal/middleware"
)

type Router struct {
	authController     *controller.AuthController
	businessController *controller.BusinessController
	accountController  *controller.AccountController
	documentController *controller.DocumentController
	uploadController   *controller.UploadController
	systemController   *controller.SystemController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	businessController *controller.BusinessController,
	accountController *controller.AccountController,
	documentController *controller.DocumentController,
	uploadController *controller.UploadController,
	systemController *controller.SystemController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		businessController: businessController,
		accountController:  accountController,
		documentController: documentController,
		uploadController:   uploadController,
		systemController:   systemController,
		authMiddleware:     authMiddleware,
		config:             cfg,
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
			"message": "Royal Vietnam API is running",
		})
	})

	api := router.Group("/api")
	{
		api.POST("/initialize-db", r.systemController.InitializeDB)

		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/admin-login", r.authController.AdminLogin)
			auth.POST("/logout", r.authMiddleware.OptionalAuthenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.OptionalAuthenticate(), r.authController.Me)
			auth.POST("/change-password",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireAdmin(),
				r.authController.ChangePassword,
			)
		}

		businesses := api.Group("/businesses")
		{
			businesses.GET("", r.businessController.ListBusinesses)
			businesses.GET("/all", r.businessController.ListAllBusinesses)
			businesses.GET("/export", r.businessController.ExportBusinesses)
			businesses.POST("", r.businessController.CreateBusiness)
			businesses.POST("/search", r.businessController.SearchBusinesses)
			businesses.GET("/:id", r.businessController.GetBusinessByID)
			businesses.PUT("/:id", r.businessController.UpdateBusiness)
			businesses.DELETE("/:id", r.businessController.DeleteBusiness)
			businesses.PUT("/:id/access-code",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireAdmin(),
				r.businessController.UpdateAccessCode,
			)

			businesses.GET("/:id/accounts", r.accountController.GetAccount)
			businesses.POST("/:id/accounts", r.accountController.CreateAccount)
			businesses.PUT("/:id/accounts", r.accountController.UpsertAccount)

			businesses.POST("/:id/documents", r.documentController.CreateTransaction)
			businesses.GET("/:id/documents", r.documentController.ListByBusiness)
		}

		documents := api.Group("/documents")
		{
			documents.GET("", r.documentController.ListAll)
			documents.GET("/company/:companyName", r.documentController.ListByCompany)
			documents.GET("/tax-id/:taxId", r.documentController.ListByTaxID)
			documents.PUT("/:id/number",
				r.authMiddleware.Authenticate(),
				r.documentController.UpdateDocumentNumber,
			)
			documents.PUT("/:id/upload-pdf",
				r.authMiddleware.Authenticate(),
				r.documentController.AttachPdf,
			)
			documents.DELETE("/:id", r.documentController.DeleteTransaction)
		}

		api.POST("/objects/upload", r.uploadController.GenerateUploadURL)
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
