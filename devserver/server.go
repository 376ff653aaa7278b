// Package devserver is an in-memory stand-in for the marketplace backend. It
// implements the REST contract the client consumes so the CLI and tests can
// run without the real deployment. State lives in memory and is gone when the
// process exits.
package devserver

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"

	"farm-market/config"
	"farm-market/models"
)

type Server struct {
	store         *store
	jwtSecret     string
	jwtExpiry     string
	uploadDir     string
	maxUploadSize int64
	cloudinary    *cloudinary.Cloudinary
}

func New(cfg *config.Config) *Server {
	return &Server{
		store:         newStore(),
		jwtSecret:     cfg.JWTSecret,
		jwtExpiry:     cfg.JWTExpiry,
		uploadDir:     cfg.UploadDir,
		maxUploadSize: cfg.MaxUploadSize,
		cloudinary:    newCloudinary(),
	}
}

// Router builds the gin engine with every route the contract names.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/farmer/register", s.registerFarmer)
	router.POST("/farmer/login", s.login(models.RoleFarmer))
	router.POST("/buyer/register", s.registerBuyer)
	router.POST("/buyer/login", s.login(models.RoleBuyer))

	farmer := router.Group("/farmer")
	farmer.Use(s.authMiddleware(), requireRole(models.RoleFarmer))
	{
		farmer.GET("/user", s.currentUser)
		farmer.GET("/products", s.farmerProducts)
		farmer.POST("/products", s.createProduct)
		farmer.PUT("/products/:id", s.updateProduct)
		farmer.DELETE("/products/:id", s.deleteProduct)
	}

	buyer := router.Group("/buyer")
	buyer.Use(s.authMiddleware(), requireRole(models.RoleBuyer))
	{
		buyer.GET("/user", s.currentUser)
		buyer.GET("/products", s.buyerProducts)
	}

	chat := router.Group("/chat")
	chat.Use(s.authMiddleware())
	{
		chat.GET("/conversations", s.conversations)
		chat.POST("/conversations", s.startConversation)
		chat.GET("/conversations/:id/messages", s.messages)
		chat.POST("/conversations/:id/messages", s.sendMessage)
	}

	upload := router.Group("/firebase")
	upload.Use(s.authMiddleware())
	{
		upload.POST("/upload", s.uploadImage)
	}

	router.Static("/uploads", s.uploadDir)

	return router
}

// Run starts the stub on the configured port and blocks.
func (s *Server) Run(port string) error {
	if config.AppConfig != nil && config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := s.Router()
	log.Printf("Dev backend listening on port %s", port)
	return router.Run(":" + port)
}
