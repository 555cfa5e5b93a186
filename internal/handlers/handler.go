package handlers

import (
	"fitlog/internal/logger"
	"fitlog/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// Everything behind sessionMiddleware redirects to /login without a valid
// session cookie.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// System endpoints
	router.GET("/health", h.health)
	router.GET("/dbTest", h.dbTest)

	// Login flow
	router.GET("/", h.root)
	router.GET("/login", h.loginPage)
	router.POST("/loginProcess", h.loginProcess)

	h.registerProtectedRoutes(router)

	return router
}

func (h *Handler) registerProtectedRoutes(r *gin.Engine) {
	authed := r.Group("/", h.sessionMiddleware)
	{
		authed.GET("/home", h.home)
		authed.GET("/logout", h.logout)

		authed.POST("/addFood", h.addFood)
		authed.POST("/updateFood", h.updateFood)
		authed.POST("/deleteFood", h.deleteFood)

		authed.POST("/addGymLog", h.addGymLog)
		authed.POST("/updateGymLog", h.updateGymLog)
		authed.POST("/deleteGymLog", h.deleteGymLog)

		authed.GET("/searchFood", h.searchFood)
		authed.POST("/addFoodFromSearch", h.addFoodFromSearch)

		// Live dashboard feed (HTTP upgrade) on the same port
		authed.GET("/ws", h.wsConnect)
	}
}
