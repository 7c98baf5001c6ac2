package routes

import (
	"net/http"
	"time"

	"vetbook/handlers"
	"vetbook/middleware"

	vetRepo "vetbook/database/repository/vet"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVetRoutes registers vet profile endpoints.
func RegisterVetRoutes(r *gin.Engine, vh *handlers.VetHandler) {
	api := r.Group("/api/vets")
	{
		api.POST("", vh.CreateVetHandler)
		api.GET("/:id", vh.GetVetHandler)
		api.POST("/login", vh.LoginVetHandler)
	}
}

// RegisterSlotRoutes registers the scheduling engine endpoints.
func RegisterSlotRoutes(r *gin.Engine, sh *handlers.SlotHandler, vets vetRepo.VetRepository) {
	api := r.Group("/api/vets/:id/slots")
	{
		// Read endpoints and non-destructive generation are open to the
		// calling layer.
		api.POST("/generate", sh.GenerateSlotsHandler)
		api.POST("/periods", sh.AddPeriodHandler)
		api.GET("", sh.ListSlotsHandler)
		api.GET("/available", sh.AvailableSlotsHandler)
		api.GET("/grouped", sh.GroupedSlotsHandler)

		// Destructive schedule edits require the owning vet's token.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthVetMiddleware(vets))
		protected.PUT("/replace", sh.ReplaceScheduleHandler)
		protected.PATCH("/status", sh.BulkStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Vetbook"})
	})
}

// RegisterRoutes wires CORS plus every endpoint group.
func RegisterRoutes(r *gin.Engine, vh *handlers.VetHandler, sh *handlers.SlotHandler, vets vetRepo.VetRepository) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterVetRoutes(r, vh)
	RegisterSlotRoutes(r, sh, vets)
}
