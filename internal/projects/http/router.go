package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. All
// routes require an authenticated caller; mutations additionally
// require the configured admin identity.
func (h *Handler) Register(rg *gin.RouterGroup, requireUser, requireAdmin gin.HandlerFunc) {
	rg.Use(requireUser)

	rg.GET("", h.list)
	rg.GET("/can-create", h.canCreate)
	rg.GET("/:id", h.get)
	rg.POST("", requireAdmin, h.create)
	rg.PUT("/:id", requireAdmin, h.update)
	rg.DELETE("/:id", requireAdmin, h.delete)
}
