package http

import "github.com/gin-gonic/gin"

// Register attaches comment routes to the given router group.
// requireUser gates the authenticated routes; createLimit throttles
// comment creation.
func (h *Handler) Register(rg *gin.RouterGroup, requireUser, createLimit gin.HandlerFunc) {
	rg.GET("/all_public", h.listPublic)
	rg.GET("/my", requireUser, h.listMine)
	rg.GET("/:id", requireUser, h.get)
	rg.POST("", requireUser, createLimit, h.create)
	rg.DELETE("/:id", requireUser, h.delete)
}
