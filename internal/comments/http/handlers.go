package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/comments/domain"
)

type createReq struct {
	Message  string `json:"message"`
	IsPublic *bool  `json:"is_public"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// visibility defaults to public when omitted
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	comment, err := h.service.CreateComment(c.Request.Context(), domain.CommentCreate{
		Message:  req.Message,
		IsPublic: isPublic,
	}, auth.UserID(c), auth.UserName(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *Handler) listPublic(c *gin.Context) {
	items, err := h.service.GetAllPublicComments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) listMine(c *gin.Context) {
	items, err := h.service.GetCommentsByUser(c.Request.Context(), auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	comment, err := h.service.GetCommentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.service.DeleteComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
