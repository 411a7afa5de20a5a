package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

type projectReq struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stack       []string `json:"stack"`
	RepoURL     string   `json:"repo_url"`
	Tags        []string `json:"tags"`
	Visible     bool     `json:"visible"`
}

func (req projectReq) toDomain() domain.Project {
	return domain.Project{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Stack:       req.Stack,
		RepoURL:     req.RepoURL,
		Tags:        req.Tags,
		Visible:     req.Visible,
	}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	project, err := h.service.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), req.toDomain())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *Handler) update(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.service.DeleteProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// canCreate reports whether the caller is the configured admin. It
// touches no storage.
func (h *Handler) canCreate(c *gin.Context) {
	allowed := h.authorizedUserID != "" && auth.UserID(c) == h.authorizedUserID
	c.JSON(http.StatusOK, gin.H{"can_create": allowed})
}
