package handlers

import (
	"net/http"

	"github.com/blogapi/blog_backend/internal/core/domain"
	portssvc "github.com/blogapi/blog_backend/internal/core/ports/services"
	"github.com/blogapi/blog_backend/internal/dto"
	"github.com/blogapi/blog_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// TagHandler handles tag CRUD requests.
type TagHandler struct {
	tagService portssvc.TagSvcFacade
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService portssvc.TagSvcFacade) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func registerTagRoutes(v1 *gin.RouterGroup, tagService portssvc.TagSvcFacade) {
	h := NewTagHandler(tagService)

	editorOnly := middleware.RequireRoles(domain.RoleEditor, domain.RoleAdmin)

	tags := v1.Group("/tags")
	{
		tags.GET("/", h.ListTags)
		tags.GET("/:tagID", h.GetTag)
		tags.POST("/", editorOnly, h.CreateTag)
		tags.PUT("/:tagID", editorOnly, h.UpdateTag)
		tags.DELETE("/:tagID", editorOnly, h.DeleteTag)
	}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}

func (h *TagHandler) GetTag(c *gin.Context) {
	tag, err := h.tagService.GetTag(c.Request.Context(), c.Param("tagID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.TagResponse, len(tags))
	for i := range tags {
		responses[i] = dto.ToTagResponse(&tags[i])
	}
	c.JSON(http.StatusOK, gin.H{"tags": responses})
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tag, err := h.tagService.UpdateTag(c.Request.Context(), c.Param("tagID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	if err := h.tagService.DeleteTag(c.Request.Context(), c.Param("tagID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}
