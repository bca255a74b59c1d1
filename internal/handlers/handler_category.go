package handlers

import (
	"net/http"

	"github.com/blogapi/blog_backend/internal/core/domain"
	portssvc "github.com/blogapi/blog_backend/internal/core/ports/services"
	"github.com/blogapi/blog_backend/internal/dto"
	"github.com/blogapi/blog_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category CRUD requests.
type CategoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService portssvc.CategorySvcFacade) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func registerCategoryRoutes(v1 *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := NewCategoryHandler(categoryService)

	// Mutations are restricted to editorial roles.
	editorOnly := middleware.RequireRoles(domain.RoleEditor, domain.RoleAdmin)

	categories := v1.Group("/categories")
	{
		categories.GET("/", h.ListCategories)
		categories.GET("/:categoryID", h.GetCategory)
		categories.POST("/", editorOnly, h.CreateCategory)
		categories.PUT("/:categoryID", editorOnly, h.UpdateCategory)
		categories.DELETE("/:categoryID", editorOnly, h.DeleteCategory)
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategory(c.Request.Context(), c.Param("categoryID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = dto.ToCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, gin.H{"categories": responses})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("categoryID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("categoryID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
