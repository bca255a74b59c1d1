package handlers

import (
	"net/http"

	"github.com/blogapi/blog_backend/internal/core/domain"
	portssvc "github.com/blogapi/blog_backend/internal/core/ports/services"
	"github.com/blogapi/blog_backend/internal/dto"
	"github.com/blogapi/blog_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// PostHandler handles post CRUD requests.
type PostHandler struct {
	postService portssvc.PostSvcFacade
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService portssvc.PostSvcFacade) *PostHandler {
	return &PostHandler{postService: postService}
}

func registerPostRoutes(v1 *gin.RouterGroup, postService portssvc.PostSvcFacade) {
	h := NewPostHandler(postService)

	posts := v1.Group("/posts")
	{
		posts.POST("/", h.CreatePost)
		posts.GET("/mine", h.ListMyPosts)
		posts.GET("/:postID", h.GetPost)
		posts.PUT("/:postID", h.UpdatePost)
		posts.DELETE("/:postID", h.DeletePost)
	}
}

func requesterIdentity(c *gin.Context) (string, domain.UserRole, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return "", "", false
	}
	role, ok := middleware.GetUserRoleFromContext(c)
	if !ok {
		return "", "", false
	}
	return userID, role, true
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, _, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPostResponse(post))
}

func (h *PostHandler) GetPost(c *gin.Context) {
	userID, role, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), c.Param("postID"), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

func (h *PostHandler) ListMyPosts(c *gin.Context) {
	userID, _, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListPostsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	posts, total, err := h.postService.ListMyPosts(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.PostResponse, len(posts))
	for i := range posts {
		responses[i] = dto.ToPostResponse(&posts[i])
	}
	limit := int64(params.Limit)
	if limit < 1 {
		limit = 10
	}
	c.JSON(http.StatusOK, dto.ListPostsResponse{
		Posts:      responses,
		Total:      total,
		Page:       params.Page,
		TotalPages: (total + limit - 1) / limit,
	})
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, role, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), c.Param("postID"), userID, role, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, role, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), c.Param("postID"), userID, role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
