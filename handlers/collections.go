package handlers

import (
	"errors"
	"net/http"

	"github.com/ESRS-Group/backend-api/internal/collections"
	"github.com/gin-gonic/gin"
)

// CollectionsHandler exposes the per-user saved-article collections API.
type CollectionsHandler struct {
	svc *collections.Service
}

func NewCollectionsHandler(svc *collections.Service) *CollectionsHandler {
	return &CollectionsHandler{svc: svc}
}

// Register routes under /collections
func (h *CollectionsHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/collections")
	g.POST("/:userId", h.Create)
	g.GET("/:userId", h.List)
	g.GET("/:userId/articles", h.ListWithArticles)
	g.POST("/:userId/:name/articles", h.AddArticle)
	g.DELETE("/:userId/:name/articles/:articleId", h.RemoveArticle)
	g.DELETE("/:userId/:name", h.Delete)
	g.PUT("/:userId/:name", h.Rename)
}

type createCollectionRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create answers with the full new document for a user's first collection
// and with a lightweight reference afterwards. The asymmetry is part of the
// API contract.
func (h *CollectionsHandler) Create(c *gin.Context) {
	var req createCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	set, ref, err := h.svc.Create(c.Request.Context(), c.Param("userId"), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, collections.ErrInvalidName):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collection name"})
		case errors.Is(err, collections.ErrNotModified):
			c.JSON(http.StatusConflict, gin.H{"error": "Collection not created"})
		default:
			serverError(c, "create collection", err)
		}
		return
	}
	if set != nil {
		c.JSON(http.StatusCreated, set)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

type addArticleRequest struct {
	ArticleID string `json:"article_id" binding:"required"`
}

func (h *CollectionsHandler) AddArticle(c *gin.Context) {
	var req addArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, err := h.svc.AddArticle(c.Request.Context(), c.Param("userId"), c.Param("name"), req.ArticleID)
	if err != nil {
		serverError(c, "add article to collection", err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article added to collection"})
}

func (h *CollectionsHandler) RemoveArticle(c *gin.Context) {
	ok, err := h.svc.RemoveArticle(c.Request.Context(), c.Param("userId"), c.Param("name"), c.Param("articleId"))
	if err != nil {
		serverError(c, "remove article from collection", err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article removed from collection"})
}

func (h *CollectionsHandler) Delete(c *gin.Context) {
	ok, err := h.svc.Delete(c.Request.Context(), c.Param("userId"), c.Param("name"))
	if err != nil {
		serverError(c, "delete collection", err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Collection deleted"})
}

type renameCollectionRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

func (h *CollectionsHandler) Rename(c *gin.Context) {
	var req renameCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, err := h.svc.Rename(c.Request.Context(), c.Param("userId"), c.Param("name"), req.NewName)
	if err != nil {
		switch {
		case errors.Is(err, collections.ErrInvalidName):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collection name"})
		case errors.Is(err, collections.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Collection name already exists"})
		default:
			serverError(c, "rename collection", err)
		}
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Collection renamed"})
}

func (h *CollectionsHandler) List(c *gin.Context) {
	set, err := h.svc.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		serverError(c, "list collections", err)
		return
	}
	c.JSON(http.StatusOK, set)
}

func (h *CollectionsHandler) ListWithArticles(c *gin.Context) {
	hydrated, err := h.svc.ListWithArticles(c.Request.Context(), c.Param("userId"))
	if err != nil {
		serverError(c, "list collections with articles", err)
		return
	}
	c.JSON(http.StatusOK, hydrated)
}
