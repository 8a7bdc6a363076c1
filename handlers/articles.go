package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ESRS-Group/backend-api/internal/articles"
	"github.com/ESRS-Group/backend-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ArticlesHandler exposes the read-only article API.
type ArticlesHandler struct {
	svc *articles.Service
}

func NewArticlesHandler(svc *articles.Service) *ArticlesHandler {
	return &ArticlesHandler{svc: svc}
}

// Register routes under /articles
func (h *ArticlesHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/articles")
	a.GET("", h.List)
	a.GET("/search", h.Search)
	a.GET("/:id", h.GetByID)
}

// List returns articles filtered by optional genre/source query parameters.
// When page or limit is present the paginated envelope is returned instead
// of the bare list.
func (h *ArticlesHandler) List(c *gin.Context) {
	genre := c.Query("genre")
	source := c.Query("source")

	pageStr, limitStr := c.Query("page"), c.Query("limit")
	if pageStr == "" && limitStr == "" {
		list, err := h.svc.List(c.Request.Context(), genre, source)
		if err != nil {
			serverError(c, "list articles", err)
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	page, err := positiveInt(pageStr, 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer >= 1"})
		return
	}
	limit, err := positiveInt(limitStr, 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer >= 1"})
		return
	}
	paged, err := h.svc.ListPaginated(c.Request.Context(), genre, source, page, limit)
	if err != nil {
		serverError(c, "list articles paginated", err)
		return
	}
	c.JSON(http.StatusOK, paged)
}

func (h *ArticlesHandler) GetByID(c *gin.Context) {
	a, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, articles.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		serverError(c, "get article", err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ArticlesHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}
	list, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		serverError(c, "search articles", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// positiveInt parses an integer >= 1, using def when the value is absent.
func positiveInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errors.New("not a positive integer")
	}
	return n, nil
}

// serverError logs the underlying cause and answers with a generic payload;
// store failures are never detailed to clients.
func serverError(c *gin.Context, op string, err error) {
	logger.Errorf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
