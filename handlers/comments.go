package handlers

import (
	"net/http"

	"github.com/ESRS-Group/backend-api/internal/engagement"
	"github.com/gin-gonic/gin"
)

// CommentsHandler exposes the comment API. Payload keys are snake_case and
// mutations answer with message envelopes; existing clients depend on both.
type CommentsHandler struct {
	svc *engagement.Service
}

func NewCommentsHandler(svc *engagement.Service) *CommentsHandler {
	return &CommentsHandler{svc: svc}
}

// Register routes under /comments
func (h *CommentsHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/comments")
	g.POST("/:articleId", h.Add)
	g.GET("/:articleId", h.ListByArticle)
	g.GET("/user/:userId", h.ListByUser)
	g.DELETE("/:id", h.Delete)
}

type addCommentRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Body   string `json:"comment" binding:"required"`
}

func (h *CommentsHandler) Add(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := h.svc.AddComment(c.Request.Context(), c.Param("articleId"), req.UserID, req.Body)
	if err != nil {
		serverError(c, "add comment", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Comment added", "new_comment": comment})
}

func (h *CommentsHandler) ListByArticle(c *gin.Context) {
	limit, err := optionalLimit(c)
	if err != nil {
		return
	}
	list, err := h.svc.ListComments(c.Request.Context(), c.Param("articleId"), limit)
	if err != nil {
		serverError(c, "list comments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *CommentsHandler) ListByUser(c *gin.Context) {
	limit, err := optionalLimit(c)
	if err != nil {
		return
	}
	list, err := h.svc.ListCommentsByUser(c.Request.Context(), c.Param("userId"), limit)
	if err != nil {
		serverError(c, "list comments by user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *CommentsHandler) Delete(c *gin.Context) {
	ok, err := h.svc.DeleteComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		serverError(c, "delete comment", err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// optionalLimit parses the limit query parameter. Absent means unbounded (0).
// Writes the 400 response itself on a bad value.
func optionalLimit(c *gin.Context) (int64, error) {
	s := c.Query("limit")
	if s == "" {
		return 0, nil
	}
	n, err := positiveInt(s, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer >= 1"})
		return 0, err
	}
	return int64(n), nil
}
