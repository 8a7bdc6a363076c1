package handlers

import (
	"net/http"

	"github.com/ESRS-Group/backend-api/internal/engagement"
	"github.com/gin-gonic/gin"
)

// RatingsHandler exposes the credibility rating API.
type RatingsHandler struct {
	svc *engagement.Service
}

func NewRatingsHandler(svc *engagement.Service) *RatingsHandler {
	return &RatingsHandler{svc: svc}
}

// Register routes under /ratings
func (h *RatingsHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/ratings")
	g.POST("/:articleId", h.Add)
	g.GET("/:articleId", h.ListByArticle)
	g.GET("/user/:userId", h.ListByUser)
}

// addRatingRequest requires all three sub-scores to be present; pointer
// fields keep zero a valid score.
type addRatingRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Accuracy *int   `json:"accuracy" binding:"required"`
	Bias     *int   `json:"bias" binding:"required"`
	Insight  *int   `json:"insight" binding:"required"`
}

func (h *RatingsHandler) Add(c *gin.Context) {
	var req addRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rating, err := h.svc.AddRating(c.Request.Context(), c.Param("articleId"), req.UserID, *req.Accuracy, *req.Bias, *req.Insight)
	if err != nil {
		serverError(c, "add rating", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Rating added", "new_rating": rating})
}

func (h *RatingsHandler) ListByArticle(c *gin.Context) {
	list, err := h.svc.ListRatingsByArticle(c.Request.Context(), c.Param("articleId"))
	if err != nil {
		serverError(c, "list ratings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// ListByUser returns the user's ratings joined with article titles.
func (h *RatingsHandler) ListByUser(c *gin.Context) {
	limit, err := optionalLimit(c)
	if err != nil {
		return
	}
	list, err := h.svc.ListRatingsByUser(c.Request.Context(), c.Param("userId"), limit)
	if err != nil {
		serverError(c, "list ratings by user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}
