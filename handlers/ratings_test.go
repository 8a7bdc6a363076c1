package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ESRS-Group/backend-api/internal/articles"
	"github.com/ESRS-Group/backend-api/internal/engagement"
	"github.com/ESRS-Group/backend-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRating(t *testing.T) {
	r, _ := newEngagementRouter(articles.NewMemoryRepository())

	w := postJSON(r, "/api/ratings/art-1", `{"user_id": "u1", "accuracy": 4, "bias": 0, "insight": 3}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message   string        `json:"message"`
		NewRating models.Rating `json:"new_rating"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Rating added", resp.Message)
	assert.Equal(t, 4, resp.NewRating.Accuracy)
	// a zero score is a valid score, not a missing field
	assert.Equal(t, 0, resp.NewRating.Bias)
	assert.Equal(t, 3, resp.NewRating.Insight)
}

func TestAddRatingMissingScore(t *testing.T) {
	r, _ := newEngagementRouter(articles.NewMemoryRepository())

	w := postJSON(r, "/api/ratings/art-1", `{"user_id": "u1", "accuracy": 4, "bias": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRatingsByArticle(t *testing.T) {
	r, _ := newEngagementRouter(articles.NewMemoryRepository())

	// duplicate ratings from the same user are kept
	postJSON(r, "/api/ratings/art-1", `{"user_id": "u1", "accuracy": 4, "bias": 1, "insight": 3}`)
	postJSON(r, "/api/ratings/art-1", `{"user_id": "u1", "accuracy": 2, "bias": 2, "insight": 2}`)
	postJSON(r, "/api/ratings/art-2", `{"user_id": "u1", "accuracy": 5, "bias": 0, "insight": 5}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ratings/art-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Rating `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestListRatingsByUserJoinsTitles(t *testing.T) {
	articleRepo := articles.NewMemoryRepository()
	a := articleRepo.Add(models.Article{Title: "Rate hike looms", Genre: "finance"})
	r, _ := newEngagementRouter(articleRepo)

	postJSON(r, "/api/ratings/"+a.ID.Hex(), `{"user_id": "u1", "accuracy": 4, "bias": 1, "insight": 3}`)
	postJSON(r, "/api/ratings/gone-article", `{"user_id": "u1", "accuracy": 1, "bias": 1, "insight": 1}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ratings/user/u1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.RatingWithArticle `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)

	titles := map[string]string{}
	for _, rw := range resp.Data {
		titles[rw.ArticleID] = rw.ArticleTitle
	}
	assert.Equal(t, "Rate hike looms", titles[a.ID.Hex()])
	assert.Equal(t, engagement.TitleNotFound, titles["gone-article"])
}
