package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fetchrecipes/networking"
	"fetchrecipes/recipeslist"
	"fetchrecipes/types"
)

// RegisterRecipeRoutes registers recipe list endpoints.
func RegisterRecipeRoutes(r *gin.Engine, ctrl Controller) {
	h := &recipeHandlers{ctrl: ctrl}

	g := r.Group("/api/recipes")
	g.GET("", h.handleList)
	g.GET("/groups", h.handleGroups)
	g.GET("/request-types", h.handleRequestTypes)
	g.POST("/reload", h.handleReload)
}

// RecipeResponse is one recipe in API output
type RecipeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Cuisine      string `json:"cuisine"`
	PhotoURL     string `json:"photo_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	SourceURL    string `json:"source_url,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`
}

// ErrorResponse describes the last fetch failure
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// StatusResponse is the JSON response for GET /api/recipes
type StatusResponse struct {
	Phase       recipeslist.Phase      `json:"phase"`
	Count       int                    `json:"count"`
	Recipes     []RecipeResponse       `json:"recipes"`
	Error       *ErrorResponse         `json:"error,omitempty"`
	ScrollToTop bool                   `json:"scroll_to_top"`
	InFlight    int                    `json:"in_flight"`
	RequestID   string                 `json:"request_id,omitempty"`
	RequestType string                 `json:"request_type,omitempty"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Logs        []recipeslist.LogEntry `json:"logs"`
}

// GroupResponse is one cuisine section
type GroupResponse struct {
	Cuisine string           `json:"cuisine"`
	Recipes []RecipeResponse `json:"recipes"`
}

// ReloadRequest is the body of POST /api/recipes/reload
type ReloadRequest struct {
	RequestType string `json:"request_type" binding:"required"`
}

type recipeHandlers struct {
	ctrl Controller
}

func (h *recipeHandlers) handleList(c *gin.Context) {
	c.JSON(http.StatusOK, statusFromState(h.ctrl.State()))
}

func (h *recipeHandlers) handleGroups(c *gin.Context) {
	groups := h.ctrl.State().Groups()
	resp := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, GroupResponse{Cuisine: g.Cuisine, Recipes: recipesFromViews(g.Recipes)})
	}
	c.JSON(http.StatusOK, gin.H{"groups": resp})
}

func (h *recipeHandlers) handleRequestTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"request_types": networking.RequestTypes()})
}

func (h *recipeHandlers) handleReload(c *gin.Context) {
	var req ReloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rt, err := networking.ParseRequestType(req.RequestType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.ctrl.Dispatch(rt)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"status":       "accepted",
		"request_id":   id,
		"request_type": rt,
	})
}

func statusFromState(s recipeslist.ListState) StatusResponse {
	resp := StatusResponse{
		Phase:       s.Phase,
		Count:       s.Count(),
		Recipes:     recipesFromViews(s.Recipes),
		ScrollToTop: s.ScrollToTop,
		InFlight:    s.InFlight,
		RequestID:   s.RequestID,
		RequestType: string(s.RequestType),
		UpdatedAt:   s.UpdatedAt,
		Logs:        append([]recipeslist.LogEntry{}, s.Logs...),
	}
	if s.LastError != nil {
		resp.Error = &ErrorResponse{
			Kind:    s.LastError.Kind.String(),
			Message: s.LastError.Error(),
		}
	}
	return resp
}

func recipesFromViews(views []types.RecipeView) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(views))
	for _, v := range views {
		out = append(out, RecipeResponse{
			ID:           v.ID,
			Name:         v.Name,
			Cuisine:      v.Cuisine,
			PhotoURL:     types.URLString(v.PhotoURL),
			ThumbnailURL: types.URLString(v.ThumbnailURL),
			SourceURL:    types.URLString(v.SourceURL),
			VideoURL:     types.URLString(v.VideoURL),
		})
	}
	return out
}
