package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jiningying/property-chat-agent/internal/domain"
	"github.com/jiningying/property-chat-agent/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	chat    *usecase.ChatService
	catalog domain.PropertyCatalog
}

// NewHandler creates a new HTTP handler
func NewHandler(chat *usecase.ChatService, catalog domain.PropertyCatalog) *Handler {
	return &Handler{chat: chat, catalog: catalog}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "property-chat-agent",
		"version": "1.0.0",
	})
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"userId"`
}

// Chat handles one chat turn. The response always carries the wire
// contract shape; internal failures become an apologetic payload with
// an empty recommendation list instead of a raw fault.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResult())
		return
	}

	if req.UserID == "" {
		req.UserID = "default"
	}

	result := h.chat.Chat(c.Request.Context(), req.UserID, req.Message)
	c.JSON(http.StatusOK, result)
}

// Recommendations returns the profile-driven recommendation list.
// Optional query parameters narrow the candidate pool first.
func (h *Handler) Recommendations(c *gin.Context) {
	userID := c.Param("userId")

	criteria, err := queryCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := h.chat.Recommend(userID, criteria)
	if results == nil {
		results = []domain.MatchResult{}
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":          userID,
		"recommendations": results,
	})
}

// queryCriteria parses the optional budget/bedrooms/property_type/
// location query parameters into filter criteria.
func queryCriteria(c *gin.Context) (domain.Criteria, error) {
	var criteria domain.Criteria

	if raw := c.Query("budget"); raw != "" {
		budget, err := strconv.Atoi(raw)
		if err != nil || budget <= 0 {
			return criteria, errors.New("budget must be a positive integer")
		}
		criteria.Budget = &budget
	}

	if raw := c.Query("bedrooms"); raw != "" {
		bedrooms, err := strconv.Atoi(raw)
		if err != nil || bedrooms <= 0 {
			return criteria, errors.New("bedrooms must be a positive integer")
		}
		criteria.Bedrooms = &bedrooms
	}

	if raw := c.Query("property_type"); raw != "" {
		pt, ok := domain.ParsePropertyType(raw)
		if !ok {
			return criteria, errors.New("unknown property type")
		}
		criteria.PropertyType = &pt
	}

	if raw := c.Query("location"); raw != "" {
		location := raw
		criteria.Location = &location
	}

	return criteria, nil
}

// Explain returns the score breakdown for one property. Lookup misses
// are informational messages, not errors.
func (h *Handler) Explain(c *gin.Context) {
	userID := c.Param("userId")
	propertyID := c.Param("propertyId")

	breakdown, err := h.chat.Explain(userID, propertyID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusOK, gin.H{
				"message": "Please start a conversation first to get property recommendations.",
			})
		case errors.Is(err, domain.ErrPropertyNotFound):
			c.JSON(http.StatusOK, gin.H{
				"message": "Property not found.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to explain recommendation"})
		}
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// UpdatePreferences applies an allow-listed preference patch.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	userID := c.Param("userId")

	var prefs map[string]interface{}
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	profile, err := h.chat.UpdatePreferences(userID, prefs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Preferences updated! I'll use these new criteria for future recommendations.",
		"profile": profile,
	})
}

// GetProfile returns the stored profile for a user.
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.Param("userId")

	profile, ok := h.chat.Profile(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SaveProperty adds a listing to the user's saved list.
func (h *Handler) SaveProperty(c *gin.Context) {
	userID := c.Param("userId")
	propertyID := c.Param("propertyId")

	if err := h.chat.SaveProperty(userID, propertyID); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property saved."})
}

// ListProperties returns the full catalog.
func (h *Handler) ListProperties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"properties": h.catalog.All()})
}

func errorResult() *domain.ChatResult {
	return &domain.ChatResult{
		Response:        "I'm sorry, I'm having trouble processing your request right now. Please try again.",
		Recommendations: []domain.Property{},
		Type:            domain.ResponseTypeError,
	}
}
