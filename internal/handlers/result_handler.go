package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResultHandler handles round result HTTP requests
type ResultHandler struct {
	resultService *services.ResultService
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(resultService *services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// PostResult handles POST /lotteries/:id/results. Re-posting a result for an
// already-settled round replaces it and triggers a full recompute.
func (h *ResultHandler) PostResult(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.PostResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result payload: " + err.Error()})
		return
	}

	summary, err := h.resultService.PostResult(c.Request.Context(), productID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidResult) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post result: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetResult handles GET /lotteries/:id/results?date=YYYY-MM-DD
func (h *ResultHandler) GetResult(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	roundDate := c.Query("date")
	if roundDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	result, err := h.resultService.GetResult(c.Request.Context(), productID, roundDate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No result posted for this round"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve result: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
