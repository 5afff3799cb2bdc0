package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RiskHandler handles number limit HTTP requests
type RiskHandler struct {
	riskService *services.RiskService
}

// NewRiskHandler creates a new RiskHandler
func NewRiskHandler(riskService *services.RiskService) *RiskHandler {
	return &RiskHandler{riskService: riskService}
}

// GetRound handles GET /lotteries/:id/risk?date=YYYY-MM-DD
func (h *RiskHandler) GetRound(c *gin.Context) {
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

	entries, err := h.riskService.GetRound(c.Request.Context(), productID, roundDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve risk entries: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CommitBatch handles POST /lotteries/:id/risk — the atomic batch write
func (h *RiskHandler) CommitBatch(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.RiskCommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid risk batch payload: " + err.Error()})
		return
	}
	if req.RiskType != models.RiskClose && req.RiskType != models.RiskHalf {
		c.JSON(http.StatusBadRequest, gin.H{"error": "riskType must be CLOSE or HALF"})
		return
	}

	committed, rejected, err := h.riskService.CommitBatch(c.Request.Context(), productID, req.RoundDate, req.RiskType, req.Items)
	if err != nil {
		if errors.Is(err, services.ErrNothingPending) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No valid numbers to commit", "rejected": rejected})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit risk batch: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"committed": committed, "rejected": rejected})
}

// Distribute handles POST /risk/distribute — classifies pasted free text into
// bet type buckets by digit length, without touching storage
func (h *RiskHandler) Distribute(c *gin.Context) {
	var req models.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distribute payload: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.riskService.Distribute(req.Text))
}

// DeleteEntry handles DELETE /risk/:entryId
func (h *RiskHandler) DeleteEntry(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("entryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.riskService.DeleteEntry(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete risk entry: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Risk entry deleted"})
}

// ClearRound handles DELETE /lotteries/:id/risk?date=YYYY-MM-DD
func (h *RiskHandler) ClearRound(c *gin.Context) {
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

	deleted, err := h.riskService.ClearRound(c.Request.Context(), productID, roundDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear risk entries: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
