package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LotteryHandler handles lottery product HTTP requests
type LotteryHandler struct {
	lotteryService *services.LotteryService
}

// NewLotteryHandler creates a new LotteryHandler
func NewLotteryHandler(lotteryService *services.LotteryService) *LotteryHandler {
	return &LotteryHandler{lotteryService: lotteryService}
}

// CreateLottery handles POST /lotteries
func (h *LotteryHandler) CreateLottery(c *gin.Context) {
	var product models.LotteryProduct
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lottery payload: " + err.Error()})
		return
	}

	created, err := h.lotteryService.CreateLottery(c.Request.Context(), &product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lottery: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetLotteries handles GET /lotteries
func (h *LotteryHandler) GetLotteries(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	lotteries, err := h.lotteryService.GetLotteries(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve lotteries: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, lotteries)
}

// GetLotteryByID handles GET /lotteries/:id
func (h *LotteryHandler) GetLotteryByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	lottery, err := h.lotteryService.GetLotteryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lottery not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve lottery: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, lottery)
}

// UpdateLottery handles PUT /lotteries/:id
func (h *LotteryHandler) UpdateLottery(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var product models.LotteryProduct
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lottery payload: " + err.Error()})
		return
	}
	product.ID = id

	if err := h.lotteryService.UpdateLottery(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lottery: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteLottery handles DELETE /lotteries/:id
func (h *LotteryHandler) DeleteLottery(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.lotteryService.DeleteLottery(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lottery: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lottery deleted"})
}

// GetRoundStatus handles GET /lotteries/:id/round — the countdown endpoint
func (h *LotteryHandler) GetRoundStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	status, err := h.lotteryService.GetRoundStatus(c.Request.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lottery not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve round window: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetBetTypes handles GET /bet-types — serves the fixed catalog
func (h *LotteryHandler) GetBetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, models.BetTypeCatalog)
}
