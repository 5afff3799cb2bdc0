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

// RateHandler handles rate profile HTTP requests
type RateHandler struct {
	rateService *services.RateService
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(rateService *services.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// CreateProfile handles POST /rate-profiles
func (h *RateHandler) CreateProfile(c *gin.Context) {
	var profile models.RateProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rate profile payload: " + err.Error()})
		return
	}

	created, err := h.rateService.CreateProfile(c.Request.Context(), &profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rate profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetProfiles handles GET /rate-profiles
func (h *RateHandler) GetProfiles(c *gin.Context) {
	profiles, err := h.rateService.GetProfiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate profiles: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfileByID handles GET /rate-profiles/:id
func (h *RateHandler) GetProfileByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	profile, err := h.rateService.GetProfileByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate profile: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetEffectiveRates handles GET /rate-profiles/:id/effective — the profile
// expanded over the full bet type catalog, missing types closed at pay=0
func (h *RateHandler) GetEffectiveRates(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	rates, err := h.rateService.EffectiveRates(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to expand rate profile: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, rates)
}

// UpdateProfile handles PUT /rate-profiles/:id
func (h *RateHandler) UpdateProfile(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var profile models.RateProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rate profile payload: " + err.Error()})
		return
	}
	profile.ID = id

	if err := h.rateService.UpdateProfile(c.Request.Context(), &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rate profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfile handles DELETE /rate-profiles/:id
func (h *RateHandler) DeleteProfile(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.rateService.DeleteProfile(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rate profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rate profile deleted"})
}
