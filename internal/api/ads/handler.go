package ads

import (
	"fmt"
	"net/http"
	"time"

	"streaming-app/database"
	"streaming-app/internal/domain/ads"

	"github.com/gin-gonic/gin"
)

type CreateRequestInput struct {
	Email       string  `json:"email" binding:"required,email"`
	Description string  `json:"description" binding:"required"`
	Budget      float64 `json:"budget" binding:"required"`
}

// ------------------------------
// GET /api/advertisement-requests  (admin)
// ------------------------------
func ListRequests(c *gin.Context) {
	var requests []ads.AdvertisementRequest
	err := database.DB.Order("created_at DESC").Find(&requests).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch advertisement requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ------------------------------
// POST /api/advertisement-requests  (public, one per IP per hour)
// ------------------------------
func CreateRequest(c *gin.Context) {
	var input CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if input.Budget < ads.MinBudget {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Minimum budget is ₹%d", ads.MinBudget)})
		return
	}
	if input.Budget > ads.MaxBudget {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum budget is ₹10,00,00,000"})
		return
	}

	userIP := c.ClientIP()

	oneHourAgo := time.Now().Add(-time.Hour)
	var recent int64
	err := database.DB.Model(&ads.AdvertisementRequest{}).
		Where("user_ip = ? AND created_at >= ?", userIP, oneHourAgo).
		Count(&recent).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create advertisement request"})
		return
	}
	if recent > 0 {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "You can only make one advertisement request every hour. Please try again later."})
		return
	}

	request := ads.AdvertisementRequest{
		Email:       input.Email,
		Description: input.Description,
		Budget:      input.Budget,
		UserIP:      userIP,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create advertisement request"})
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ------------------------------
// DELETE /api/advertisement-requests/:id  (admin)
// ------------------------------
func DeleteRequest(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&ads.AdvertisementRequest{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete advertisement request"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Advertisement request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
