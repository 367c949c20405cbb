package adminauth

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"streaming-app/config"
	"streaming-app/database"
	"streaming-app/internal/domain/admins"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedAttempts = 5
	blockWindow       = 45 * time.Minute
	tokenLifetime     = 24 * time.Hour
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ------------------------------
// POST /api/admin/login
// ------------------------------
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	userIP := c.ClientIP()

	blocked, err := isIPBlocked(userIP)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during login"})
		return
	}
	if blocked {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed login attempts. Please try again after 45 minutes."})
		return
	}

	admin, authErr := authenticate(input.Username, input.Password)
	success := authErr == nil

	if err := recordAttempt(userIP, input.Username, success); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during login"})
		return
	}

	if !success {
		failed, err := recentFailedAttempts(userIP)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during login"})
			return
		}
		remaining := maxFailedAttempts - failed
		if remaining <= 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed login attempts. IP blocked for 45 minutes."})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "remainingAttempts": remaining})
		return
	}

	// successful login clears the failure window
	if err := resetFailedAttempts(userIP); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during login"})
		return
	}

	token, err := issueToken(admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"admin":   gin.H{"id": admin.ID, "admin_name": admin.AdminName},
	})
}

// ------------------------------
// POST /api/admin/check-blocked
// ------------------------------
func CheckBlocked(c *gin.Context) {
	userIP := c.ClientIP()

	blocked, err := isIPBlocked(userIP)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check blocked status"})
		return
	}
	failed, err := recentFailedAttempts(userIP)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check blocked status"})
		return
	}

	remaining := maxFailedAttempts - failed
	if remaining < 0 {
		remaining = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"isBlocked":         blocked,
		"failedAttempts":    failed,
		"remainingAttempts": remaining,
	})
}

func authenticate(username, password string) (*admins.AdminUser, error) {
	var admin admins.AdminUser
	if err := database.DB.First(&admin, "admin_name = ?", username).Error; err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}
	return &admin, nil
}

func recordAttempt(ip, username string, success bool) error {
	return database.DB.Create(&admins.LoginAttempt{
		IPAddress: ip,
		Username:  username,
		Success:   success,
	}).Error
}

func recentFailedAttempts(ip string) (int, error) {
	var count int64
	err := database.DB.Model(&admins.LoginAttempt{}).
		Where("ip_address = ? AND success = ? AND created_at >= ?", ip, false, time.Now().Add(-blockWindow)).
		Count(&count).Error
	return int(count), err
}

func isIPBlocked(ip string) (bool, error) {
	failed, err := recentFailedAttempts(ip)
	if err != nil {
		return false, err
	}
	return failed >= maxFailedAttempts, nil
}

func resetFailedAttempts(ip string) error {
	return database.DB.
		Where("ip_address = ? AND success = ?", ip, false).
		Delete(&admins.LoginAttempt{}).Error
}

func issueToken(admin *admins.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.AdminName,
		"role":     "admin",
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWT_SECRET))
}

// BootstrapAdmin creates the first admin account from env credentials when
// the table is empty. Called once at startup.
func BootstrapAdmin() {
	if config.ADMIN_USERNAME == "" || config.ADMIN_PASSWORD == "" {
		return
	}

	var count int64
	if err := database.DB.Model(&admins.AdminUser{}).Count(&count).Error; err != nil {
		log.Fatal("❌ Failed to check admin users:", err)
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.ADMIN_PASSWORD), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("❌ Failed to hash admin password:", err)
	}

	admin := admins.AdminUser{
		AdminName:    config.ADMIN_USERNAME,
		PasswordHash: string(hash),
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("❌ Failed to create bootstrap admin:", err)
	}

	fmt.Println("✅ Bootstrap admin created:", admin.AdminName)
}
