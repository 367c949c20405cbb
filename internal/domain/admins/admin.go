package admins

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminUser struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	AdminName    string `gorm:"uniqueIndex;not null" json:"admin_name"`
	PasswordHash string `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdminUser) TableName() string { return "admin_users" }

func (a *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// LoginAttempt records every admin login attempt per client IP. Failed
// attempts within the block window lock the IP out.
type LoginAttempt struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	IPAddress string `gorm:"not null;index" json:"ip_address"`
	Username  string `json:"username"`
	Success   bool   `gorm:"not null" json:"success"`

	CreatedAt time.Time `json:"created_at"`
}

func (LoginAttempt) TableName() string { return "login_attempts" }
