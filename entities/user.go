package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account in the index. Password holds a bcrypt hash; an empty
// value means the account must reset its password before it can log in
// normally. Picture is the stored avatar filename, empty when never uploaded.
type User struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Password  string `json:"-"`
	Picture   string `json:"picture,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now().Format(time.RFC3339)
	u.UpdatedAt = u.CreatedAt
	return
}
