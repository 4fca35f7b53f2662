package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the public-facing bio record, one per User. A private profile
// is only visible to its owner.
type Profile struct {
	ID         string `gorm:"type:text;primaryKey" json:"id"`
	UserID     string `gorm:"uniqueIndex;not null" json:"user_id"`
	IsPublic   bool   `gorm:"default:true" json:"is_public"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Bio        string `json:"bio"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return
}
