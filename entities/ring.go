package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ring is a built distribution artifact tied to a Project by name.
// (name, version, platform) is the natural key for duplicate detection.
// FileName is the stored artifact filename; Sha256 is its content checksum.
type Ring struct {
	ID          string `gorm:"type:text;primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex:idx_ring_natural_key;index;not null" json:"name"`
	Version     string `gorm:"uniqueIndex:idx_ring_natural_key" json:"version"`
	Platform    string `gorm:"uniqueIndex:idx_ring_natural_key" json:"platform"`
	Author      string `json:"author,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
	RequireDist string `json:"require_dist,omitempty"`
	RequireMojo string `json:"require_mojo,omitempty"`
	FileName    string `json:"file_name"`
	Sha256      string `json:"sha256"`
	UploadAt    string `gorm:"index" json:"upload_at"`
}

func (r *Ring) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.UploadAt == "" {
		r.UploadAt = time.Now().Format(time.RFC3339)
	}
	return
}
