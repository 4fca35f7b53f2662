package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is one version of a named package. Multiple versions of the same
// name coexist as separate rows; (name, version) is the natural key.
type Project struct {
	ID                     string `gorm:"type:text;primaryKey" json:"id"`
	Name                   string `gorm:"uniqueIndex:idx_project_name_version;not null" json:"name"`
	Version                string `gorm:"uniqueIndex:idx_project_name_version" json:"version"`
	Description            string `json:"description,omitempty"`
	DescriptionContentType string `json:"description_content_type,omitempty"`
	HomePage               string `json:"home_page,omitempty"`
	Keywords               string `json:"keywords,omitempty"`
	License                string `json:"license,omitempty"`
	Maintainer             string `json:"maintainer,omitempty"`
	MaintainerEmail        string `json:"maintainer_email,omitempty"`
	Summary                string `json:"summary,omitempty"`
	CreateAt               string `json:"create_at"`
	LastModified           string `json:"last_modified"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreateAt = time.Now().Format(time.RFC3339)
	p.LastModified = p.CreateAt
	return
}
