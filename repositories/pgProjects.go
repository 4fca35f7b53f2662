package repositories

import (
	"database/sql"

	"mojopi/db"
	"mojopi/entities"

	"gorm.io/gorm"
)

type projectPgRepository struct {
	db db.Database
}

func NewProjectPgRepository(database db.Database) ProjectRepository {
	return &projectPgRepository{db: database}
}

func (r *projectPgRepository) Create(project *entities.Project) error {
	return r.db.GetDB().Create(project).Error
}

// GetByNameVersion matches both fields. The predicates are combined in SQL,
// not short-circuited in the host language.
func (r *projectPgRepository) GetByNameVersion(name, version string) (*entities.Project, error) {
	var project entities.Project
	err := r.db.GetDB().Where("name = ? AND version = ?", name, version).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// LatestVersion returns the lexicographic maximum version for a name.
func (r *projectPgRepository) LatestVersion(name string) (string, error) {
	var version sql.NullString
	err := r.db.GetDB().Model(&entities.Project{}).
		Where("name = ?", name).
		Select("MAX(version)").
		Row().Scan(&version)
	if err != nil {
		return "", err
	}
	if !version.Valid {
		return "", gorm.ErrRecordNotFound
	}
	return version.String, nil
}

func (r *projectPgRepository) SearchByName(query string) ([]entities.Project, error) {
	var projects []entities.Project
	err := r.db.GetDB().Where("name ILIKE ?", "%"+query+"%").Find(&projects).Error
	return projects, err
}
