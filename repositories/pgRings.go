package repositories

import (
	"mojopi/db"
	"mojopi/entities"
)

type ringPgRepository struct {
	db db.Database
}

func NewRingPgRepository(database db.Database) RingRepository {
	return &ringPgRepository{db: database}
}

func (r *ringPgRepository) Create(ring *entities.Ring) error {
	return r.db.GetDB().Create(ring).Error
}

func (r *ringPgRepository) GetByKey(name, version, platform string) (*entities.Ring, error) {
	var ring entities.Ring
	err := r.db.GetDB().
		Where("name = ? AND version = ? AND platform = ?", name, version, platform).
		First(&ring).Error
	if err != nil {
		return nil, err
	}
	return &ring, nil
}

func (r *ringPgRepository) GetByNameVersion(name, version string) (*entities.Ring, error) {
	var ring entities.Ring
	err := r.db.GetDB().Where("name = ? AND version = ?", name, version).First(&ring).Error
	if err != nil {
		return nil, err
	}
	return &ring, nil
}

// GetLatestByName returns the most recently uploaded ring for a name.
func (r *ringPgRepository) GetLatestByName(name string) (*entities.Ring, error) {
	var ring entities.Ring
	err := r.db.GetDB().Where("name = ?", name).Order("upload_at DESC").First(&ring).Error
	if err != nil {
		return nil, err
	}
	return &ring, nil
}

func (r *ringPgRepository) ListByName(name string) ([]entities.Ring, error) {
	var rings []entities.Ring
	err := r.db.GetDB().Where("name = ?", name).Order("upload_at DESC").Find(&rings).Error
	return rings, err
}

func (r *ringPgRepository) ListByNameVersion(name, version string) ([]entities.Ring, error) {
	var rings []entities.Ring
	err := r.db.GetDB().Where("name = ? AND version = ?", name, version).Find(&rings).Error
	return rings, err
}
