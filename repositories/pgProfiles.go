package repositories

import (
	"time"

	"mojopi/db"
	"mojopi/entities"
)

type profilePgRepository struct {
	db db.Database
}

func NewProfilePgRepository(database db.Database) ProfileRepository {
	return &profilePgRepository{db: database}
}

func (r *profilePgRepository) Create(profile *entities.Profile) error {
	return r.db.GetDB().Create(profile).Error
}

func (r *profilePgRepository) GetByUserID(userID string) (*entities.Profile, error) {
	var profile entities.Profile
	err := r.db.GetDB().Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profilePgRepository) Update(profile *entities.Profile) error {
	profile.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(profile).Error
}
