package repositories

import "mojopi/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	Update(user *entities.User) error
}

type ProfileRepository interface {
	Create(profile *entities.Profile) error
	GetByUserID(userID string) (*entities.Profile, error)
	Update(profile *entities.Profile) error
}

type ProjectRepository interface {
	Create(project *entities.Project) error
	GetByNameVersion(name, version string) (*entities.Project, error)
	LatestVersion(name string) (string, error)
	SearchByName(query string) ([]entities.Project, error)
}

type RingRepository interface {
	Create(ring *entities.Ring) error
	GetByKey(name, version, platform string) (*entities.Ring, error)
	GetByNameVersion(name, version string) (*entities.Ring, error)
	GetLatestByName(name string) (*entities.Ring, error)
	ListByName(name string) ([]entities.Ring, error)
	ListByNameVersion(name, version string) ([]entities.Ring, error)
}
