package usecases

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sort"
	"strings"

	"mojopi/entities"

	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*entities.User // id -> user
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		user.ID = "user-" + user.Username
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *entities.User) error {
	existing, ok := r.users[user.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for id, u := range r.users {
		if id == user.ID {
			continue
		}
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	*existing = *user
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*entities.Profile // userID -> profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*entities.Profile)}
}

func (r *fakeProfileRepo) Create(profile *entities.Profile) error {
	if _, ok := r.profiles[profile.UserID]; ok {
		return gorm.ErrDuplicatedKey
	}
	clone := *profile
	r.profiles[profile.UserID] = &clone
	return nil
}

func (r *fakeProfileRepo) GetByUserID(userID string) (*entities.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProfileRepo) Update(profile *entities.Profile) error {
	existing, ok := r.profiles[profile.UserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	*existing = *profile
	return nil
}

type fakeProjectRepo struct {
	projects  []*entities.Project
	createErr error
}

func newFakeProjectRepo() *fakeProjectRepo { return &fakeProjectRepo{} }

func (r *fakeProjectRepo) Create(project *entities.Project) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, p := range r.projects {
		if p.Name == project.Name && p.Version == project.Version {
			return gorm.ErrDuplicatedKey
		}
	}
	clone := *project
	r.projects = append(r.projects, &clone)
	return nil
}

func (r *fakeProjectRepo) GetByNameVersion(name, version string) (*entities.Project, error) {
	for _, p := range r.projects {
		if p.Name == name && p.Version == version {
			clone := *p
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProjectRepo) LatestVersion(name string) (string, error) {
	latest := ""
	found := false
	for _, p := range r.projects {
		if p.Name == name {
			found = true
			if p.Version > latest {
				latest = p.Version
			}
		}
	}
	if !found {
		return "", gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (r *fakeProjectRepo) SearchByName(query string) ([]entities.Project, error) {
	q := strings.ToLower(query)
	var out []entities.Project
	for _, p := range r.projects {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeRingRepo struct {
	rings     []*entities.Ring
	createErr error
}

func newFakeRingRepo() *fakeRingRepo { return &fakeRingRepo{} }

func (r *fakeRingRepo) Create(ring *entities.Ring) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.rings {
		if existing.Name == ring.Name && existing.Version == ring.Version && existing.Platform == ring.Platform {
			return gorm.ErrDuplicatedKey
		}
	}
	clone := *ring
	r.rings = append(r.rings, &clone)
	return nil
}

func (r *fakeRingRepo) GetByKey(name, version, platform string) (*entities.Ring, error) {
	for _, ring := range r.rings {
		if ring.Name == name && ring.Version == version && ring.Platform == platform {
			clone := *ring
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRingRepo) GetByNameVersion(name, version string) (*entities.Ring, error) {
	for _, ring := range r.rings {
		if ring.Name == name && ring.Version == version {
			clone := *ring
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRingRepo) GetLatestByName(name string) (*entities.Ring, error) {
	rings, _ := r.ListByName(name)
	if len(rings) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rings[0], nil
}

func (r *fakeRingRepo) ListByName(name string) ([]entities.Ring, error) {
	var out []entities.Ring
	for _, ring := range r.rings {
		if ring.Name == name {
			out = append(out, *ring)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadAt > out[j].UploadAt })
	return out, nil
}

func (r *fakeRingRepo) ListByNameVersion(name, version string) ([]entities.Ring, error) {
	var out []entities.Ring
	for _, ring := range r.rings {
		if ring.Name == name && ring.Version == version {
			out = append(out, *ring)
		}
	}
	return out, nil
}

type fakeRingStore struct {
	files   map[string][]byte
	saveErr error
	removed []string
}

func newFakeRingStore() *fakeRingStore {
	return &fakeRingStore{files: make(map[string][]byte)}
}

func (s *fakeRingStore) Save(filename string, r io.Reader) (string, string, error) {
	if s.saveErr != nil {
		return "", "", s.saveErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", "", err
	}
	s.files[filename] = buf.Bytes()
	sum := sha256.Sum256(buf.Bytes())
	return filename, hex.EncodeToString(sum[:]), nil
}

func (s *fakeRingStore) Remove(stored string) error {
	delete(s.files, stored)
	s.removed = append(s.removed, stored)
	return nil
}

type capturedEvents struct {
	events []entities.RegistryEvent
}

func (c *capturedEvents) Publish(event entities.RegistryEvent) {
	c.events = append(c.events, event)
}
