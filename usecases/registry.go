package usecases

import (
	"errors"
	"fmt"
	"io"
	"time"

	"mojopi/entities"
	"mojopi/repositories"
)

// RingStore persists ring artifacts. Save must compute the checksum from
// the bytes it writes, and Remove undoes a Save when record creation fails.
type RingStore interface {
	Save(filename string, r io.Reader) (stored string, sha256 string, err error)
	Remove(stored string) error
}

// RingUpload carries the metadata fields of a ring upload request.
type RingUpload struct {
	Name        string
	Version     string
	Platform    string
	Author      string
	AuthorEmail string
	RequireDist string
	RequireMojo string
	FileName    string
}

type RegistryUseCase struct {
	ProjectRepo repositories.ProjectRepository
	RingRepo    repositories.RingRepository
	Store       RingStore
	Events      EventPublisher
}

func NewRegistryUseCase(projectRepo repositories.ProjectRepository, ringRepo repositories.RingRepository, store RingStore, events EventPublisher) *RegistryUseCase {
	return &RegistryUseCase{
		ProjectRepo: projectRepo,
		RingRepo:    ringRepo,
		Store:       store,
		Events:      events,
	}
}

// LatestVersion returns the lexicographically greatest version recorded for
// a project name.
func (uc *RegistryUseCase) LatestVersion(name string) (string, error) {
	version, err := uc.ProjectRepo.LatestVersion(name)
	if err != nil {
		return "", translate(err)
	}
	return version, nil
}

// resolveVersion substitutes the latest version when none was given.
func (uc *RegistryUseCase) resolveVersion(name, version string) (string, error) {
	if version != "" {
		return version, nil
	}
	return uc.LatestVersion(name)
}

// ProjectInfo merges project and latest-ring metadata into a single map.
// Absent or empty fields are omitted rather than emitted as nulls.
func (uc *RegistryUseCase) ProjectInfo(name, version string) (map[string]any, error) {
	version, err := uc.resolveVersion(name, version)
	if err != nil {
		return nil, err
	}

	project, err := uc.ProjectRepo.GetByNameVersion(name, version)
	if err != nil {
		return nil, translate(err)
	}

	info := map[string]any{
		"name":          name,
		"version":       project.Version,
		"create_at":     project.CreateAt,
		"last_modified": project.LastModified,
	}
	putIf(info, "description", project.Description)
	putIf(info, "description_content_type", project.DescriptionContentType)
	putIf(info, "home_page", project.HomePage)
	putIf(info, "keywords", project.Keywords)
	putIf(info, "license", project.License)
	putIf(info, "maintainer", project.Maintainer)
	putIf(info, "maintainer_email", project.MaintainerEmail)
	putIf(info, "summary", project.Summary)

	ring, err := uc.RingRepo.GetLatestByName(name)
	if err == nil {
		putIf(info, "author", ring.Author)
		putIf(info, "author_email", ring.AuthorEmail)
		putIf(info, "requires_mojo", ring.RequireMojo)
	} else if !errors.Is(translate(err), ErrNotFound) {
		return nil, err
	}

	return info, nil
}

func putIf(info map[string]any, key, value string) {
	if value != "" {
		info[key] = value
	}
}

// Project returns the raw project record for a name/version pair, resolving
// the latest version when none was given.
func (uc *RegistryUseCase) Project(name, version string) (*entities.Project, error) {
	version, err := uc.resolveVersion(name, version)
	if err != nil {
		return nil, err
	}
	project, err := uc.ProjectRepo.GetByNameVersion(name, version)
	if err != nil {
		return nil, translate(err)
	}
	return project, nil
}

// History lists every ring for a name, newest upload first.
func (uc *RegistryUseCase) History(name, version string) ([]entities.Ring, error) {
	if _, err := uc.Project(name, version); err != nil {
		return nil, err
	}
	rings, err := uc.RingRepo.ListByName(name)
	if err != nil {
		return nil, translate(err)
	}
	return rings, nil
}

// Files lists the rings for a name/version pair, for download listing.
func (uc *RegistryUseCase) Files(name, version string) ([]entities.Ring, error) {
	project, err := uc.Project(name, version)
	if err != nil {
		return nil, err
	}
	rings, err := uc.RingRepo.ListByNameVersion(name, project.Version)
	if err != nil {
		return nil, translate(err)
	}
	return rings, nil
}

// Search returns every project whose name contains the query,
// case-insensitively. No ranking, no pagination.
func (uc *RegistryUseCase) Search(query string) ([]entities.Project, error) {
	projects, err := uc.ProjectRepo.SearchByName(query)
	if err != nil {
		return nil, translate(err)
	}
	return projects, nil
}

// ResolveRing finds the ring backing a download request. An empty version
// resolves to the latest; platform narrows the match when given. A record
// without a stored file is reported as ErrNotFound.
func (uc *RegistryUseCase) ResolveRing(name, version, platform string) (*entities.Ring, error) {
	version, err := uc.resolveVersion(name, version)
	if err != nil {
		return nil, err
	}

	var ring *entities.Ring
	if platform != "" {
		ring, err = uc.RingRepo.GetByKey(name, version, platform)
	} else {
		ring, err = uc.RingRepo.GetByNameVersion(name, version)
	}
	if err != nil {
		return nil, translate(err)
	}
	if ring.FileName == "" {
		return nil, fmt.Errorf("%w: ring file not uploaded", ErrNotFound)
	}
	return ring, nil
}

// UploadRing registers a ring and persists its file as one operation. The
// checksum is computed from the uploaded bytes while they are written. The
// file goes to disk first, then the project row is ensured, then the ring
// record is created last; if either record step fails the file is removed
// again, so no ring record can point at a file that was never kept. A
// placeholder project row may survive a failed upload, which a retry then
// reuses.
func (uc *RegistryUseCase) UploadRing(meta RingUpload, file io.Reader) (*entities.Ring, error) {
	if meta.Name == "" {
		return nil, fmt.Errorf("%w: name not provided", ErrInvalidInput)
	}

	if _, err := uc.RingRepo.GetByKey(meta.Name, meta.Version, meta.Platform); err == nil {
		return nil, fmt.Errorf("%w: duplicate ring", ErrConflict)
	} else if !errors.Is(translate(err), ErrNotFound) {
		return nil, err
	}

	stored, sha, err := uc.Store.Save(meta.FileName, file)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureProject(meta.Name, meta.Version); err != nil {
		_ = uc.Store.Remove(stored)
		return nil, err
	}

	ring := &entities.Ring{
		Name:        meta.Name,
		Version:     meta.Version,
		Platform:    meta.Platform,
		Author:      meta.Author,
		AuthorEmail: meta.AuthorEmail,
		RequireDist: meta.RequireDist,
		RequireMojo: meta.RequireMojo,
		FileName:    stored,
		Sha256:      sha,
	}
	if err := uc.RingRepo.Create(ring); err != nil {
		_ = uc.Store.Remove(stored)
		return nil, translate(err)
	}

	uc.publish(entities.RegistryEvent{
		Kind:     entities.EventRingUploaded,
		Name:     ring.Name,
		Version:  ring.Version,
		Platform: ring.Platform,
		At:       time.Now().Format(time.RFC3339),
	})
	return ring, nil
}

// ensureProject creates a metadata-free project row for a name/version pair
// the first time a ring for it is uploaded.
func (uc *RegistryUseCase) ensureProject(name, version string) error {
	_, err := uc.ProjectRepo.GetByNameVersion(name, version)
	if err == nil {
		return nil
	}
	if !errors.Is(translate(err), ErrNotFound) {
		return err
	}

	project := &entities.Project{Name: name, Version: version}
	if err := uc.ProjectRepo.Create(project); err != nil {
		// A concurrent upload may have created it between lookup and insert.
		if errors.Is(translate(err), ErrConflict) {
			return nil
		}
		return err
	}

	uc.publish(entities.RegistryEvent{
		Kind:    entities.EventProjectCreated,
		Name:    name,
		Version: version,
		At:      time.Now().Format(time.RFC3339),
	})
	return nil
}

func (uc *RegistryUseCase) publish(event entities.RegistryEvent) {
	if uc.Events != nil {
		uc.Events.Publish(event)
	}
}
