package database

import (
	"encoding/json"
	"time"

	"github.com/pmtrec/portofolio/errs"
	"github.com/pmtrec/portofolio/models"
	"github.com/rs/zerolog/log"
)

// ProjectRepo manages the custom project list stored under the
// customProjects slot. Built-in projects are never written here.
type ProjectRepo struct {
	store SlotStore
}

func NewProjectRepo(store SlotStore) *ProjectRepo {
	return &ProjectRepo{store}
}

// FindAllCustom returns the stored custom projects in storage order. An empty
// or unreadable slot yields an empty list: malformed data is logged and
// treated as if nothing had been saved.
func (r *ProjectRepo) FindAllCustom() ([]models.Project, error) {
	raw, err := r.store.Load(KeyCustomProjects)
	if err != nil {
		return nil, errs.NewStorageError("load", KeyCustomProjects, err)
	}
	if raw == nil {
		return []models.Project{}, nil
	}

	var projects []models.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		log.Warn().Err(err).Str("key", KeyCustomProjects).Msg("discarding corrupt slot, treating as empty")
		return []models.Project{}, nil
	}
	return projects, nil
}

// FindByID returns the custom project with the given id.
func (r *ProjectRepo) FindByID(id int64) (models.Project, error) {
	projects, err := r.FindAllCustom()
	if err != nil {
		return models.Project{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, errs.NewNotFound("project")
}

// Add appends a new custom project and persists the full list. The id is
// derived from the creation time; it is bumped until unique within the
// custom list.
func (r *ProjectRepo) Add(project models.Project) (models.Project, error) {
	projects, err := r.FindAllCustom()
	if err != nil {
		return models.Project{}, err
	}

	if project.ID == 0 {
		project.ID = time.Now().UnixMilli()
	}
	for containsProjectID(projects, project.ID) {
		project.ID++
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	if project.Stats == nil {
		project.Stats = map[string]string{}
	}

	projects = append(projects, project)
	if err := r.saveAll(projects); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Update replaces the custom project with the given id wholesale. A missing
// id is reported as not-found rather than silently ignored.
func (r *ProjectRepo) Update(id int64, project models.Project) (models.Project, error) {
	projects, err := r.FindAllCustom()
	if err != nil {
		return models.Project{}, err
	}

	for i := range projects {
		if projects[i].ID == id {
			project.ID = id
			projects[i] = project
			if err := r.saveAll(projects); err != nil {
				return models.Project{}, err
			}
			return project, nil
		}
	}
	return models.Project{}, errs.NewNotFound("project")
}

// Delete removes the custom project with the given id. Deleting an id that is
// not present is reported as not-found; the stored list is left untouched, so
// a repeated delete leaves the same list as a single one.
func (r *ProjectRepo) Delete(id int64) error {
	projects, err := r.FindAllCustom()
	if err != nil {
		return err
	}

	remaining := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(projects) {
		return errs.NewNotFound("project")
	}
	return r.saveAll(remaining)
}

func (r *ProjectRepo) saveAll(projects []models.Project) error {
	raw, err := json.Marshal(projects)
	if err != nil {
		return errs.NewStorageError("encode", KeyCustomProjects, err)
	}
	if err := r.store.Save(KeyCustomProjects, raw); err != nil {
		return errs.NewStorageError("save", KeyCustomProjects, err)
	}
	return nil
}

func containsProjectID(projects []models.Project, id int64) bool {
	for _, p := range projects {
		if p.ID == id {
			return true
		}
	}
	return false
}
