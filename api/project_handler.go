package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pmtrec/portofolio/content"
	"github.com/pmtrec/portofolio/database"
	"github.com/pmtrec/portofolio/errs"
	"github.com/pmtrec/portofolio/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	aggregator  *content.Aggregator
	projectRepo *database.ProjectRepo
}

func newProjectHandler(aggregator *content.Aggregator, projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		aggregator:  aggregator,
		projectRepo: projectRepo,
	}
}

// ProjectCollection represents the aggregated project list with derived
// per-category counts.
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
	Counts   map[string]int   `json:"counts"`
}

// getAllProjects returns built-in projects followed by custom ones, optionally
// narrowed with ?category=. Counts always cover the unfiltered list.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.aggregator.ListProjects()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		counts := content.ProjectCountsByCategory(projects)

		if category := r.URL.Query().Get("category"); category != "" {
			if !models.ValidCategory(category) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("category", "unknown category"))
				return
			}
			projects = content.FilterProjectsByCategory(projects, category)
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
			Counts:   counts,
		})
	}
}

// createProject adds a custom project. Built-in entries are never touched.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if !models.ValidCategory(project.Category) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("category", "must be one of frontend, backend, fullstack, mobile"))
			return
		}

		// The repository assigns the id; whatever the client sent is ignored.
		project.ID = 0

		created, err := h.projectRepo.Add(project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject replaces a custom project wholesale.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if !models.ValidCategory(project.Category) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("category", "must be one of frontend, backend, fullstack, mobile"))
			return
		}

		updated, err := h.projectRepo.Update(projectID, project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject removes a custom project. Deleting an unknown id reports
// not-found instead of silently succeeding.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

func (h projectHandler) parseProjectID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
		return 0, false
	}

	projectID, err := strconv.ParseInt(projectIDStr, 10, 64)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
		return 0, false
	}
	return projectID, true
}
