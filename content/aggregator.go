// Package content merges the built-in portfolio entries with the custom
// entries managed through the dashboard.
package content

import (
	"github.com/pmtrec/portofolio/database"
	"github.com/pmtrec/portofolio/models"
)

// Aggregator produces the lists rendered by the portfolio views: built-ins
// first, in their fixed order, followed by custom entries in storage order.
// Ids are not de-duplicated across the two sources; a custom entry colliding
// with a built-in id appears alongside it.
type Aggregator struct {
	projectRepo       *database.ProjectRepo
	certificationRepo *database.CertificationRepo
}

func NewAggregator(projectRepo *database.ProjectRepo, certificationRepo *database.CertificationRepo) *Aggregator {
	return &Aggregator{
		projectRepo:       projectRepo,
		certificationRepo: certificationRepo,
	}
}

// BuiltinProjects returns the fixed project list.
func (a *Aggregator) BuiltinProjects() []models.Project {
	return builtinProjects()
}

// BuiltinCertifications returns the fixed certification list.
func (a *Aggregator) BuiltinCertifications() []models.Certification {
	return builtinCertifications()
}

// ListProjects returns built-ins concatenated with the custom subset.
func (a *Aggregator) ListProjects() ([]models.Project, error) {
	custom, err := a.projectRepo.FindAllCustom()
	if err != nil {
		return nil, err
	}
	return append(builtinProjects(), custom...), nil
}

// ListCertifications returns built-ins concatenated with the custom subset.
func (a *Aggregator) ListCertifications() ([]models.Certification, error) {
	custom, err := a.certificationRepo.FindAllCustom()
	if err != nil {
		return nil, err
	}
	return append(builtinCertifications(), custom...), nil
}

// FilterProjectsByCategory narrows projects to one category, preserving order.
func FilterProjectsByCategory(projects []models.Project, category string) []models.Project {
	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ProjectCountsByCategory derives per-category counts from the aggregated
// list. Counts are computed on demand, never stored.
func ProjectCountsByCategory(projects []models.Project) map[string]int {
	counts := make(map[string]int, len(models.Categories()))
	for _, cat := range models.Categories() {
		counts[cat] = 0
	}
	for _, p := range projects {
		counts[p.Category]++
	}
	return counts
}
