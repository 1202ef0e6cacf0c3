package content

import (
	"testing"

	"github.com/pmtrec/portofolio/database"
	"github.com/pmtrec/portofolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAggregator() (*Aggregator, *database.ProjectRepo, *database.CertificationRepo) {
	store := database.NewMemorySlotStore()
	projectRepo := database.NewProjectRepo(store)
	certificationRepo := database.NewCertificationRepo(store)
	return NewAggregator(projectRepo, certificationRepo), projectRepo, certificationRepo
}

func TestListProjectsStartsWithBuiltins(t *testing.T) {
	aggregator, projectRepo, _ := newTestAggregator()

	builtins := aggregator.BuiltinProjects()
	require.NotEmpty(t, builtins)

	custom, err := projectRepo.Add(models.Project{Title: "Custom", Category: models.CategoryBackend})
	require.NoError(t, err)

	projects, err := aggregator.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, len(builtins)+1)

	for i, builtin := range builtins {
		assert.Equal(t, builtin.ID, projects[i].ID)
		assert.Equal(t, builtin.Title, projects[i].Title)
	}
	assert.Equal(t, custom.ID, projects[len(builtins)].ID)
}

func TestListProjectsKeepsIDCollisions(t *testing.T) {
	aggregator, projectRepo, _ := newTestAggregator()

	builtins := aggregator.BuiltinProjects()
	require.NotEmpty(t, builtins)

	// A custom entry sharing a built-in id is listed alongside it, not merged.
	colliding := models.Project{ID: builtins[0].ID, Title: "Shadow", Category: models.CategoryFrontend}
	_, err := projectRepo.Add(colliding)
	require.NoError(t, err)

	projects, err := aggregator.ListProjects()
	require.NoError(t, err)

	matches := 0
	for _, p := range projects {
		if p.ID == builtins[0].ID {
			matches++
		}
	}
	assert.Equal(t, 2, matches)
}

func TestListCertificationsStartsWithBuiltins(t *testing.T) {
	aggregator, _, certificationRepo := newTestAggregator()

	builtins := aggregator.BuiltinCertifications()
	require.NotEmpty(t, builtins)

	custom, err := certificationRepo.Add(models.Certification{Title: "Custom Cert", FileType: models.FileTypePDF})
	require.NoError(t, err)

	certifications, err := aggregator.ListCertifications()
	require.NoError(t, err)
	require.Len(t, certifications, len(builtins)+1)
	assert.Equal(t, custom.ID, certifications[len(builtins)].ID)
}

func TestFilterProjectsByCategory(t *testing.T) {
	projects := []models.Project{
		{ID: 1, Category: models.CategoryFrontend},
		{ID: 2, Category: models.CategoryBackend},
		{ID: 3, Category: models.CategoryFrontend},
	}

	filtered := FilterProjectsByCategory(projects, models.CategoryFrontend)
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)

	assert.Empty(t, FilterProjectsByCategory(projects, models.CategoryMobile))
}

func TestProjectCountsByCategoryCoversEveryCategory(t *testing.T) {
	counts := ProjectCountsByCategory([]models.Project{
		{Category: models.CategoryFullstack},
		{Category: models.CategoryFullstack},
		{Category: models.CategoryMobile},
	})

	for _, cat := range models.Categories() {
		_, present := counts[cat]
		assert.True(t, present, "category %q missing from counts", cat)
	}
	assert.Equal(t, 2, counts[models.CategoryFullstack])
	assert.Equal(t, 1, counts[models.CategoryMobile])
	assert.Equal(t, 0, counts[models.CategoryFrontend])
}

func TestCreateListFilterDeleteScenario(t *testing.T) {
	aggregator, projectRepo, _ := newTestAggregator()
	baseline, err := aggregator.ListProjects()
	require.NoError(t, err)
	baselineBackend := len(FilterProjectsByCategory(baseline, models.CategoryBackend))

	created, err := projectRepo.Add(models.Project{Title: "Worker", Category: models.CategoryBackend})
	require.NoError(t, err)

	projects, err := aggregator.ListProjects()
	require.NoError(t, err)
	assert.Len(t, FilterProjectsByCategory(projects, models.CategoryBackend), baselineBackend+1)

	require.NoError(t, projectRepo.Delete(created.ID))

	projects, err = aggregator.ListProjects()
	require.NoError(t, err)
	assert.Len(t, projects, len(baseline))
	assert.Len(t, FilterProjectsByCategory(projects, models.CategoryBackend), baselineBackend)
}
