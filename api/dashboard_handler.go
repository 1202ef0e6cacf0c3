package api

import (
	"net/http"

	"github.com/pmtrec/portofolio/content"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type dashboardHandler struct {
	responder  Responder
	logger     zerolog.Logger
	aggregator *content.Aggregator
}

func newDashboardHandler(aggregator *content.Aggregator) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		aggregator: aggregator,
	}
}

// DashboardStats carries the derived totals shown on the dashboard page.
// Everything here is computed from the aggregated lists, nothing is stored.
type DashboardStats struct {
	TotalProjects        int            `json:"totalProjects"`
	CustomProjects       int            `json:"customProjects"`
	FeaturedProjects     int            `json:"featuredProjects"`
	TotalCertifications  int            `json:"totalCertifications"`
	CustomCertifications int            `json:"customCertifications"`
	ProjectsByCategory   map[string]int `json:"projectsByCategory"`
}

func (h dashboardHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.aggregator.ListProjects()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		certifications, err := h.aggregator.ListCertifications()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		featured := 0
		for _, p := range projects {
			if p.Featured {
				featured++
			}
		}

		h.responder.WriteJSON(w, DashboardStats{
			TotalProjects:        len(projects),
			CustomProjects:       len(projects) - len(h.aggregator.BuiltinProjects()),
			FeaturedProjects:     featured,
			TotalCertifications:  len(certifications),
			CustomCertifications: len(certifications) - len(h.aggregator.BuiltinCertifications()),
			ProjectsByCategory:   content.ProjectCountsByCategory(projects),
		})
	}
}
