package api

import (
	"github.com/pmtrec/portofolio/content"
	"github.com/pmtrec/portofolio/database"
	"github.com/pmtrec/portofolio/services"
)

// initializeHandlers wires the services and returns all handlers organized in
// a routeHandlers struct
func initializeHandlers(database database.Database, cfg map[string]string) *routeHandlers {
	aggregator := content.NewAggregator(database.ProjectRepo(), database.CertificationRepo())
	gate := services.NewAdminGate(cfg, database.AdminFlagRepo())
	responder := services.NewChatResponder(services.NewMistralClient(cfg), database.ChatLogRepo())
	mailer := services.NewMailer(cfg)
	uploads := services.NewUploadService(cfg)

	return &routeHandlers{
		projectHandler:       newProjectHandler(aggregator, database.ProjectRepo()),
		certificationHandler: newCertificationHandler(aggregator, database.CertificationRepo()),
		adminHandler:         newAdminHandler(gate),
		chatHandler:          newChatHandler(responder),
		contactHandler:       newContactHandler(mailer),
		uploadHandler:        newUploadHandler(uploads),
		dashboardHandler:     newDashboardHandler(aggregator),
	}
}
