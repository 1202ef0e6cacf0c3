package api

import (
	"encoding/json"
	"net/http"

	"github.com/pmtrec/portofolio/errs"
	"github.com/pmtrec/portofolio/models"
	"github.com/pmtrec/portofolio/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    *services.Mailer
}

func newContactHandler(mailer *services.Mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

// submit delegates the contact form to the email collaborator. The client
// only distinguishes success from error; it resubmits on failure, there is
// no retry here.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		for field, value := range map[string]string{
			"name":    req.Name,
			"email":   req.Email,
			"subject": req.Subject,
			"message": req.Message,
		} {
			if value == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field))
				return
			}
		}

		if err := h.mailer.SendContactEmail(r.Context(), req); err != nil {
			h.logger.Error().Err(err).Msg("Contact email delivery failed")
			w.WriteHeader(http.StatusBadGateway)
			h.responder.WriteJSON(w, map[string]string{"status": "error"})
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
