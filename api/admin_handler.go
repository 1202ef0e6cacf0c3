package api

import (
	"encoding/json"
	"net/http"

	"github.com/pmtrec/portofolio/errs"
	"github.com/pmtrec/portofolio/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	gate      *services.AdminGate
}

func newAdminHandler(gate *services.AdminGate) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gate:      gate,
	}
}

type adminLoginRequest struct {
	AdminID string `json:"adminId"`
}

func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode admin login body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		token, err := h.gate.Login(req.AdminID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":        "success",
			"authenticated": true,
			"token":         token,
		})
	}
}

func (h adminHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.gate.Logout(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":        "success",
			"authenticated": false,
		})
	}
}

func (h adminHandler) status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authenticated, err := h.gate.Status()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"authenticated": authenticated,
		})
	}
}
