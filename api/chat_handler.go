package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pmtrec/portofolio/errs"
	"github.com/pmtrec/portofolio/models"
	"github.com/pmtrec/portofolio/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type chatHandler struct {
	responder Responder
	logger    zerolog.Logger
	chat      *services.ChatResponder
}

func newChatHandler(chat *services.ChatResponder) chatHandler {
	logger := log.With().Str("handlerName", "chatHandler").Logger()

	return chatHandler{
		responder: NewResponder(logger),
		logger:    logger,
		chat:      chat,
	}
}

type chatMessageRequest struct {
	Message string `json:"message"`
}

// ChatHistory represents the persisted conversation log.
type ChatHistory struct {
	Messages []models.ChatMessage `json:"messages"`
	Total    int                  `json:"total"`
}

// postMessage resolves one user message to an assistant reply. The reply is
// always 200: remote failures are absorbed into the fixed fallback answer.
func (h chatHandler) postMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode chat request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(req.Message) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		reply, err := h.chat.Respond(r.Context(), req.Message)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, reply)
	}
}

func (h chatHandler) getHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.chat.History()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ChatHistory{
			Messages: messages,
			Total:    len(messages),
		})
	}
}

func (h chatHandler) reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.chat.Reset(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "chat history cleared",
		})
	}
}
