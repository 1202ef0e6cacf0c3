package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pmtrec/portofolio/database"
	"github.com/pmtrec/portofolio/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FallbackResponse is returned both for off-topic questions (the system prompt
// instructs the model to answer with it) and for any failure of the remote
// call. The two conditions deliberately share one string.
const FallbackResponse = "Nekkal nitt gua ladj ma louma kham 😊"

// historyWindow bounds how many prior log entries are replayed to the model.
const historyWindow = 5

const systemPrompt = `Vous êtes un assistant virtuel pour le portfolio de Papa Malick Teuw, développeur full-stack à Dakar.

Compétences clés: React, TypeScript, Node.js, Python, PostgreSQL, MongoDB, Tailwind CSS, Docker, AWS.

Projets: E-commerce (React/Node.js), Dashboard Analytics (React/Python), API Microservices, App Mobile React Native, Portfolio (Next.js), ChatBot IA, Gestion apprenants (PHP), Réseau social JOTAAY, Clone WhatsApp.

Formation: Licence UCAD, Sonatel Academy.

Contact: +221 77-171-90-13, malickteuw.devweb.gmail.com

INSTRUCTION IMPORTANTE: Répondez UNIQUEMENT aux questions concernant ce portfolio et les informations ci-dessus. Si la question n'est PAS liée au portfolio, répondez exactement avec: "Nekkal nitt gua ladj ma louma kham 😊"

Soyez concis et utile pour les questions pertinentes.`

// keywordGroup maps a set of trigger words to one canned reply. Groups are
// tried in order; the first group with any keyword contained in the
// normalized input wins.
type keywordGroup struct {
	keywords []string
	response string
}

func cannedResponses() []keywordGroup {
	return []keywordGroup{
		{
			keywords: []string{"bonjour", "salut", "hello", "hi"},
			response: "Bonjour ! 👋 Je suis l'assistant virtuel du portfolio de Papa Malick Teuw. Je peux vous renseigner sur ses compétences, projets, expérience ou coordonnées. Que souhaitez-vous savoir ?",
		},
		{
			keywords: []string{"compétence", "skill", "technologie"},
			response: "Papa Malick maîtrise : React, TypeScript, Node.js, Python, PostgreSQL, MongoDB, Tailwind CSS, Docker, AWS. Il a aussi des compétences en UI/UX Design avec Figma et en développement mobile avec React Native.",
		},
		{
			keywords: []string{"projet", "project"},
			response: "Projets principaux : E-commerce (React/Node.js), Dashboard Analytics (React/Python), API Microservices, App Mobile React Native, Portfolio (Next.js), ChatBot IA, Gestion apprenants (PHP), Réseau social JOTAAY, Clone WhatsApp.",
		},
		{
			keywords: []string{"contact", "téléphone", "email", "whatsapp"},
			response: "Coordonnées : Téléphone: +221 77-171-90-13, WhatsApp: +221 76-272-86-52, Email: malickteuw.devweb.gmail.com",
		},
		{
			keywords: []string{"expérience", "experience", "formation"},
			response: "Formation : Licence en Mathématiques, Physique et Informatique à l'UCAD (2022-2024), Formation en cours à Sonatel Academy (Orange Digital Center). Plus de 2 ans d'expérience avec projets académiques et personnels.",
		},
	}
}

// ChatResponder resolves a user utterance to a reply: canned keyword answers
// first, the remote completion service otherwise, the fixed fallback on any
// remote failure. Both sides of the exchange are appended to the persisted log.
type ChatResponder struct {
	completer ChatCompleter
	logRepo   *database.ChatLogRepo
	groups    []keywordGroup
	logger    zerolog.Logger
}

func NewChatResponder(completer ChatCompleter, logRepo *database.ChatLogRepo) *ChatResponder {
	return &ChatResponder{
		completer: completer,
		logRepo:   logRepo,
		groups:    cannedResponses(),
		logger:    log.With().Str("serviceName", "chatResponder").Logger(),
	}
}

// localResponse returns the canned reply for the first matching keyword
// group, if any. Matching is case-insensitive substring containment.
func (r *ChatResponder) localResponse(text string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, group := range r.groups {
		for _, keyword := range group.keywords {
			if strings.Contains(normalized, keyword) {
				return group.response, true
			}
		}
	}
	return "", false
}

// Respond resolves text to a reply and appends the user message followed by
// the reply to the log. The returned message is the responder's. Ids are the
// millisecond timestamp for the user message and timestamp+1 for the reply,
// bumped past any ids already in the log so two exchanges within the same
// millisecond stay distinct.
func (r *ChatResponder) Respond(ctx context.Context, text string) (models.ChatMessage, error) {
	history, err := r.logRepo.History()
	if err != nil {
		return models.ChatMessage{}, err
	}

	now := time.Now()
	id := now.UnixMilli()
	for containsMessageID(history, id) || containsMessageID(history, id+1) {
		id++
	}

	userMsg := models.ChatMessage{
		ID:        strconv.FormatInt(id, 10),
		Text:      text,
		IsUser:    true,
		Timestamp: now,
	}

	reply, matched := r.localResponse(text)
	if !matched {
		remote, err := r.callRemote(ctx, history, text)
		if err != nil {
			r.logger.Warn().Err(err).Msg("remote completion failed, answering with fallback")
			reply = FallbackResponse
		} else {
			reply = remote
		}
	}

	replyMsg := models.ChatMessage{
		ID:        strconv.FormatInt(id+1, 10),
		Text:      reply,
		IsUser:    false,
		Timestamp: time.Now(),
	}

	if err := r.logRepo.Append(userMsg, replyMsg); err != nil {
		return models.ChatMessage{}, err
	}
	return replyMsg, nil
}

func containsMessageID(history []models.ChatMessage, id int64) bool {
	encoded := strconv.FormatInt(id, 10)
	for _, msg := range history {
		if msg.ID == encoded {
			return true
		}
	}
	return false
}

// callRemote builds the completion request: fixed system prompt, the last
// historyWindow entries of the log as it stood before this exchange oldest
// first, then the new user message.
func (r *ChatResponder) callRemote(ctx context.Context, history []models.ChatMessage, text string) (string, error) {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	for _, msg := range history {
		role := "assistant"
		if msg.IsUser {
			role = "user"
		}
		messages = append(messages, Message{Role: role, Content: msg.Text})
	}
	messages = append(messages, Message{Role: "user", Content: text})

	return r.completer.Complete(ctx, messages)
}

// History returns the persisted conversation, oldest first.
func (r *ChatResponder) History() ([]models.ChatMessage, error) {
	return r.logRepo.History()
}

// Reset clears the conversation.
func (r *ChatResponder) Reset() error {
	return r.logRepo.Reset()
}
