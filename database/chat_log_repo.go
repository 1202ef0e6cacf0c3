package database

import (
	"encoding/json"

	"github.com/pmtrec/portofolio/errs"
	"github.com/pmtrec/portofolio/models"
	"github.com/rs/zerolog/log"
)

// ChatLogRepo persists the assistant conversation log under the chatMessages
// slot. The log is append-only and kept in insertion order.
type ChatLogRepo struct {
	store SlotStore
}

func NewChatLogRepo(store SlotStore) *ChatLogRepo {
	return &ChatLogRepo{store}
}

// History returns the persisted log verbatim, oldest first. A corrupt slot is
// logged and read as an empty conversation.
func (r *ChatLogRepo) History() ([]models.ChatMessage, error) {
	raw, err := r.store.Load(KeyChatMessages)
	if err != nil {
		return nil, errs.NewStorageError("load", KeyChatMessages, err)
	}
	if raw == nil {
		return []models.ChatMessage{}, nil
	}

	var messages []models.ChatMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		log.Warn().Err(err).Str("key", KeyChatMessages).Msg("discarding corrupt slot, treating as empty")
		return []models.ChatMessage{}, nil
	}
	return messages, nil
}

// Append adds messages to the end of the log and persists it.
func (r *ChatLogRepo) Append(messages ...models.ChatMessage) error {
	history, err := r.History()
	if err != nil {
		return err
	}
	history = append(history, messages...)

	raw, err := json.Marshal(history)
	if err != nil {
		return errs.NewStorageError("encode", KeyChatMessages, err)
	}
	if err := r.store.Save(KeyChatMessages, raw); err != nil {
		return errs.NewStorageError("save", KeyChatMessages, err)
	}
	return nil
}

// Reset clears the conversation entirely.
func (r *ChatLogRepo) Reset() error {
	if err := r.store.Delete(KeyChatMessages); err != nil {
		return errs.NewStorageError("delete", KeyChatMessages, err)
	}
	return nil
}
