package database

import (
	"testing"
	"time"

	"github.com/pmtrec/portofolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatLogRepoAppendKeepsInsertionOrder(t *testing.T) {
	repo := NewChatLogRepo(NewMemorySlotStore())

	now := time.Now()
	require.NoError(t, repo.Append(
		models.ChatMessage{ID: "1", Text: "question", IsUser: true, Timestamp: now},
		models.ChatMessage{ID: "2", Text: "answer", IsUser: false, Timestamp: now},
	))
	require.NoError(t, repo.Append(
		models.ChatMessage{ID: "3", Text: "followup", IsUser: true, Timestamp: now},
	))

	history, err := repo.History()
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "1", history[0].ID)
	assert.Equal(t, "2", history[1].ID)
	assert.Equal(t, "3", history[2].ID)
}

func TestChatLogRepoResetClearsHistory(t *testing.T) {
	repo := NewChatLogRepo(NewMemorySlotStore())

	require.NoError(t, repo.Append(models.ChatMessage{ID: "1", Text: "hello", IsUser: true}))
	require.NoError(t, repo.Reset())

	history, err := repo.History()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChatLogRepoCorruptSlotReadsAsEmpty(t *testing.T) {
	store := NewMemorySlotStore()
	require.NoError(t, store.Save(KeyChatMessages, []byte("[broken")))

	repo := NewChatLogRepo(store)
	history, err := repo.History()
	require.NoError(t, err)
	assert.Empty(t, history)
}
