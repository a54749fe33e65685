package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-assistant-api/internal/model"
)

func TestMemoryStore_HistoryEmpty(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	history, err := store.History(context.Background(), "unknown-session")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMemoryStore_AppendAndHistory(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	sessionID := NewSessionID()

	err := store.Append(ctx, sessionID,
		model.ChatTurn{Role: model.RoleUser, Content: "question"},
		model.ChatTurn{Role: model.RoleAssistant, Content: "answer"},
	)
	require.NoError(t, err)

	err = store.Append(ctx, sessionID,
		model.ChatTurn{Role: model.RoleUser, Content: "followup"},
		model.ChatTurn{Role: model.RoleAssistant, Content: "more detail"},
	)
	require.NoError(t, err)

	history, err := store.History(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "question", history[0].Content)
	assert.Equal(t, "more detail", history[3].Content)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "session-a", model.ChatTurn{Role: model.RoleUser, Content: "a"}))
	require.NoError(t, store.Append(ctx, "session-b", model.ChatTurn{Role: model.RoleUser, Content: "b"}))

	historyA, err := store.History(ctx, "session-a")
	require.NoError(t, err)
	require.Len(t, historyA, 1)
	assert.Equal(t, "a", historyA[0].Content)
}

func TestMemoryStore_HistoryReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s", model.ChatTurn{Role: model.RoleUser, Content: "original"}))

	history, err := store.History(ctx, "s")
	require.NoError(t, err)
	history[0].Content = "mutated"

	again, err := store.History(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s", model.ChatTurn{Role: model.RoleUser, Content: "question"}))
	require.NoError(t, store.Clear(ctx, "s"))

	history, err := store.History(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, history)

	// Clearing an absent session is a no-op.
	require.NoError(t, store.Clear(ctx, "s"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s", model.ChatTurn{Role: model.RoleUser, Content: "question"}))
	time.Sleep(50 * time.Millisecond)

	history, err := store.History(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTokenRoundTrip(t *testing.T) {
	sessionID := NewSessionID()

	token, err := MintToken("secret", sessionID, time.Minute)
	require.NoError(t, err)

	parsed, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsed)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := MintToken("secret", NewSessionID(), time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := MintToken("secret", NewSessionID(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}
