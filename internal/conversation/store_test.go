package conversation

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendKeepsOrder(t *testing.T) {
	convo := New()
	require.NoError(t, convo.Append(RoleUser, "question one"))
	require.NoError(t, convo.Append(RoleAssistant, "answer one"))
	require.NoError(t, convo.Append(RoleUser, "question two"))

	assert.Equal(t, []Entry{
		{Role: RoleUser, Content: "question one"},
		{Role: RoleAssistant, Content: "answer one"},
		{Role: RoleUser, Content: "question two"},
	}, convo.Entries())
}

func TestAppendDoesNotTouchPriorEntries(t *testing.T) {
	convo := New()
	require.NoError(t, convo.Append(RoleUser, "hello"))
	before := convo.Entries()

	require.NoError(t, convo.Append(RoleAssistant, "hi there"))

	entries := convo.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, before[0], entries[0])
}

func TestAppendRejectsBadInput(t *testing.T) {
	convo := New()
	assert.Error(t, convo.Append(Role("system"), "nope"))
	assert.ErrorIs(t, convo.Append(RoleUser, ""), ErrEmptyContent)
	assert.Equal(t, 0, convo.Len())

	// assistant entries may be empty (a degenerate but valid reply)
	assert.NoError(t, convo.Append(RoleAssistant, ""))
}

func TestEntriesReturnsCopy(t *testing.T) {
	convo := New()
	require.NoError(t, convo.Append(RoleUser, "hello"))

	entries := convo.Entries()
	entries[0].Content = "mutated"

	assert.Equal(t, "hello", convo.Entries()[0].Content)
}

func TestBeginSendIsExclusive(t *testing.T) {
	convo := New()
	require.NoError(t, convo.BeginSend())
	assert.ErrorIs(t, convo.BeginSend(), ErrSendInFlight)

	convo.EndSend()
	assert.NoError(t, convo.BeginSend())
}

func TestIndependentConversationsDoNotShareState(t *testing.T) {
	convoA := New()
	convoB := New()
	assert.NotEqual(t, convoA.ID(), convoB.ID())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = convoA.Append(RoleUser, "a")
		}()
		go func() {
			defer wg.Done()
			_ = convoB.Append(RoleUser, "b")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, convoA.Len())
	assert.Equal(t, 50, convoB.Len())
	for _, entry := range convoA.Entries() {
		assert.Equal(t, "a", entry.Content)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	convo := New()
	require.NoError(t, convo.Append(RoleUser, "what is a monad?"))
	require.NoError(t, convo.Append(RoleAssistant, "a monoid in the category of endofunctors"))

	var buf bytes.Buffer
	require.NoError(t, convo.ExportJSON(&buf))

	restored := New()
	require.NoError(t, restored.ImportJSON(&buf))
	assert.Equal(t, convo.Entries(), restored.Entries())
}

func TestImportReplacesTranscript(t *testing.T) {
	convo := New()
	require.NoError(t, convo.Append(RoleUser, "old"))

	require.NoError(t, convo.ImportJSON(strings.NewReader(`[{"role":"user","content":"new"}]`)))
	assert.Equal(t, []Entry{{Role: RoleUser, Content: "new"}}, convo.Entries())
}

func TestImportRejectsUnknownRole(t *testing.T) {
	convo := New()
	require.NoError(t, convo.Append(RoleUser, "keep me"))

	err := convo.ImportJSON(strings.NewReader(`[{"role":"wizard","content":"zap"}]`))
	require.Error(t, err)
	assert.Equal(t, 1, convo.Len(), "failed import must leave the transcript untouched")
}

func TestExportEmptyConversation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().ExportJSON(&buf))
	assert.JSONEq(t, "[]", buf.String())
}
