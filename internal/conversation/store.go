package conversation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one role-tagged message in the transcript.
type Entry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

var (
	ErrSendInFlight = errors.New("a send is already in flight for this conversation")
	ErrEmptyContent = errors.New("user entries must not be empty")
)

// Conversation is an append-only ordered log of entries. Entries are never
// edited or removed individually; insertion order is the conversation order
// replayed to the provider on every call.
type Conversation struct {
	id uuid.UUID

	mu      sync.Mutex
	entries []Entry
	sending bool
}

func New() *Conversation {
	return &Conversation{id: uuid.New()}
}

func (c *Conversation) ID() string {
	return c.id.String()
}

// Append adds an entry at the end of the transcript.
func (c *Conversation) Append(role Role, content string) error {
	if role != RoleUser && role != RoleAssistant {
		return fmt.Errorf("unknown role %q", role)
	}
	if role == RoleUser && content == "" {
		return ErrEmptyContent
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Role: role, Content: content})
	return nil
}

// Entries returns a copy of the transcript in order.
func (c *Conversation) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// BeginSend claims the conversation's single send slot. Overlapping sends
// would race on which user entry a reply is answering, so at most one may
// be outstanding; callers must release it with EndSend.
func (c *Conversation) BeginSend() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sending {
		return ErrSendInFlight
	}
	c.sending = true
	return nil
}

func (c *Conversation) EndSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sending = false
}

// Reset clears the transcript for a fresh conversation.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
