package api

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/twobob/openRouterFree/internal/api/client"
	"github.com/twobob/openRouterFree/internal/conversation"
	"github.com/twobob/openRouterFree/internal/logger"
)

var (
	ErrNoCredential = errors.New("no API key configured")
	ErrEmptyInput   = errors.New("no content parsed")
)

// CredentialFunc returns the current API key, empty when none is set.
type CredentialFunc func() string

// Service owns the send flow: append the user entry, make exactly one
// provider call with the full transcript, append the reply (or the error
// text) as the next assistant entry.
type Service struct {
	client     *client.Client
	credential CredentialFunc
	log        *logger.Logger

	mu    sync.RWMutex
	model string
}

func NewService(c *client.Client, model string, credential CredentialFunc) *Service {
	return &Service{
		client:     c,
		credential: credential,
		model:      model,
		log:        logger.NewLogger("api"),
	}
}

func (s *Service) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

func (s *Service) SetModel(model string) {
	s.mu.Lock()
	s.model = model
	s.mu.Unlock()
}

// Send runs one user turn. The returned string is the assistant reply; on
// failure the error text has already been appended to the transcript as an
// assistant entry so it shows up inline.
func (s *Service) Send(ctx context.Context, convo *conversation.Conversation, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.log.Warn("No content parsed")
		return "", ErrEmptyInput
	}

	credential := s.credential()
	if credential == "" {
		return "", ErrNoCredential
	}

	if err := convo.BeginSend(); err != nil {
		return "", err
	}
	defer convo.EndSend()

	if err := convo.Append(conversation.RoleUser, text); err != nil {
		return "", err
	}

	entries := convo.Entries()
	history := make([]client.ChatMessage, len(entries))
	for i, entry := range entries {
		history[i] = client.ChatMessage{Role: string(entry.Role), Content: entry.Content}
	}

	s.log.Info("Sending request, model: ", s.Model(), ", entries: ", len(history))

	reply, err := s.client.Chat(ctx, s.Model(), history, credential)
	if err != nil {
		s.log.Error("Chat request failed: ", err)
		if appendErr := convo.Append(conversation.RoleAssistant, "Error: "+err.Error()); appendErr != nil {
			s.log.Error("Failed to record error entry: ", appendErr)
		}
		return "", err
	}

	if err := convo.Append(conversation.RoleAssistant, reply); err != nil {
		return "", err
	}
	return reply, nil
}

// RefreshModels fetches the live free-model list, falling back to the
// compiled-in list when the fetch fails.
func (s *Service) RefreshModels(ctx context.Context) []client.Model {
	models, err := s.client.Models(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch model list, using built-in list: ", err)
		return client.DefaultModels()
	}
	if len(models) == 0 {
		return client.DefaultModels()
	}
	return models
}
