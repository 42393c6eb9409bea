package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

const rawBodyLimit = 512

// Chat makes a single non-streaming chat completions request. The full
// history is replayed in order; no retry or fallback happens here. On
// success the reply text is returned exactly as the provider sent it.
func (c *Client) Chat(ctx context.Context, model string, history []ChatMessage, credential string) (string, error) {
	body, err := json.Marshal(&ChatRequest{
		Model:    model,
		Messages: history,
		Stream:   false,
	})
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GetChatURL(), bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+credential)

	response, err := c.http.Do(request)
	if err != nil {
		return "", &APIError{Status: StatusNone, Message: err.Error()}
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return "", &APIError{Status: StatusNone, Message: err.Error()}
	}

	if response.StatusCode != http.StatusOK {
		message := response.Status
		var errResp errorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Message != "" {
			message = errResp.Error.Message
		}
		return "", &APIError{Status: response.StatusCode, Message: message}
	}

	var parsed ChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoContent, truncate(raw))
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == nil {
		return "", fmt.Errorf("%w: %s", ErrNoContent, truncate(raw))
	}

	return *parsed.Choices[0].Message.Content, nil
}

// Models fetches the model list and keeps the free-tier entries, sorted by
// display name. No credential is required for this endpoint.
func (c *Client) Models(ctx context.Context) ([]Model, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GetModelsURL(), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return nil, &APIError{Status: StatusNone, Message: err.Error()}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, &APIError{Status: response.StatusCode, Message: response.Status}
	}

	var parsed ModelsResponse
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	var models []Model
	for _, data := range parsed.Data {
		if !strings.HasSuffix(data.ID, ":free") {
			continue
		}
		display := strings.TrimSpace(strings.ReplaceAll(data.Name, " (free)", ""))
		if display == "" {
			display = data.ID
		}
		models = append(models, Model{Display: display, API: data.ID})
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Display < models[j].Display })

	return models, nil
}

func truncate(raw []byte) string {
	if len(raw) > rawBodyLimit {
		return string(raw[:rawBodyLimit]) + "..."
	}
	return string(raw)
}
