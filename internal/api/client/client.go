package client

import (
	"net/http"
	"net/url"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client represents a client for an OpenAI-compatible chat completions API.
// It holds no per-conversation state and is safe for concurrent use.
type Client struct {
	base      *url.URL
	http      *http.Client
	chatUrl   *url.URL
	modelsUrl *url.URL
}

// ClientConfig holds the configuration for the client
type ClientConfig struct {
	Scheme     string
	Host       string
	ChatPath   string
	ModelsPath string
}

// DefaultConfig targets the OpenRouter API.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Scheme:     "https",
		Host:       "openrouter.ai",
		ChatPath:   "/api/v1/chat/completions",
		ModelsPath: "/api/v1/models",
	}
}

// NewClient creates a new API client with configurable base URL and endpoints
func NewClient(config ClientConfig) *Client {
	baseURL := &url.URL{Scheme: config.Scheme, Host: config.Host}
	return &Client{
		base:      baseURL,
		http:      &http.Client{},
		chatUrl:   baseURL.ResolveReference(&url.URL{Path: config.ChatPath}),
		modelsUrl: baseURL.ResolveReference(&url.URL{Path: config.ModelsPath}),
	}
}

func (c *Client) GetChatURL() string {
	return c.chatUrl.String()
}

func (c *Client) GetModelsURL() string {
	return c.modelsUrl.String()
}
