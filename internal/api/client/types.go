package client

// ChatRequest is the chat completions request body
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"` // Always false, one complete response per call
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is the chat completions response body. Only
// Choices[0].Message.Content is consumed; unknown fields are ignored.
type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
}

type ChatChoice struct {
	Message      ResponseMessage `json:"message"`
	FinishReason *string         `json:"finish_reason,omitempty"` // Pointer to handle null
	Index        int             `json:"index"`
}

type ResponseMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"` // Pointer to distinguish missing from empty
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type ModelsResponse struct {
	Data []ModelData `json:"data"`
}

type ModelData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Model is a selectable model as shown in the picker.
type Model struct {
	Display string `json:"display"`
	API     string `json:"api"`
}
