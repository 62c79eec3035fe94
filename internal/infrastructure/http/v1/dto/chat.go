// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// ChatRequest is the chat widget message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the reply text.
type ChatResponse struct {
	Reply string `json:"reply"`
}
