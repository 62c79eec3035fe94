// Package handlers provides HTTP request handlers.
package handlers

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"tradechat/internal/domain/chat"
	"tradechat/internal/infrastructure/http/v1/dto"
	"tradechat/pkg/logger"
)

var tracer = otel.Tracer("tradechat/chat")

// ChatHandler answers chat widget messages.
type ChatHandler struct {
	*BaseHandler
	responder *chat.Responder
}

// NewChatHandler creates a chat handler.
func NewChatHandler(base *BaseHandler, responder *chat.Responder) *ChatHandler {
	return &ChatHandler{BaseHandler: base, responder: responder}
}

// Send handles one chat message.
// A missing, empty or malformed body is answered like an empty message.
// POST /chat
func (h *ChatHandler) Send(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "chat.reply")
	defer span.End()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug(ctx, "unreadable chat body", "error", err)
		req.Message = ""
	}

	reply := h.responder.Reply(req.Message)

	span.SetAttributes(
		attribute.String("chat.intent", string(reply.Intent)),
		attribute.Int("chat.message_length", len(req.Message)),
	)
	logger.Debug(ctx, "chat reply", "intent", reply.Intent)

	h.OK(c, dto.ChatResponse{Reply: reply.Text})
}
