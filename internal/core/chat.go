package core

import (
	"context"

	"pulsenet-backend/internal/llm"
	"pulsenet-backend/internal/logger"
	"pulsenet-backend/pkg"
)

// ChatService answers the multilingual assistant endpoint. Unlike the
// analysis pipeline it never fails outward: the endpoint always returns a
// reply body, so an internal error becomes the reply text itself.
type ChatService struct {
	LLM llm.Client
	Log *logger.Logger
}

// NewChatService constructs a ChatService with the given completion client.
func NewChatService(client llm.Client, log *logger.Logger) *ChatService {
	return &ChatService{LLM: client, Log: log}
}

// Reply generates the assistant's answer to a chat message in the requested
// language. On completion failure the error text is embedded in the reply
// instead of being surfaced as an error.
func (s *ChatService) Reply(ctx context.Context, req pkg.ChatRequest) pkg.ChatReply {
	raw, err := s.LLM.Complete(ctx, BuildChatPrompt(req.Message, req.Language))
	if err != nil {
		s.Log.Error("chat completion failed", "language", req.Language, "error", err)
		return pkg.ChatReply{Reply: "Internal AI Error: " + err.Error()}
	}
	return pkg.ChatReply{Reply: NormalizeChatReply(raw)}
}
