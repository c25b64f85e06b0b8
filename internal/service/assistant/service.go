// Package assistant relays farmer conversations to the chat model. The
// relay holds no conversation state; callers resend the full history on
// every turn.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/agron-app/agron/internal/config"
	"github.com/agron-app/agron/internal/domain/models"
	"github.com/agron-app/agron/pkg/clients/aigateway"
)

var (
	// ErrNoMessages is returned when the request carries no conversation turns.
	ErrNoMessages = errors.New("messages array is required")
	// ErrNotConfigured is returned when no gateway credential is set.
	ErrNotConfigured = errors.New("ai gateway api key not configured")
)

// Service describes the conversational relay the HTTP layer can invoke.
type Service interface {
	Reply(ctx context.Context, req models.ChatRequest) (string, error)
}

// GatewayService is the production implementation backed by the AI gateway.
type GatewayService struct {
	client     aigateway.Client
	configured bool
	logger     *zap.Logger
}

// NewGatewayService wires a new service instance.
func NewGatewayService(cfg config.AssistantConfig, client aigateway.Client, logger *zap.Logger) *GatewayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GatewayService{
		client:     client,
		configured: cfg.APIKey != "",
		logger:     logger,
	}
}

// Reply validates the conversation, prepends the language-specific system
// instruction and forwards the whole history to the model. Rate-limit and
// quota failures from the upstream surface as the gateway client's sentinel
// errors so the handler can map them to distinct statuses.
func (s *GatewayService) Reply(ctx context.Context, req models.ChatRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", ErrNoMessages
	}
	if !s.configured {
		return "", ErrNotConfigured
	}

	conversation := make([]aigateway.Message, 0, len(req.Messages)+1)
	conversation = append(conversation, aigateway.Message{
		Role:    "system",
		Content: systemPrompt(req.Language),
	})
	for _, msg := range req.Messages {
		conversation = append(conversation, aigateway.Message{Role: msg.Role, Content: msg.Content})
	}

	s.logger.Debug("forwarding conversation",
		zap.String("language", string(req.Language)),
		zap.Int("turns", len(req.Messages)))

	reply, err := s.client.CreateChatCompletion(ctx, conversation)
	if err != nil {
		return "", err
	}
	return reply, nil
}

func systemPrompt(lang models.Language) string {
	return fmt.Sprintf(`You are a friendly and helpful assistant for Indian farmers. Your role is to explain government schemes and subsidies in simple, easy-to-understand language.

IMPORTANT GUIDELINES:
- Always respond in %s
- Use very simple words that an illiterate or semi-literate farmer can understand
- Avoid technical terms, government jargon, or complex sentences
- Be warm, supportive, and encouraging
- Keep responses short (2-3 sentences max)
- If asked about specific schemes, explain benefits, eligibility, and how to apply in simple terms
- Focus on practical information: how much money, who can get it, what documents needed

Example topics you can help with:
- PM-KISAN (₹6,000/year for small farmers)
- Crop insurance schemes
- Subsidies for seeds, fertilizers, equipment
- Loan waivers and interest subsidies
- Irrigation and water schemes

Remember: The farmer may not be able to read, so your response will be read aloud to them. Keep it conversational and friendly.`, lang.EnglishName())
}
