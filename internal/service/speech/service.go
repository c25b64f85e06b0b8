// Package speech relays text-to-speech requests to ElevenLabs. The relay is
// stateless: no audio is cached and failures are safe to retry from the
// caller.
package speech

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/agron-app/agron/internal/config"
	"github.com/agron-app/agron/internal/domain/models"
	"github.com/agron-app/agron/pkg/clients/elevenlabs"
)

var (
	// ErrEmptyText is returned when the request carries no text.
	ErrEmptyText = errors.New("text is required")
	// ErrNotConfigured is returned when no provider credential is set.
	ErrNotConfigured = errors.New("speech provider api key not configured")
)

// Voices that work well for each supported language.
var languageVoices = map[models.Language]string{
	models.LangTelugu:  "pFZP5JQG7iQjIQuC4Bku",
	models.LangHindi:   "onwK4e9ZLuTAKqWW03F9",
	models.LangTamil:   "XrExE9yKIg1WjnnlVkGX",
	models.LangKannada: "cgSgspJ2msm6clMCkdW9",
	models.LangMarathi: "EXAVITQu4vr4xnSDxMaL",
	models.LangEnglish: "JBFqnCBsd6RMkjVDRZzb",
}

const defaultVoiceID = "JBFqnCBsd6RMkjVDRZzb"

// Service describes the speech relay the HTTP layer can invoke.
type Service interface {
	Synthesize(ctx context.Context, req models.SpeechRequest) (audio []byte, contentType string, err error)
}

// ElevenLabsService is the production implementation backed by the
// ElevenLabs API.
type ElevenLabsService struct {
	client     elevenlabs.Client
	configured bool
	logger     *zap.Logger
}

// NewElevenLabsService wires a new service instance.
func NewElevenLabsService(cfg config.SpeechConfig, client elevenlabs.Client, logger *zap.Logger) *ElevenLabsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ElevenLabsService{
		client:     client,
		configured: cfg.APIKey != "",
		logger:     logger,
	}
}

// VoiceFor resolves the provider voice for a language. An explicit override
// wins; an unrecognized language falls back to the default voice.
func VoiceFor(lang models.Language, override string) string {
	if override != "" {
		return override
	}
	if voice, ok := languageVoices[lang]; ok {
		return voice
	}
	return defaultVoiceID
}

// Synthesize validates the request and forwards it to the provider,
// returning the raw audio bytes and their MIME type.
func (s *ElevenLabsService) Synthesize(ctx context.Context, req models.SpeechRequest) ([]byte, string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, "", ErrEmptyText
	}
	if !s.configured {
		return nil, "", ErrNotConfigured
	}

	voice := VoiceFor(req.Language, req.VoiceID)
	s.logger.Debug("generating speech",
		zap.String("language", string(req.Language)),
		zap.String("voice", voice),
		zap.Int("text_length", len(req.Text)))

	audio, err := s.client.Synthesize(ctx, voice, req.Text)
	if err != nil {
		return nil, "", err
	}

	return audio, elevenlabs.ContentType, nil
}
