package elevenlabs

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agron-app/agron/internal/config"
)

const (
	modelID      = "eleven_multilingual_v2"
	outputFormat = "mp3_44100_128"

	// ContentType of the audio payload the API returns for outputFormat.
	ContentType = "audio/mpeg"
)

// Client exposes the ElevenLabs text-to-speech operation used by the
// application.
type Client interface {
	Synthesize(ctx context.Context, voiceID, text string) ([]byte, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds an ElevenLabs API client using the provided configuration.
func NewClient(cfg config.SpeechConfig) *APIClient {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("xi-api-key", cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	return &APIClient{httpClient: restyClient}
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// voiceSettings tuned for slow, clear speech read out to farmers.
type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
	Speed           float64 `json:"speed"`
}

// Synthesize renders text with the given voice and returns the mp3 bytes.
func (c *APIClient) Synthesize(ctx context.Context, voiceID, text string) ([]byte, error) {
	body := synthesizeRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: voiceSettings{
			Stability:       0.6,
			SimilarityBoost: 0.75,
			Style:           0.3,
			UseSpeakerBoost: true,
			Speed:           0.85,
		},
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("output_format", outputFormat).
		SetBody(body).
		Post(fmt.Sprintf("/v1/text-to-speech/%s", voiceID))
	if err != nil {
		return nil, fmt.Errorf("elevenlabs api call: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("elevenlabs api error: status=%d body=%s", resp.StatusCode(), resp.String())
	}

	return resp.Body(), nil
}
