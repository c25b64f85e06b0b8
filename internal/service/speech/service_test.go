package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agron-app/agron/internal/config"
	"github.com/agron-app/agron/internal/domain/models"
)

type stubClient struct {
	audio []byte
	err   error

	gotVoice string
	gotText  string
}

func (c *stubClient) Synthesize(_ context.Context, voiceID, text string) ([]byte, error) {
	c.gotVoice = voiceID
	c.gotText = text
	return c.audio, c.err
}

func TestVoiceFor(t *testing.T) {
	tests := []struct {
		name     string
		lang     models.Language
		override string
		want     string
	}{
		{name: "override wins", lang: models.LangTelugu, override: "custom-voice", want: "custom-voice"},
		{name: "mapped language", lang: models.LangHindi, want: "onwK4e9ZLuTAKqWW03F9"},
		{name: "unknown language falls back", lang: models.Language("fr"), want: defaultVoiceID},
		{name: "empty language falls back", want: defaultVoiceID},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VoiceFor(tc.lang, tc.override))
		})
	}
}

func TestSynthesizeRejectsEmptyText(t *testing.T) {
	svc := NewElevenLabsService(config.SpeechConfig{APIKey: "key"}, &stubClient{}, nil)

	_, _, err := svc.Synthesize(context.Background(), models.SpeechRequest{Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestSynthesizeRequiresCredential(t *testing.T) {
	svc := NewElevenLabsService(config.SpeechConfig{}, &stubClient{}, nil)

	_, _, err := svc.Synthesize(context.Background(), models.SpeechRequest{Text: "hello"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSynthesizeReturnsProviderAudio(t *testing.T) {
	client := &stubClient{audio: []byte("mp3-bytes")}
	svc := NewElevenLabsService(config.SpeechConfig{APIKey: "key"}, client, nil)

	audio, contentType, err := svc.Synthesize(context.Background(), models.SpeechRequest{
		Text:     "నమస్కారం",
		Language: models.LangTelugu,
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("mp3-bytes"), audio)
	assert.Equal(t, "audio/mpeg", contentType)
	assert.Equal(t, "pFZP5JQG7iQjIQuC4Bku", client.gotVoice)
	assert.Equal(t, "నమస్కారం", client.gotText)
}

func TestSynthesizePropagatesProviderError(t *testing.T) {
	providerErr := errors.New("upstream unavailable")
	svc := NewElevenLabsService(config.SpeechConfig{APIKey: "key"}, &stubClient{err: providerErr}, nil)

	_, _, err := svc.Synthesize(context.Background(), models.SpeechRequest{Text: "hello"})
	assert.ErrorIs(t, err, providerErr)
}
