package elevenlabs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agron-app/agron/internal/config"
)

func TestSynthesize(t *testing.T) {
	var got synthesizeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/voice-123", r.URL.Path)
		assert.Equal(t, "mp3_44100_128", r.URL.Query().Get("output_format"))
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", ContentType)
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	client := NewClient(config.SpeechConfig{APIKey: "test-key", BaseURL: srv.URL})
	audio, err := client.Synthesize(context.Background(), "voice-123", "నమస్కారం")
	require.NoError(t, err)

	assert.Equal(t, []byte("mp3-bytes"), audio)
	assert.Equal(t, "నమస్కారం", got.Text)
	assert.Equal(t, "eleven_multilingual_v2", got.ModelID)
	assert.InDelta(t, 0.6, got.VoiceSettings.Stability, 0.0001)
	assert.InDelta(t, 0.85, got.VoiceSettings.Speed, 0.0001)
	assert.True(t, got.VoiceSettings.UseSpeakerBoost)
}

func TestSynthesizeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid api key"}`))
	}))
	defer srv.Close()

	client := NewClient(config.SpeechConfig{APIKey: "bad-key", BaseURL: srv.URL})
	_, err := client.Synthesize(context.Background(), "voice-123", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}
