package models

// ChatMessage is one turn of the assistant conversation. The full history is
// resent by the caller on every request; nothing is stored server-side.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest is the assistant relay payload.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Language Language      `json:"language"`
}

// ChatReply is the assistant relay response body.
type ChatReply struct {
	Reply string `json:"reply"`
}

// SpeechRequest is the speech-synthesis relay payload. VoiceID overrides the
// per-language voice mapping when supplied.
type SpeechRequest struct {
	Text     string   `json:"text"`
	Language Language `json:"language"`
	VoiceID  string   `json:"voiceId"`
}
