package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/soitun/tts-backend/internal/audio"
	"github.com/soitun/tts-backend/internal/tts"
)

// maxTextChars is the synthesis input limit; exactly this many characters is
// still accepted.
const maxTextChars = 5000

const outputFilename = "tts_output.wav"

type synthesizeRequest struct {
	Text     string `json:"text"`
	Voice    string `json:"voice"`
	LangCode string `json:"lang_code"`
}

type voiceInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Kokoro v1.0 ships 54 voices; this is the commonly used subset.
var knownVoices = []voiceInfo{
	{ID: "af_heart", Name: "Heart (Default)", Description: "Default female voice"},
	{ID: "af_bella", Name: "Bella", Description: "Female voice"},
	{ID: "af_sarah", Name: "Sarah", Description: "Female voice"},
	{ID: "am_michael", Name: "Michael", Description: "Male voice"},
	{ID: "am_adam", Name: "Adam", Description: "Male voice"},
}

func (r *Router) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":        r.cfg.ServiceName,
		"status":         "running",
		"pipeline_ready": r.ready(),
	})
}

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := "unhealthy"
	if r.ready() {
		status = "healthy"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         status,
		"pipeline_ready": r.ready(),
	})
}

func (r *Router) handleVoices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"voices": knownVoices,
		"note":   "See Kokoro VOICES.md for full list of 54 voices",
	})
}

func (r *Router) handleSynthesize(w http.ResponseWriter, req *http.Request) {
	if !r.ready() {
		writeDetail(w, http.StatusServiceUnavailable,
			"TTS pipeline not initialized. Please wait for service to start.")
		return
	}

	var body synthesizeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		writeDetail(w, http.StatusBadRequest, "Text cannot be empty")
		return
	}
	if utf8.RuneCountInString(body.Text) > maxTextChars {
		writeDetail(w, http.StatusBadRequest, "Text too long (max %d characters)", maxTextChars)
		return
	}
	voice := body.Voice
	if voice == "" {
		voice = r.cfg.DefaultVoice
	}

	id := uuid.NewString()
	r.logger.Printf("synthesize %s: %d characters, voice: %s", id, len(body.Text), voice)

	segments, errs := r.engine.Synthesize(req.Context(), body.Text, voice)

	var chunks [][]float32
	for seg := range segments {
		if len(seg) > 0 {
			chunks = append(chunks, seg)
		}
	}
	if err := <-errs; err != nil {
		r.logger.Printf("synthesize %s: failed: %v", id, err)
		captureError(req, err, "speech synthesis failed")
		writeDetail(w, http.StatusInternalServerError, "Speech synthesis failed: %v", err)
		return
	}
	if len(chunks) == 0 {
		r.logger.Printf("synthesize %s: %v", id, tts.ErrNoAudio)
		writeDetail(w, http.StatusInternalServerError, "No audio generated from text")
		return
	}

	wavBytes, err := audio.EncodeWAV(audio.Concat(chunks), tts.SampleRate)
	if err != nil {
		r.logger.Printf("synthesize %s: encode failed: %v", id, err)
		captureError(req, err, "wav encoding failed")
		writeDetail(w, http.StatusInternalServerError, "Speech synthesis failed: %v", err)
		return
	}

	r.logger.Printf("synthesize %s: generated %d bytes of audio", id, len(wavBytes))

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Disposition", "attachment; filename="+outputFilename)
	w.Header().Set("Content-Length", strconv.Itoa(len(wavBytes)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(wavBytes)
}
