package app

import (
	"log"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/soitun/tts-backend/internal/httpapi"
	"github.com/soitun/tts-backend/internal/tts"
)

type App struct {
	cfg    Config
	logger *log.Logger
	engine tts.Engine
}

// New wires the application. A failed engine initialization leaves the
// engine unset: /health reports unhealthy and /synthesize returns 503, but
// the service stays up.
func New(cfg Config, logger *log.Logger) *App {
	var engine tts.Engine

	logger.Printf("initializing kokoro pipeline (runner %q)", cfg.KokoroBin)
	kokoro, err := tts.NewKokoroEngine(tts.KokoroConfig{
		Bin:  cfg.KokoroBin,
		Lang: cfg.DefaultLang,
	})
	if err != nil {
		logger.Printf("kokoro pipeline init failed: %v", err)
		sentry.CaptureException(err)
	} else {
		logger.Printf("kokoro pipeline initialized")
		engine = kokoro
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		engine: engine,
	}
}

func (a *App) Router() http.Handler {
	return httpapi.NewRouter(httpapi.RouterConfig{
		ServiceName:  "Kokoro TTS",
		DefaultVoice: a.cfg.DefaultVoice,
		DefaultLang:  a.cfg.DefaultLang,
	}, a.logger, a.engine)
}
