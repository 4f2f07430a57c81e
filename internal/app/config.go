package app

import (
	"os"
)

type Config struct {
	HTTPAddr  string
	SentryDSN string
	LogLevel  string

	// Kokoro engine
	KokoroBin string // runner binary, resolved via PATH at startup

	// Synthesis defaults
	DefaultVoice string
	DefaultLang  string
}

func LoadConfigFromEnv() Config {
	return Config{
		// Default port is 8001 to avoid conflict with the main app
		HTTPAddr:  ":" + getenv("PORT", "8001"),
		SentryDSN: getenv("SENTRY_DSN", ""),
		LogLevel:  getenv("LOG_LEVEL", "info"),

		KokoroBin: getenv("KOKORO_BIN", "kokoro-tts"),

		DefaultVoice: getenv("KOKORO_VOICE", "af_heart"),
		DefaultLang:  getenv("KOKORO_LANG", "a"), // 'a' is English (see Kokoro docs for other codes)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
