package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort            string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL         string `env:"DATABASE_URL,required"`
	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	RedisAddr           string `env:"REDIS_ADDR"`
	RedisPassword       string `env:"REDIS_PASSWORD"`
	RedisDB             int    `env:"REDIS_DB" envDefault:"0"`

	// Umbrales del resolver y debounce de notas: expuestos como configuración
	// nombrada en lugar de números mágicos.
	SecondaryWindow  float64 `env:"RESOLVER_SECONDARY_WINDOW" envDefault:"12"`
	ConfidenceScale  float64 `env:"RESOLVER_CONFIDENCE_SCALE" envDefault:"40"`
	ConfidenceLowCut float64 `env:"RESOLVER_CONFIDENCE_LOW_CUT" envDefault:"0.33"`
	ConfidenceMedCut float64 `env:"RESOLVER_CONFIDENCE_MED_CUT" envDefault:"0.66"`
	NoteDebounceMS   int     `env:"NOTE_DEBOUNCE_MS" envDefault:"2000"`
	NoteStoreBaseURL string  `env:"NOTE_STORE_BASE_URL"`
	NoteStoreToken   string  `env:"NOTE_STORE_TOKEN"`
	NotesNamespace   string  `env:"NOTES_NAMESPACE" envDefault:"default"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
