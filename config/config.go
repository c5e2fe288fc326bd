package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP    HTTP
		Log     Log
		Groq    Groq
		Image   Image
		Swagger Swagger
	}

	HTTP struct {
		Port           string        `env:"HTTP_PORT,required"`
		UsePreforkMode bool          `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		ReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"150s"`
		BodyLimit      int           `env:"HTTP_BODY_LIMIT" envDefault:"104857600"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required"`
	}

	Groq struct {
		APIKey         string        `env:"GROQ_API_KEY,required"`
		BaseURL        string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
		Model          string        `env:"GROQ_MODEL" envDefault:"meta-llama/llama-4-scout-17b-16e-instruct"`
		Temperature    float64       `env:"GROQ_TEMPERATURE" envDefault:"0.5"`
		MaxTokens      int64         `env:"GROQ_MAX_TOKENS" envDefault:"6000"`
		RequestTimeout time.Duration `env:"GROQ_REQUEST_TIMEOUT" envDefault:"120s"`
	}

	Image struct {
		MaxDimension    int `env:"IMAGE_MAX_DIMENSION" envDefault:"1024"`        // 0 disables resizing
		JPEGQuality     int `env:"IMAGE_JPEG_QUALITY" envDefault:"85"`
		MaxEncodedBytes int `env:"IMAGE_MAX_ENCODED_BYTES" envDefault:"4194304"` // remote endpoint limit
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
