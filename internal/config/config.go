package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderGemini LLMProvider = "gemini"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY,required,notEmpty"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	LLMBaseURL       string      `env:"LLM_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	LLMModel         string      `env:"LLM_MODEL" envDefault:"gemini-1.5-flash"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// HTTP
	HTTPAddr       string `env:"HTTP_ADDR" envDefault:":8501"`
	SuggestWorkers int    `env:"SUGGEST_WORKERS" envDefault:"4"`

	// Audit log and reporting. The log is off unless a path is given.
	SearchLogPath   string `env:"SEARCH_LOG_PATH"`
	DailyReportSpec string `env:"DAILY_REPORT_SPEC" envDefault:"0 21 * * *"`
}

// Parse reads the configuration from the process environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.SuggestWorkers < 1 {
		cfg.SuggestWorkers = 1
	}
	return cfg, nil
}

func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
