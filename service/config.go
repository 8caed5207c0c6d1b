package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string
	LogLevel    string

	Admin struct {
		Password string
	}

	Cookie struct {
		Secure bool
	}

	AI struct {
		Timeout       time.Duration
		OpenAIBaseURL string
		GeminiBaseURL string
		OllamaURL     string
	}

	Import struct {
		RequestsPerMinute int
	}
}

// LoadConfig reads reviewhub.yaml when present, then the environment.
// Keys map to variables with dots replaced by underscores, so
// admin.password is ADMIN_PASSWORD.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("reviewhub")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("environment", "development")
	v.SetDefault("port", "8000")
	v.SetDefault("base_url", "http://localhost:8000")
	v.SetDefault("db_path", "./db/reviewhub.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("admin.password", "")
	v.SetDefault("ai.timeout", 120*time.Second)
	v.SetDefault("ai.openai_base_url", "")
	v.SetDefault("ai.gemini_base_url", "")
	v.SetDefault("ai.ollama_url", "")
	v.SetDefault("import.requests_per_minute", 30)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config := &Config{
		Environment: v.GetString("environment"),
		Port:        v.GetString("port"),
		BaseURL:     strings.TrimRight(v.GetString("base_url"), "/"),
		DBPath:      v.GetString("db_path"),
		LogLevel:    v.GetString("log_level"),
	}

	config.Admin.Password = v.GetString("admin.password")

	// Secure cookies follow production unless set explicitly.
	config.Cookie.Secure = config.IsProduction()
	if v.IsSet("cookie.secure") {
		config.Cookie.Secure = v.GetBool("cookie.secure")
	}

	config.AI.Timeout = v.GetDuration("ai.timeout")
	config.AI.OpenAIBaseURL = v.GetString("ai.openai_base_url")
	config.AI.GeminiBaseURL = v.GetString("ai.gemini_base_url")
	config.AI.OllamaURL = v.GetString("ai.ollama_url")

	config.Import.RequestsPerMinute = v.GetInt("import.requests_per_minute")

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
