package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Grading  Grading
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Grading selects the grading engine and the LLM provider behind it.
// Engine "LLM" enables the LLM-backed grader; any other value falls back to
// the local similarity grader. Provider "OPENAI" selects OpenAI, any other
// value selects Gemini.
type Grading struct {
	Engine       string
	Provider     string
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Grading.Engine = viper.GetString("GRADING_ENGINE")
	config.Grading.Provider = viper.GetString("LLM_PROVIDER")
	config.Grading.OpenAIAPIKey = viper.GetString("OPENAI_API_KEY")
	config.Grading.OpenAIModel = viper.GetString("OPENAI_MODEL")
	config.Grading.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	config.Grading.GeminiModel = viper.GetString("GEMINI_MODEL")

	log.Info().
		Str("server_port", config.Server.Port).
		Str("grading_engine", config.Grading.Engine).
		Str("llm_provider", config.Grading.Provider).
		Msg("Config loaded")
	return &config, nil
}
