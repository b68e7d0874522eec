package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config concentra a configuração de runtime lida do ambiente.
type Config struct {
	Port      string // porta HTTP (PORT, default 8080)
	DBDSN     string // DSN do Postgres (DB_DSN); vazio => repositórios em memória
	LogLevel  string // LOG_LEVEL
	LogFormat string // LOG_FORMAT
	AppName   string // APP_NAME
}

// Load lê a configuração do ambiente. Um arquivo .env é carregado se
// existir; nenhuma variável é obrigatória para rodar em modo dev.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      getenv("PORT", "8080"),
		DBDSN:     os.Getenv("DB_DSN"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		AppName:   getenv("APP_NAME", "petshop-api"),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
